package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"liveclient-replay/internal/config"
	"liveclient-replay/internal/constants"
	"liveclient-replay/internal/riot"
)

// RiotClient fetches finished-match records (summary and timeline) from the
// Riot match-v4 endpoints.
type RiotClient struct {
	apiKey   string
	platform string
	client   *fasthttp.Client
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return &RiotClient{
		apiKey:   cfg.RiotAPIKey,
		platform: cfg.RiotPlatform,
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *RiotClient) GetMatchRaw(ctx context.Context, gameID int64) ([]byte, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v4/matches/%d", c.platform, gameID)
	return c.get(ctx, url)
}

func (c *RiotClient) GetTimelineRaw(ctx context.Context, gameID int64) ([]byte, error) {
	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v4/timelines/by-match/%d", c.platform, gameID)
	return c.get(ctx, url)
}

func DecodeMatch(body []byte) (*riot.Match, error) {
	var match riot.Match
	if err := json.Unmarshal(body, &match); err != nil {
		return nil, fmt.Errorf("decoding match: %w", err)
	}
	return &match, nil
}

func DecodeTimeline(body []byte) (*riot.MatchTimeline, error) {
	var timeline riot.MatchTimeline
	if err := json.Unmarshal(body, &timeline); err != nil {
		return nil, fmt.Errorf("decoding timeline: %w", err)
	}
	return &timeline, nil
}

func (c *RiotClient) get(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("riot api: %s returned %d", url, resp.StatusCode())
	}
	return append([]byte(nil), resp.Body()...), nil
}
