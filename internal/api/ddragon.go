package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"liveclient-replay/internal/constants"
	"liveclient-replay/internal/ddragon"
)

const ddragonBase = "https://ddragon.leagueoflegends.com"

// DDragonClient fetches the versioned reference catalogs (champions, items)
// from Data Dragon.
type DDragonClient struct {
	client *fasthttp.Client
}

func NewDDragonClient() *DDragonClient {
	return &DDragonClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetVersions lists every published patch, newest first.
func (c *DDragonClient) GetVersions(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, ddragonBase+"/api/versions.json")
	if err != nil {
		return nil, err
	}
	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		return nil, fmt.Errorf("decoding versions: %w", err)
	}
	return versions, nil
}

// GetChampions fetches the full champion catalog for a patch and locale.
func (c *DDragonClient) GetChampions(ctx context.Context, patch, locale string) (*ddragon.ChampionJSON, error) {
	body, err := c.GetChampionsRaw(ctx, patch, locale)
	if err != nil {
		return nil, err
	}
	return DecodeChampions(body)
}

func (c *DDragonClient) GetChampionsRaw(ctx context.Context, patch, locale string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/cdn/%s/data/%s/championFull.json", ddragonBase, patch, locale))
}

// GetItems fetches the item catalog for a patch and locale.
func (c *DDragonClient) GetItems(ctx context.Context, patch, locale string) (*ddragon.ItemJSON, error) {
	body, err := c.GetItemsRaw(ctx, patch, locale)
	if err != nil {
		return nil, err
	}
	return DecodeItems(body)
}

func (c *DDragonClient) GetItemsRaw(ctx context.Context, patch, locale string) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("%s/cdn/%s/data/%s/item.json", ddragonBase, patch, locale))
}

func DecodeChampions(body []byte) (*ddragon.ChampionJSON, error) {
	var out ddragon.ChampionJSON
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding champion catalog: %w", err)
	}
	return &out, nil
}

func DecodeItems(body []byte) (*ddragon.ItemJSON, error) {
	var out ddragon.ItemJSON
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding item catalog: %w", err)
	}
	return &out, nil
}

func (c *DDragonClient) get(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

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
		return nil, fmt.Errorf("ddragon: %s returned %d", url, resp.StatusCode())
	}
	return append([]byte(nil), resp.Body()...), nil
}
