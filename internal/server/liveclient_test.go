package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveclient-replay/internal/api"
	"liveclient-replay/internal/config"
	"liveclient-replay/internal/database"
	"liveclient-replay/internal/domain"
	"liveclient-replay/internal/repository"
	"liveclient-replay/internal/service"
)

const testPatch = "15.1.1"

var championCatalogJSON = []byte(`{
	"type": "champion", "version": "15.1.1", "data": {
		"Aatrox": {"id": "Aatrox", "key": "266", "name": "Aatrox", "partype": "Blood Well",
			"spells": [{"id": "AatroxQ", "name": "The Darkin Blade"}, {"id": "AatroxW", "name": "Infernal Chains"}, {"id": "AatroxE", "name": "Umbral Dash"}, {"id": "AatroxR", "name": "World Ender"}],
			"passive": {"name": "Deathbringer Stance"},
			"stats": {"hp": 650, "hpregen": 3, "mp": 0, "mpregen": 0, "movespeed": 345, "armor": 38, "spellblock": 32, "attackrange": 175, "attackdamage": 60, "attackspeed": 0.651}},
		"Ahri": {"id": "Ahri", "key": "103", "name": "Ahri", "partype": "Mana",
			"spells": [{"id": "AhriQ", "name": "Orb of Deception"}, {"id": "AhriW", "name": "Fox-Fire"}, {"id": "AhriE", "name": "Charm"}, {"id": "AhriR", "name": "Spirit Rush"}],
			"passive": {"name": "Essence Theft"},
			"stats": {"hp": 590, "hpregen": 2.5, "mp": 418, "mpregen": 8, "movespeed": 330, "armor": 21, "spellblock": 30, "attackrange": 550, "attackdamage": 53, "attackspeed": 0.668}},
		"Garen": {"id": "Garen", "key": "86", "name": "Garen", "partype": "None",
			"spells": [{"id": "GarenQ", "name": "Decisive Strike"}, {"id": "GarenW", "name": "Courage"}, {"id": "GarenE", "name": "Judgment"}, {"id": "GarenR", "name": "Demacian Justice"}],
			"passive": {"name": "Perseverance"},
			"stats": {"hp": 690, "hpregen": 8, "mp": 0, "mpregen": 0, "movespeed": 340, "armor": 38, "spellblock": 32, "attackrange": 175, "attackdamage": 66, "attackspeed": 0.625}}
	}
}`)

var itemCatalogJSON = []byte(`{
	"type": "item", "version": "15.1.1", "data": {
		"1001": {"name": "Boots", "gold": {"base": 300, "total": 300, "sell": 210, "purchasable": true}},
		"2055": {"name": "Control Ward", "stacks": 2, "consumed": true, "gold": {"base": 75, "total": 75, "sell": 30, "purchasable": true}}
	}
}`)

func newTestService(t *testing.T, activeSummoner string) *service.GameService {
	t.Helper()
	logger := zerolog.Nop()
	cfg := &config.Config{
		ServerPort:     "0",
		DBPath:         filepath.Join(t.TempDir(), "cache.db"),
		Locale:         "en_US",
		Patch:          testPatch,
		MatchFile:      "testdata/match.json",
		TimelineFile:   "testdata/timeline.json",
		RiotPlatform:   "euw1",
		ActiveSummoner: activeSummoner,
		Speed:          1,
	}

	db, err := database.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	docs := repository.NewDocumentRepository(db, logger)
	ctx := context.Background()
	require.NoError(t, docs.Put(ctx, repository.KindChampions, "championFull", testPatch, "en_US", championCatalogJSON))
	require.NoError(t, docs.Put(ctx, repository.KindItems, "item", testPatch, "en_US", itemCatalogJSON))

	// Catalogs come from the warmed cache and the match from testdata, so no
	// network is touched.
	return service.NewGameService(cfg, api.NewDDragonClient(), api.NewRiotClient(cfg), docs, logger)
}

func newTestServer(t *testing.T, activeSummoner string, start bool) *httptest.Server {
	t.Helper()
	games := newTestService(t, activeSummoner)
	if start {
		require.NoError(t, games.StartGame(context.Background()))
	}

	mux := http.NewServeMux()
	NewLiveClientServer(games, zerolog.Nop()).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestAllGameData(t *testing.T) {
	srv := newTestServer(t, "Holland", true)

	var resp domain.Response
	status := getJSON(t, srv, "/liveclientdata/allgamedata", &resp)
	require.Equal(t, http.StatusOK, status)

	require.NotNil(t, resp.ActivePlayer)
	assert.Equal(t, "Holland", resp.ActivePlayer.SummonerName)
	assert.Len(t, resp.AllPlayers, 3)
	assert.Equal(t, "CLASSIC", resp.GameData.GameMode)
	assert.Equal(t, 11, resp.GameData.MapNumber)
	assert.NotEmpty(t, resp.Events.Events)
}

func TestActivePlayerEndpoints(t *testing.T) {
	srv := newTestServer(t, "Holland", true)

	var player domain.ActivePlayer
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/activeplayer", &player))
	assert.Equal(t, "Holland", player.SummonerName)
	// The timestamp-zero skill up is already applied on the first poll.
	assert.Equal(t, 1, player.Abilities.Q.AbilityLevel)
	assert.Equal(t, "The Darkin Blade", player.Abilities.Q.DisplayName)

	var name string
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/activeplayername", &name))
	assert.Equal(t, "Holland", name)

	var runes domain.FullRunes
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/activeplayerrunes", &runes))
	assert.Equal(t, "Electrocute", runes.Keystone.DisplayName)
}

func TestSpectatorEndpoints(t *testing.T) {
	srv := newTestServer(t, "", true)

	var payload domain.ErrorPayload
	require.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/liveclientdata/activeplayer", &payload))
	assert.Equal(t, "RPC_ERROR", payload.ErrorCode)
	assert.Equal(t, 400, payload.HTTPStatus)

	require.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/liveclientdata/activeplayerabilities", &payload))
	assert.Equal(t, "RPC_ERROR", payload.ErrorCode)

	// Roster and stats still serve while spectating.
	var players []domain.Player
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/playerlist", &players))
	assert.Len(t, players, 3)

	var stats domain.GameData
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/gamestats", &stats))
	assert.Equal(t, "CLASSIC", stats.GameMode)
}

func TestSummonerScopedEndpoints(t *testing.T) {
	srv := newTestServer(t, "Holland", true)

	var scores domain.Scores
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/playerscores?summonerName=Holland", &scores))
	assert.Equal(t, 1, scores.Kills)

	var payload domain.ErrorPayload
	require.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/liveclientdata/playerscores?summonerName=NoSuchName", &payload))
	assert.Equal(t, "BAD_REQUEST", payload.ErrorCode)
	assert.Equal(t, "Unable to find player", payload.Message)

	require.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/liveclientdata/playerscores", &payload))
	assert.Equal(t, "A value for 'summonerName' is required.", payload.Message)

	var items []domain.Item
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/playeritems?summonerName=Holland", &items))
	require.Len(t, items, 1)
	assert.Equal(t, 1001, items[0].ItemID)

	var spells domain.SummonerSpells
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/liveclientdata/playersummonerspells?summonerName=Mate", &spells))
	assert.Equal(t, "Flash", spells.SummonerSpellOne.DisplayName)
}

func TestNoGameRunning(t *testing.T) {
	srv := newTestServer(t, "Holland", false)

	resp, err := srv.Client().Get(srv.URL + "/liveclientdata/allgamedata")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
