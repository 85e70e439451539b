package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/livescore-service/internal/api/handlers"
	"github.com/stitts-dev/livescore-service/internal/cache"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/services"
	"github.com/stitts-dev/livescore-service/internal/sports/registry"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Env:                     "development",
		UseMockSportsData:       true,
		SportsAPITimeout:        time.Second,
		CacheTTL:                time.Minute,
		CacheMaxSize:            10,
		UpstreamRateLimit:       60,
		CircuitBreakerThreshold: 5,
	}

	gameCache := cache.New(cfg.CacheMaxSize, cfg.CacheTTL, log)
	svc := services.NewGameService(registry.New(), gameCache, cfg, log)

	sportsHandler := handlers.NewSportsHandler(svc, log)
	healthHandler := handlers.NewHealthHandler(cfg, gameCache, log)

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/sports", sportsHandler.ListSports)
		apiV1.GET("/games", sportsHandler.GetGames)
		apiV1.GET("/games/:gameID/details", sportsHandler.GetGameDetails)
		apiV1.GET("/games/:gameID/lineup", sportsHandler.GetLineup)
		apiV1.GET("/rankings", sportsHandler.GetTeamRank)
		apiV1.GET("/cache", sportsHandler.GetCacheInfo)
		apiV1.DELETE("/cache", sportsHandler.ClearCache)
	}
	router.GET("/health", healthHandler.GetHealth)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestListSports(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/sports")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["sports"], 4)
}

func TestGetGames(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/games?date=20251118&sport=basketball")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["count"])
	assert.Equal(t, "basketball", data["sport"])
}

func TestGetGamesMissingParams(t *testing.T) {
	router := testRouter(t)
	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/games?date=20251118")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGamesInvalidDate(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/games?date=18-11-2025&sport=basketball")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "YYYYMMDD")
}

func TestGetGamesUnknownSport(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/games?date=20251118&sport=cricket")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "cricket")
}

func TestGetGameDetails(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet,
		"/api/v1/games/OT31320251118001/details?sport=basketball&date=20251118")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "OT31320251118001", data["game_id"])
	assert.Equal(t, "11.18", data["date"])

	home := data["home_team"].(map[string]interface{})
	assert.Equal(t, "Boston", home["name"])
	assert.NotEmpty(t, data["game_records"])
}

func TestGetGameDetailsUnfinished(t *testing.T) {
	router := testRouter(t)
	w, _ := doRequest(t, router, http.MethodGet,
		"/api/v1/games/OT31320251118003/details?sport=basketball&date=20251118")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLineupUnsupportedSport(t *testing.T) {
	router := testRouter(t)
	w, _ := doRequest(t, router, http.MethodGet,
		"/api/v1/games/VLM20251118001/lineup?sport=volleyball&team_id=VL01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRankings(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet,
		"/api/v1/rankings?sport=soccer&season_id=2025&league_id=OT22187")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	rankings := data["rankings"].([]interface{})
	require.NotEmpty(t, rankings)
	first := rankings[0].(map[string]interface{})
	assert.Contains(t, first, "win_rate")
}

func TestCacheEndpoints(t *testing.T) {
	router := testRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/cache")
	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["max_size"])

	w, body = doRequest(t, router, http.MethodDelete, "/api/v1/cache")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cache cleared", body["message"])
}

func TestHealth(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "mock", checks["upstream"])
}
