package sports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/models"
)

// Client is the operation surface every sport implements.
type Client interface {
	Sport() string
	UsesMock() bool
	Endpoints() EndpointConfig
	Mapper() Mapper

	Games(ctx context.Context, date string) ([]models.Game, error)
	TeamStats(ctx context.Context, gameID string) ([]models.StatLine, error)
	PlayerStats(ctx context.Context, gameID string) ([]models.StatLine, error)
}

// Optional capabilities. A sport advertises one by implementing the
// interface and exposing the matching operation in its endpoint set.

// LineupProvider serves starting lineups per team.
type LineupProvider interface {
	Lineup(ctx context.Context, gameID, teamID string) ([]models.StatLine, error)
}

// RankProvider serves league standings for a season.
type RankProvider interface {
	TeamRank(ctx context.Context, seasonID, leagueID string) ([]models.StatLine, error)
}

// TeamVsQuery identifies a head-to-head comparison request.
type TeamVsQuery struct {
	SeasonID   string
	LeagueID   string
	GameID     string
	HomeTeamID string
	AwayTeamID string
}

// HeadToHeadProvider serves head-to-head comparison data.
type HeadToHeadProvider interface {
	TeamVsList(ctx context.Context, q TeamVsQuery) (models.StatLine, error)
}

// SeasonStatsProvider serves a player's season aggregates.
type SeasonStatsProvider interface {
	PlayerSeasonStats(ctx context.Context, leagueID, seasonID, teamID, playerID string) ([]models.StatLine, error)
}

// Base carries the HTTP machinery shared by every sport client:
// authentication, timeout, rate limiting, circuit breaking, and the
// translation of transport failures into the error taxonomy.
type Base struct {
	sport     string
	useMock   bool
	baseURL   string
	apiKey    string
	timeout   time.Duration
	endpoints EndpointConfig

	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	log        *logrus.Entry
}

// NewBase wires a sport client's shared plumbing from configuration.
// Mock mode is explicit opt-in, or an implicit fallback when the live
// API is not fully configured.
func NewBase(sport string, endpoints EndpointConfig, cfg *config.Config, logger *logrus.Logger) *Base {
	log := logger.WithField("sport", sport)

	useMock := cfg.UseMockSportsData
	switch {
	case useMock:
		log.Info("Sports client initialized with MOCK data")
	case cfg.HasSportsAPI():
		log.WithField("base_url", cfg.SportsAPIBaseURL).Info("Sports client initialized with live API")
	default:
		log.Warn("Live API requested but not configured, falling back to mock data")
		useMock = true
	}

	perSecond := float64(cfg.UpstreamRateLimit) / 60.0
	if perSecond <= 0 {
		perSecond = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        fmt.Sprintf("sports-api-%s", sport),
		MaxRequests: uint32(cfg.CircuitBreakerThreshold),
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})

	return &Base{
		sport:     sport,
		useMock:   useMock,
		baseURL:   cfg.SportsAPIBaseURL,
		apiKey:    cfg.SportsAPIKey,
		timeout:   cfg.SportsAPITimeout,
		endpoints: endpoints,
		httpClient: &http.Client{
			Timeout: cfg.SportsAPITimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		breaker: breaker,
		log:     log,
	}
}

func (b *Base) Sport() string             { return b.sport }
func (b *Base) UsesMock() bool            { return b.useMock }
func (b *Base) Endpoints() EndpointConfig { return b.endpoints }
func (b *Base) Logger() *logrus.Entry     { return b.log }

// Source names the data source for log lines.
func (b *Base) Source() string {
	if b.useMock {
		return "mock"
	}
	return "live"
}

// ValidateDate enforces the YYYYMMDD contract locally, before any
// network traffic.
func (b *Base) ValidateDate(date string) error {
	if len(date) != 8 {
		return apierror.New(apierror.KindValidation,
			"invalid date format: %q, must be YYYYMMDD", date)
	}
	for _, r := range date {
		if r < '0' || r > '9' {
			return apierror.New(apierror.KindValidation,
				"invalid date format: %q, must be YYYYMMDD", date)
		}
	}
	return nil
}

// GetJSON resolves the operation, performs the authenticated GET, and
// decodes the JSON body. Every failure surfaces as a taxonomy error.
func (b *Base) GetJSON(ctx context.Context, op Operation, params url.Values) (interface{}, error) {
	endpoint, err := b.endpoints.Endpoint(op)
	if err != nil {
		return nil, err
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return nil, apierror.FromTransport(err, b.timeout)
	}

	query := url.Values{}
	for key, vals := range params {
		for _, v := range vals {
			query.Add(key, v)
		}
	}
	query.Set("auth_key", b.apiKey)

	requestURL := b.baseURL + endpoint + "?" + query.Encode()
	b.log.WithFields(logrus.Fields{
		"operation": string(op),
		"endpoint":  endpoint,
	}).Debug("Requesting upstream")

	result, err := b.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, apierror.Wrap(apierror.KindUnknown, err, "build request for %s", endpoint)
		}

		resp, err := b.httpClient.Do(req)
		if err != nil {
			return nil, apierror.FromTransport(err, b.timeout)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apierror.FromTransport(err, b.timeout)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, apierror.FromStatus(resp.StatusCode, endpoint)
		}

		var decoded interface{}
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, apierror.Wrap(apierror.KindUnknown, err, "decode response from %s", endpoint)
		}
		return decoded, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, apierror.Wrap(apierror.KindConnection, err,
				"circuit breaker open for %s", b.sport)
		}
		return nil, err
	}
	return result, nil
}
