// Package cache provides the in-memory game list cache keyed by
// "{date}_{sport}". Entries are bounded by both a maximum entry count
// (LRU eviction) and a fixed TTL; callers only ever observe "present"
// or "absent", never partial staleness.
package cache

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/models"
)

// Info is the read-only introspection snapshot.
type Info struct {
	CurrentSize int           `json:"current_size"`
	MaxSize     int           `json:"max_size"`
	TTL         time.Duration `json:"ttl"`
}

type entry struct {
	key       string
	games     []models.Game
	expiresAt time.Time
}

// GameCache is a thread-safe LRU+TTL store of per-day game lists.
// Construct one per process (or per test) and inject it; there is no
// package-level instance.
type GameCache struct {
	mu      sync.RWMutex
	maxSize int
	ttl     time.Duration
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	logger  *logrus.Logger
	clock   func() time.Time
}

// New creates a cache bounded by maxSize entries and ttl per entry.
func New(maxSize int, ttl time.Duration, logger *logrus.Logger) *GameCache {
	if logger == nil {
		logger = logrus.New()
	}
	return &GameCache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]*list.Element),
		order:   list.New(),
		logger:  logger,
		clock:   time.Now,
	}
}

func makeKey(date, sport string) string {
	return fmt.Sprintf("%s_%s", date, sport)
}

// isValidGame reports whether a game carries every field required for
// admission: non-blank game_id and both team names.
func isValidGame(g models.Game) bool {
	return strings.TrimSpace(g.GameID) != "" &&
		strings.TrimSpace(g.HomeTeamName) != "" &&
		strings.TrimSpace(g.AwayTeamName) != ""
}

// CacheGames validates and stores a day's games. Only the valid subset
// is stored, atomically; an empty input or a batch with zero valid
// games is not stored at all. Returns whether anything was stored.
func (c *GameCache) CacheGames(date, sport string, games []models.Game) bool {
	key := makeKey(date, sport)

	if len(games) == 0 {
		c.logger.WithField("key", key).Debug("Cache skip: empty games list")
		return false
	}

	valid := make([]models.Game, 0, len(games))
	for _, g := range games {
		if isValidGame(g) {
			valid = append(valid, g)
		}
	}
	if dropped := len(games) - len(valid); dropped > 0 {
		c.logger.WithFields(logrus.Fields{
			"key":     key,
			"dropped": dropped,
		}).Warn("Filtered invalid games (missing game_id or team names)")
	}
	if len(valid) == 0 {
		c.logger.WithField("key", key).Warn("Cache skip: no valid games")
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
	for c.order.Len() >= c.maxSize {
		c.evictOldestLocked()
	}
	el := c.order.PushFront(&entry{
		key:       key,
		games:     valid,
		expiresAt: c.clock().Add(c.ttl),
	})
	c.entries[key] = el

	c.logger.WithFields(logrus.Fields{
		"key":   key,
		"count": len(valid),
	}).Debug("Cache store")
	return true
}

// GetCachedGames returns the cached day, or nil on a miss. A nil return
// is distinct from "confirmed empty": empty lists are never admitted.
func (c *GameCache) GetCachedGames(date, sport string) []models.Game {
	key := makeKey(date, sport)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.logger.WithField("key", key).Debug("Cache miss")
		return nil
	}
	e := el.Value.(*entry)
	if c.clock().After(e.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		c.logger.WithField("key", key).Debug("Cache miss (expired)")
		return nil
	}
	c.order.MoveToFront(el)

	c.logger.WithFields(logrus.Fields{
		"key":   key,
		"count": len(e.games),
	}).Debug("Cache hit")

	games := make([]models.Game, len(e.games))
	for i, g := range e.games {
		games[i] = g.Clone()
	}
	return games
}

// FindGameInCache scans the cached day for a single game by ID.
func (c *GameCache) FindGameInCache(date, sport, gameID string) *models.Game {
	games := c.GetCachedGames(date, sport)
	for i := range games {
		if games[i].GameID == gameID {
			return &games[i]
		}
	}
	return nil
}

// Invalidate removes the entry for a day, reporting whether anything
// was removed. Used when a caller explicitly requests a refresh.
func (c *GameCache) Invalidate(date, sport string) bool {
	key := makeKey(date, sport)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(el)
	delete(c.entries, key)
	c.logger.WithField("key", key).Debug("Cache invalidated")
	return true
}

// Clear drops every entry. Intended for test isolation.
func (c *GameCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.logger.Debug("Cache cleared")
}

// GetInfo returns a snapshot of the cache bounds and current size.
func (c *GameCache) GetInfo() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Info{
		CurrentSize: c.order.Len(),
		MaxSize:     c.maxSize,
		TTL:         c.ttl,
	}
}

func (c *GameCache) evictOldestLocked() {
	el := c.order.Back()
	if el == nil {
		return
	}
	e := el.Value.(*entry)
	c.order.Remove(el)
	delete(c.entries, e.key)
	c.logger.WithField("key", e.key).Debug("Cache evicted (size bound)")
}
