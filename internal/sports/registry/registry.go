// Package registry maps sport names to client constructors so new
// sports can be plugged in without touching the service layer.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/apierror"
	"github.com/stitts-dev/livescore-service/internal/config"
	"github.com/stitts-dev/livescore-service/internal/sports"
	"github.com/stitts-dev/livescore-service/internal/sports/basketball"
	"github.com/stitts-dev/livescore-service/internal/sports/football"
	"github.com/stitts-dev/livescore-service/internal/sports/soccer"
	"github.com/stitts-dev/livescore-service/internal/sports/volleyball"
)

// Constructor builds a sport client from shared configuration.
type Constructor func(cfg *config.Config, logger *logrus.Logger) sports.Client

// Registry holds the known sports. Safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// New returns a registry seeded with the built-in sports.
func New() *Registry {
	return &Registry{
		constructors: map[string]Constructor{
			"basketball": func(cfg *config.Config, logger *logrus.Logger) sports.Client {
				return basketball.New(cfg, logger)
			},
			"soccer": func(cfg *config.Config, logger *logrus.Logger) sports.Client {
				return soccer.New(cfg, logger)
			},
			"football": func(cfg *config.Config, logger *logrus.Logger) sports.Client {
				return football.New(cfg, logger)
			},
			"volleyball": func(cfg *config.Config, logger *logrus.Logger) sports.Client {
				return volleyball.New(cfg, logger)
			},
		},
	}
}

// Register adds or replaces a sport constructor. Last write wins.
func (r *Registry) Register(sport string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[sport] = ctor
}

// Unregister removes a sport, reporting whether it was present.
func (r *Registry) Unregister(sport string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.constructors[sport]
	delete(r.constructors, sport)
	return ok
}

// Sports lists the registered sport names, sorted.
func (r *Registry) Sports() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateClient builds a client for the named sport. An unknown sport
// fails with an error naming it and every sport that is registered.
func (r *Registry) CreateClient(sport string, cfg *config.Config, logger *logrus.Logger) (sports.Client, error) {
	r.mu.RLock()
	ctor, ok := r.constructors[sport]
	r.mu.RUnlock()

	if !ok {
		return nil, apierror.New(apierror.KindValidation,
			"unknown sport %q. Available: %s", sport, strings.Join(r.Sports(), ", "))
	}
	return ctor(cfg, logger), nil
}
