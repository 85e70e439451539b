package sports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stitts-dev/livescore-service/internal/apierror"
)

// Operation names a capability the upstream provider exposes. Matching
// is case-sensitive and exact: callers must use this vocabulary.
type Operation string

const (
	OpGames             Operation = "games"
	OpTeamStats         Operation = "team_stats"
	OpPlayerStats       Operation = "player_stats"
	OpLineup            Operation = "lineup"
	OpTeamRank          Operation = "team_rank"
	OpTeamVsList        Operation = "team_vs_list"
	OpPlayerSeasonStats Operation = "player_season_stats"
)

// BasePath returns the upstream path prefix for a deployment
// environment. Production hits the bare data path; every other
// environment goes through the provider's /dev mirror. Computed once at
// client construction, never per request.
func BasePath(env string) string {
	if env == "production" {
		return "/data3V1/livescore"
	}
	return "/dev/data3V1/livescore"
}

// commonEndpoints are the paths shared by all sports.
func commonEndpoints(basePath string) map[Operation]string {
	return map[Operation]string{
		OpGames: basePath + "/gameList",
	}
}

// EndpointConfig maps operations to upstream paths for one sport.
// Sport-specific entries win over the common table.
type EndpointConfig struct {
	Sport     string
	endpoints map[Operation]string
	useCommon map[Operation]bool
	common    map[Operation]string
}

// NewEndpointConfig builds a sport's endpoint set. useCommon lists the
// operations that resolve through the shared table unless the sport
// overrides them locally.
func NewEndpointConfig(sport, basePath string, endpoints map[Operation]string, useCommon ...Operation) EndpointConfig {
	uc := make(map[Operation]bool, len(useCommon))
	for _, op := range useCommon {
		uc[op] = true
	}
	if endpoints == nil {
		endpoints = map[Operation]string{}
	}
	return EndpointConfig{
		Sport:     sport,
		endpoints: endpoints,
		useCommon: uc,
		common:    commonEndpoints(basePath),
	}
}

// Endpoint resolves an operation to its upstream path. Sport-specific
// entries take priority over common ones. Unknown operations fail with
// an error naming the sport and every operation that is available.
func (c EndpointConfig) Endpoint(op Operation) (string, error) {
	if path, ok := c.endpoints[op]; ok {
		return path, nil
	}
	if c.useCommon[op] {
		if path, ok := c.common[op]; ok {
			return path, nil
		}
	}
	return "", apierror.New(apierror.KindValidation,
		"operation %q not supported for %s. Available: %s",
		op, c.Sport, strings.Join(c.operationNames(), ", "))
}

// HasOperation reports whether the operation resolves. Never fails.
func (c EndpointConfig) HasOperation(op Operation) bool {
	if _, ok := c.endpoints[op]; ok {
		return true
	}
	if c.useCommon[op] {
		_, ok := c.common[op]
		return ok
	}
	return false
}

// Operations lists every available operation and its path. Entries that
// resolve through the common table are tagged "[common]".
func (c EndpointConfig) Operations() map[Operation]string {
	result := make(map[Operation]string, len(c.endpoints)+len(c.useCommon))
	for op := range c.useCommon {
		if path, ok := c.common[op]; ok {
			result[op] = fmt.Sprintf("[common] %s", path)
		}
	}
	for op, path := range c.endpoints {
		result[op] = path
	}
	return result
}

func (c EndpointConfig) operationNames() []string {
	names := make([]string, 0, len(c.endpoints)+len(c.useCommon))
	for op := range c.endpoints {
		names = append(names, string(op))
	}
	for op := range c.useCommon {
		if _, ok := c.endpoints[op]; ok {
			continue
		}
		if _, ok := c.common[op]; ok {
			names = append(names, string(op))
		}
	}
	sort.Strings(names)
	return names
}
