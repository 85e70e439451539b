package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/livescore-service/internal/models"
)

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		raw  string
		want models.GameState
	}{
		{"f", models.StateFinished},
		{"F", models.StateFinished},
		{"final", models.StateFinished},
		{"ended", models.StateFinished},
		{"종료", models.StateFinished},
		{"i", models.StateInProgress},
		{"LIVE", models.StateInProgress},
		{"in_progress", models.StateInProgress},
		{"진행중", models.StateInProgress},
		{"b", models.StateScheduled},
		{"scheduled", models.StateScheduled},
		{"예정", models.StateScheduled},
		{" f ", models.StateFinished},
		{"", models.StateScheduled},
		{"garbage", models.StateScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, models.NormalizeState(tt.raw))
		})
	}
}

func TestFinished(t *testing.T) {
	assert.True(t, models.StateFinished.Finished())
	assert.False(t, models.StateInProgress.Finished())
	assert.False(t, models.StateScheduled.Finished())
}

func TestStatLineString(t *testing.T) {
	s := models.StatLine{
		"name":    "Tatum",
		"score":   float64(31),
		"team_id": float64(1610612738),
		"pct":     float64(48.5),
		"missing": nil,
	}
	assert.Equal(t, "Tatum", s.String("name"))
	// Numeric scalars render as strings instead of vanishing; whole
	// floats print without a decimal part.
	assert.Equal(t, "31", s.String("score"))
	assert.Equal(t, "1610612738", s.String("team_id"))
	assert.Equal(t, "48.5", s.String("pct"))
	assert.Equal(t, "", s.String("missing"))
	assert.Equal(t, "", s.String("absent"))
}

func TestGameCloneIsolatesExtra(t *testing.T) {
	orig := models.Game{
		GameID: "G1",
		Extra:  map[string]interface{}{"quarter": "4Q"},
	}
	clone := orig.Clone()
	clone.Extra["quarter"] = "OT"
	clone.Extra["referee"] = "T. Brothers"

	assert.Equal(t, "4Q", orig.Extra["quarter"])
	assert.NotContains(t, orig.Extra, "referee")
}

func TestStatLineCloneIsolation(t *testing.T) {
	orig := models.StatLine{"a": 1}
	clone := orig.Clone()
	clone["a"] = 2
	clone["b"] = 3

	assert.Equal(t, 1, orig["a"])
	assert.NotContains(t, orig, "b")
}
