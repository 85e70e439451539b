package sports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/livescore-service/internal/sports"
)

func TestAsString(t *testing.T) {
	assert.Equal(t, "", sports.AsString(nil))
	assert.Equal(t, "abc", sports.AsString("abc"))
	assert.Equal(t, "112", sports.AsString(float64(112)))
	assert.Equal(t, "45.5", sports.AsString(45.5))
	assert.Equal(t, "7", sports.AsString(7))
	assert.Equal(t, "true", sports.AsString(true))
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 112, sports.AsInt(float64(112)))
	assert.Equal(t, 7, sports.AsInt(7))
	assert.Equal(t, 42, sports.AsInt("42"))
	assert.Equal(t, 45, sports.AsInt("45.5"))
	assert.Equal(t, 0, sports.AsInt("n/a"))
	assert.Equal(t, 0, sports.AsInt(nil))
}

func TestAsFloat(t *testing.T) {
	f, ok := sports.AsFloat(45.5)
	assert.True(t, ok)
	assert.Equal(t, 45.5, f)

	f, ok = sports.AsFloat("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = sports.AsFloat("n/a")
	assert.False(t, ok)

	_, ok = sports.AsFloat(nil)
	assert.False(t, ok)
}

func TestStatHelpers(t *testing.T) {
	stats := map[string]interface{}{"score": float64(31), "name": "Tatum"}
	assert.Equal(t, 31, sports.StatInt(stats, "score"))
	assert.Equal(t, 0, sports.StatInt(stats, "absent"))
	assert.Equal(t, "Tatum", sports.StatString(stats, "name"))
	assert.Equal(t, "31", sports.StatString(stats, "score"))
	assert.Equal(t, "", sports.StatString(stats, "absent"))
}
