package apierror_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/livescore-service/internal/apierror"
)

func TestKindOf(t *testing.T) {
	err := apierror.New(apierror.KindNotFound, "game %s not found", "G1")
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(wrapped))

	assert.Equal(t, apierror.KindUnknown, apierror.KindOf(errors.New("plain")))
	assert.Equal(t, apierror.KindUnknown, apierror.KindOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apierror.Wrap(apierror.KindConnection, cause, "dial upstream")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CONNECTION_ERROR")
	assert.Contains(t, err.Error(), "dial upstream")
}

func TestUserMessageNeverLeaksDetail(t *testing.T) {
	err := apierror.New(apierror.KindServer, "upstream returned 503 for /dev/data3V1/livescore/gameList")
	assert.NotContains(t, err.UserMessage(), "503")
	assert.NotContains(t, err.UserMessage(), "gameList")
	assert.NotEmpty(t, err.UserMessage())
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   apierror.Kind
	}{
		{"not found", 404, apierror.KindNotFound},
		{"server error", 500, apierror.KindServer},
		{"bad gateway", 502, apierror.KindServer},
		{"unexpected 4xx", 403, apierror.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apierror.FromStatus(tt.status, "/gameList")
			assert.Equal(t, tt.want, err.Kind)
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestFromTransport(t *testing.T) {
	var netTimeout net.Error = timeoutErr{}

	tests := []struct {
		name string
		err  error
		want apierror.Kind
	}{
		{"deadline exceeded", context.DeadlineExceeded, apierror.KindTimeout},
		{"net timeout", netTimeout, apierror.KindTimeout},
		{"canceled", context.Canceled, apierror.KindConnection},
		{"dns failure", &net.DNSError{Err: "no such host"}, apierror.KindConnection},
		{"unrecognized", errors.New("boom"), apierror.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apierror.FromTransport(tt.err, 10*time.Second)
			assert.Equal(t, tt.want, err.Kind)
		})
	}
}
