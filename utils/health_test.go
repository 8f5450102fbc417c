package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestHealthMonitorStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	StartHealthMonitor(ctx, nil, nil, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return !GetHealthStatus().CheckedAt.IsZero()
	}, time.Second, 5*time.Millisecond)
	assert.False(t, GetHealthStatus().Mongo)

	cancel()
}
