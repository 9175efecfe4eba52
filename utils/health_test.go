package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthSnapshotReportsPerDependency(t *testing.T) {
	up := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	checks := HealthChecks{
		Mongo:          up,
		CacheRedis:     up,
		AuthRedis:      down,
		ChatRedis:      up,
		PaymentGateway: down,
		AI:             up,
	}
	status := checks.snapshot(context.Background())

	assert.True(t, status.Mongo)
	assert.True(t, status.CacheRedis)
	assert.False(t, status.AuthRedis)
	assert.True(t, status.ChatRedis)
	assert.False(t, status.PaymentGateway)
	assert.True(t, status.AI)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestHealthSnapshotNilCheckIsDown(t *testing.T) {
	status := HealthChecks{}.snapshot(context.Background())

	assert.False(t, status.Mongo)
	assert.False(t, status.PaymentGateway)
	assert.False(t, status.AI)
}

func TestStartHealthMonitorRunsAnImmediateCheck(t *testing.T) {
	up := func(ctx context.Context) error { return nil }
	StartHealthMonitor(HealthChecks{Mongo: up, CacheRedis: up, AuthRedis: up, ChatRedis: up, PaymentGateway: up, AI: up})

	assert.Eventually(t, func() bool {
		s := GetHealthStatus()
		return s.Mongo && s.CacheRedis && s.AuthRedis && s.ChatRedis && s.PaymentGateway && s.AI
	}, time.Second, 10*time.Millisecond)
}
