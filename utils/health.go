package utils

import (
	"context"
	"sync"
	"time"
)

// HealthStatus is the latest reachability snapshot of the services the
// application depends on.
type HealthStatus struct {
	Mongo          bool      `json:"mongo"`
	CacheRedis     bool      `json:"cache_redis"`
	AuthRedis      bool      `json:"auth_redis"`
	ChatRedis      bool      `json:"chat_redis"`
	PaymentGateway bool      `json:"payment_gateway"`
	AI             bool      `json:"ai"`
	CheckedAt      time.Time `json:"checked_at"`
}

// HealthChecks bundles one check per dependency. A nil check reports the
// dependency as down.
type HealthChecks struct {
	Mongo          func(ctx context.Context) error
	CacheRedis     func(ctx context.Context) error
	AuthRedis      func(ctx context.Context) error
	ChatRedis      func(ctx context.Context) error
	PaymentGateway func(ctx context.Context) error
	AI             func(ctx context.Context) error
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func (hc HealthChecks) snapshot(ctx context.Context) HealthStatus {
	ok := func(check func(context.Context) error) bool {
		return check != nil && check(ctx) == nil
	}
	return HealthStatus{
		Mongo:          ok(hc.Mongo),
		CacheRedis:     ok(hc.CacheRedis),
		AuthRedis:      ok(hc.AuthRedis),
		ChatRedis:      ok(hc.ChatRedis),
		PaymentGateway: ok(hc.PaymentGateway),
		AI:             ok(hc.AI),
		CheckedAt:      time.Now(),
	}
}

// StartHealthMonitor runs the checks once immediately and then every minute,
// updating the in-memory snapshot served by the health endpoint.
func StartHealthMonitor(checks HealthChecks) {
	go func() {
		update := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			status := checks.snapshot(ctx)
			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
		update()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			update()
		}
	}()
}
