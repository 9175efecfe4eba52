package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, int64(50000), AppConfig.DefaultConsultationFee)
	assert.Equal(t, "NGN", AppConfig.DefaultCurrency)
}

func TestRedisDatabasesAreDistinct(t *testing.T) {
	LoadConfig()

	// Each concern gets its own logical database so flushing or scanning
	// one never touches another. The chat context store in particular
	// must not share a DB with the asynq queue.
	dbs := map[string]int{
		"cache": AppConfig.RedisCacheDB,
		"auth":  AppConfig.RedisAuthDB,
		"queue": AppConfig.RedisQueueDB,
		"chat":  AppConfig.RedisChatDB,
	}
	seen := make(map[int]string)
	for name, db := range dbs {
		prev, dup := seen[db]
		require.Falsef(t, dup, "redis DB %d shared by %s and %s", db, prev, name)
		seen[db] = name
	}
	assert.Equal(t, 3, AppConfig.RedisChatDB)
}
