package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_MODE", "PORT", "STORAGE_DRIVER", "DEFAULT_API_TIMEOUT", "NODE_ID", "STORAGE_MIN_CONN", "STORAGE_IS_FLUSH", "SESSION_TTL", "CACHE_DB"} {
		t.Setenv(key, "")
	}
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, ModeDev, c.ServerMode)
	assert.Equal(t, ":3000", c.Port)
	assert.Equal(t, "file", c.StorageDriver)
	assert.Equal(t, 2*time.Second, c.DefaultAPITimeout)
	assert.Equal(t, int64(1), c.NodeID)
	assert.Equal(t, 8, c.StorageMinConn)
	assert.False(t, c.StorageIsFlush)
	assert.Equal(t, 12*time.Hour, c.SessionTTL)
	assert.Equal(t, 0, c.CacheDB)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("SERVER_MODE", ModeProduction)
	t.Setenv("PORT", ":8080")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("STORAGE_URI", "localhost:6379")
	t.Setenv("DEFAULT_API_TIMEOUT", "5")
	t.Setenv("NODE_ID", "7")
	t.Setenv("STORAGE_MAX_CONN", "not-a-number")
	t.Setenv("STORAGE_IS_FLUSH", "true")
	t.Setenv("CACHE_ENGINE", "redis")
	t.Setenv("SESSION_TTL", "30m")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, c.ServerMode)
	assert.Equal(t, ":8080", c.Port)
	assert.Equal(t, "redis", c.StorageDriver)
	assert.Equal(t, "localhost:6379", c.StorageURI)
	assert.Equal(t, 5*time.Second, c.DefaultAPITimeout)
	assert.Equal(t, int64(7), c.NodeID)
	assert.Equal(t, 32, c.StorageMaxConn)
	assert.True(t, c.StorageIsFlush)
	assert.Equal(t, "redis", c.CacheEngine)
	assert.Equal(t, 30*time.Minute, c.SessionTTL)
}
