package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("mongo backend requires MONGO_URI", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "mongo")
		t.Setenv("MONGO_URI", "")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("memory backend needs no mongo settings", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "memory")
		t.Setenv("MONGO_URI", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "memory", cfg.StoreBackend)
		assert.Equal(t, "8900", cfg.HTTPPort)
	})

	t.Run("mongo settings are read with defaults", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "mongo")
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example,http://b.example")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "schoolbook", cfg.Mongo.Database)
		assert.Equal(t, uint64(50), cfg.Mongo.MaxPoolSize)
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, int64(34900), cfg.Payment.AmountCents)
	})
}

func TestEnvHelpers(t *testing.T) {
	t.Run("GetEnv falls back when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnv("SCHOOLBOOK_TEST_UNSET", "fallback"))

		t.Setenv("SCHOOLBOOK_TEST_SET", "value")
		assert.Equal(t, "value", GetEnv("SCHOOLBOOK_TEST_SET", "fallback"))
	})

	t.Run("GetIntEnv ignores malformed values", func(t *testing.T) {
		t.Setenv("SCHOOLBOOK_TEST_INT", "not-a-number")
		assert.Equal(t, 7, GetIntEnv("SCHOOLBOOK_TEST_INT", 7))

		t.Setenv("SCHOOLBOOK_TEST_INT", "12")
		assert.Equal(t, 12, GetIntEnv("SCHOOLBOOK_TEST_INT", 7))
	})

	t.Run("GetDurationEnv parses durations", func(t *testing.T) {
		t.Setenv("SCHOOLBOOK_TEST_DUR", "45s")
		assert.Equal(t, 45*time.Second, GetDurationEnv("SCHOOLBOOK_TEST_DUR", time.Minute))

		t.Setenv("SCHOOLBOOK_TEST_DUR", "bogus")
		assert.Equal(t, time.Minute, GetDurationEnv("SCHOOLBOOK_TEST_DUR", time.Minute))
	})
}
