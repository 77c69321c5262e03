package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "commerce-core", cfg.ServiceName)
	assert.Equal(t, DriverFile, cfg.StorageDriver)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATA_DIR", "/var/lib/commerce")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "/var/lib/commerce", cfg.DataDir)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 50, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 90*time.Second, cfg.Postgres.ConnMaxLifetime)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("KAFKA_ENABLED", "probably")

	cfg := Load()

	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.False(t, cfg.KafkaEnabled)
}
