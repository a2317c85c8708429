package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "orders", cfg.Kafka.OrdersTopic)
	assert.Equal(t, 24*time.Hour, cfg.CartTTL)
	assert.Equal(t, 5*time.Minute, cfg.StorefrontCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.Media.MaxUploadB)
	assert.Equal(t, ":8082", cfg.ListenAddr(":8082"))
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CART_TTL", "90m")
	t.Setenv("HTTP_ADDR", ":9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	assert.Equal(t, 90*time.Minute, cfg.CartTTL)
	assert.Equal(t, ":9000", cfg.ListenAddr(":8082"))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menulink.yaml")
	content := []byte("public_base_url: https://menu.example\nallowed_origins: https://a.example,https://b.example\ndb:\n  name: shop\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://menu.example", cfg.PublicBaseURL)
	assert.Equal(t, "shop", cfg.DB.Name)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDBConfig_ConnString(t *testing.T) {
	cfg := DBConfig{Host: "h", Port: "5432", Name: "n", User: "u", Password: "p", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", cfg.ConnString())
}

func TestNewKafkaWriter_HashesKeys(t *testing.T) {
	w := NewKafkaWriter(KafkaConfig{Broker: "localhost:9092", OrdersTopic: "orders"})
	defer w.Close()

	assert.Equal(t, "orders", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)

	partitions := []int{0, 1, 2, 3}
	msg := kafka.Message{Key: []byte("7")}
	first := w.Balancer.Balance(msg, partitions...)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, w.Balancer.Balance(msg, partitions...))
	}
}
