package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr      string `mapstructure:"http_addr"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	FrontendDir   string `mapstructure:"frontend_dir"`

	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Media    MediaConfig    `mapstructure:"media"`
	Identity IdentityConfig `mapstructure:"identity"`
	Services ServicesConfig `mapstructure:"services"`

	CartTTL              time.Duration `mapstructure:"cart_ttl"`
	StorefrontCacheTTL   time.Duration `mapstructure:"storefront_cache_ttl"`
	PendingRestaurantTTL time.Duration `mapstructure:"pending_restaurant_ttl"`
	AllowedOrigins       []string      `mapstructure:"allowed_origins"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type KafkaConfig struct {
	Broker      string `mapstructure:"broker"`
	OrdersTopic string `mapstructure:"orders_topic"`
	GroupID     string `mapstructure:"group_id"`
}

type MediaConfig struct {
	Bucket     string `mapstructure:"bucket"`
	Region     string `mapstructure:"region"`
	PublicURL  string `mapstructure:"public_url"`
	MaxUploadB int64  `mapstructure:"max_upload_bytes"`
}

type IdentityConfig struct {
	URL       string `mapstructure:"url"`
	AnonKey   string `mapstructure:"anon_key"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type ServicesConfig struct {
	StorefrontURL string `mapstructure:"storefront_url"`
	OrderURL      string `mapstructure:"order_url"`
}

var defaults = map[string]interface{}{
	"http_addr":               "",
	"public_base_url":         "http://localhost:8080",
	"frontend_dir":            "./frontend",
	"db.host":                 "localhost",
	"db.port":                 "5432",
	"db.name":                 "menulink",
	"db.user":                 "postgres",
	"db.password":             "",
	"db.sslmode":              "disable",
	"redis.host":              "localhost",
	"redis.port":              "6379",
	"kafka.broker":            "localhost:9092",
	"kafka.orders_topic":      "orders",
	"kafka.group_id":          "recorder-svc",
	"media.bucket":            "menulink-media",
	"media.region":            "eu-central-1",
	"media.public_url":        "",
	"media.max_upload_bytes":  10 << 20,
	"identity.url":            "http://localhost:9999",
	"identity.anon_key":       "",
	"identity.jwt_secret":     "",
	"services.storefront_url": "http://localhost:8081",
	"services.order_url":      "http://localhost:8082",
	"cart_ttl":                "24h",
	"storefront_cache_ttl":    "5m",
	"pending_restaurant_ttl":  "168h",
	"allowed_origins":         "*",
}

// Load reads configuration from defaults, an optional YAML file and the
// environment. DB_HOST style variables map onto nested keys.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &cfg, nil
}

func (c DBConfig) ConnString() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=" + c.SSLMode
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func MustInitPostgres(cfg DBConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.OrdersTopic,
		GroupID: cfg.GroupID,
	})
}

// NewKafkaWriter hashes message keys so equal keys share a partition.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.OrdersTopic,
		Balancer: &kafka.Hash{},
	}
}

// ListenAddr returns the configured address or fallback when none is set.
func (c *Config) ListenAddr(fallback string) string {
	if c.HTTPAddr != "" {
		return c.HTTPAddr
	}
	return fallback
}
