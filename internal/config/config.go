package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP    HTTPConfig    `mapstructure:"http"`
	Content ContentConfig `mapstructure:"content"`
	Relay   RelayConfig   `mapstructure:"relay"`
	Likes   LikesConfig   `mapstructure:"likes"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	NATS    NATSConfig    `mapstructure:"nats"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ContentConfig describes the upstream admin CMS and the presentation
// constants the site was built around.
type ContentConfig struct {
	APIBaseURL      string        `mapstructure:"api_base_url"`
	StorageBaseURL  string        `mapstructure:"storage_base_url"`
	SiteName        string        `mapstructure:"site_name"`
	PageSize        int           `mapstructure:"page_size"`
	ReadingWPM      int           `mapstructure:"reading_wpm"`
	RelatedCount    int           `mapstructure:"related_count"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type RelayConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LikesConfig selects the backend for like flags and counters.
// Supported values: "redis", "mongo".
type LikesConfig struct {
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	MinPoolSize    uint64        `mapstructure:"min_pool_size"`
	MaxPoolSize    uint64        `mapstructure:"max_pool_size"`
}

type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type SMTPConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	SenderEmail string `mapstructure:"sender_email"`
	OwnerEmail  string `mapstructure:"owner_email"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetDefault("http.port", "8080")
	viper.SetDefault("http.read_timeout", "10s")
	viper.SetDefault("http.write_timeout", "15s")
	viper.SetDefault("http.shutdown_timeout", "10s")

	viper.SetDefault("content.api_base_url", "https://admin.artdevata.net/api")
	viper.SetDefault("content.storage_base_url", "https://admin.artdevata.net/storage")
	viper.SetDefault("content.site_name", "Art Devata")
	viper.SetDefault("content.page_size", 9)
	viper.SetDefault("content.reading_wpm", 200)
	viper.SetDefault("content.related_count", 5)
	viper.SetDefault("content.request_timeout", "10s")
	viper.SetDefault("content.cache_ttl", "5m")
	viper.SetDefault("content.refresh_interval", "30s")

	viper.SetDefault("relay.url", "https://formsubmit.co/ajax/artdevata@gmail.com")
	viper.SetDefault("relay.timeout", "15s")

	viper.SetDefault("likes.backend", "redis")

	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "content_service_db")
	viper.SetDefault("mongo.connect_timeout", "10s")
	viper.SetDefault("mongo.min_pool_size", 0)
	viper.SetDefault("mongo.max_pool_size", 100)

	viper.SetDefault("nats.url", "nats://localhost:4222")
	viper.SetDefault("nats.connect_timeout", "5s")

	viper.SetDefault("smtp.port", 587)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		if fi, _ := os.Stat(path); !fi.IsDir() {
			viper.SetConfigFile(path)
		} else {
			viper.AddConfigPath(path)
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CONTENT") // e.g. CONTENT_REDIS_ADDRESS

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found; using defaults and environment variables.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
