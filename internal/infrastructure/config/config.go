package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvProd = "prod"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	SessionMemory   = "memory"
	SessionRedis    = "redis"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Storage    Storage
	Session    Session
	Prometheus Prometheus
	Redis      Redis
	Security   Security
	Blog       Blog
}

type HTTPServer struct {
	Address      string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type Database struct {
	Username string
	Password string
	Host     string
	Port     string
	DbName   string
	SSLMode  string
}

type Storage struct {
	Driver       string
	CacheEnabled bool
}

type Session struct {
	Driver     string
	CookieName string
	Secret     string
	TTL        time.Duration
	Secure     bool
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Security struct {
	BcryptCost int
}

type Blog struct {
	PageSize int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("blog")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.read_timeout", 10*time.Second)
	viper.SetDefault("http_server.write_timeout", 10*time.Second)
	viper.SetDefault("http_server.idle_timeout", 60*time.Second)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "blog-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "blog")
	viper.SetDefault("database.ssl_mode", "disable")

	viper.SetDefault("storage.driver", StoragePostgres)
	viper.SetDefault("storage.cache_enabled", true)

	viper.SetDefault("session.driver", SessionRedis)
	viper.SetDefault("session.cookie_name", "sessionid")
	viper.SetDefault("session.secret", "")
	viper.SetDefault("session.ttl", 14*24*time.Hour)
	viper.SetDefault("session.secure", false)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("security.bcrypt_cost", 12)

	viper.SetDefault("blog.page_size", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      viper.GetString("http_server.address"),
			Port:         viper.GetInt("http_server.port"),
			ReadTimeout:  viper.GetDuration("http_server.read_timeout"),
			WriteTimeout: viper.GetDuration("http_server.write_timeout"),
			IdleTimeout:  viper.GetDuration("http_server.idle_timeout"),
		},
		Database: Database{
			Username: viper.GetString("database.username"),
			Password: viper.GetString("database.password"),
			Host:     viper.GetString("database.host"),
			Port:     viper.GetString("database.port"),
			DbName:   viper.GetString("database.db_name"),
			SSLMode:  viper.GetString("database.ssl_mode"),
		},
		Storage: Storage{
			Driver:       viper.GetString("storage.driver"),
			CacheEnabled: viper.GetBool("storage.cache_enabled"),
		},
		Session: Session{
			Driver:     viper.GetString("session.driver"),
			CookieName: viper.GetString("session.cookie_name"),
			Secret:     viper.GetString("session.secret"),
			TTL:        viper.GetDuration("session.ttl"),
			Secure:     viper.GetBool("session.secure"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		Security: Security{
			BcryptCost: viper.GetInt("security.bcrypt_cost"),
		},
		Blog: Blog{
			PageSize: viper.GetInt("blog.page_size"),
		},
	}

	if err := config.Validate(); err != nil {
		log.Printf("Invalid config: %s", err)
		os.Exit(1)
	}

	return config
}

// DSN builds the postgres connection string for the configured database.
func (d Database) DSN() string {
	dsn := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DbName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("session.secret must be set")
	}
	// Memory storage applies writes immediately and cannot roll back a
	// failed account deletion.
	if c.Env == EnvProd && c.Storage.Driver == StorageMemory {
		return fmt.Errorf("storage.driver %q is not allowed in %s", StorageMemory, EnvProd)
	}
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	switch c.Session.Driver {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("unknown session.driver %q", c.Session.Driver)
	}
	return nil
}

// RedisEnabled reports whether any component needs a redis connection.
func (c *Config) RedisEnabled() bool {
	return c.Session.Driver == SessionRedis || c.Storage.CacheEnabled
}
