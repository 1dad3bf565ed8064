package config_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/config"
)

func TestDatabase_DSN(t *testing.T) {
	tests := []struct {
		name     string
		db       config.Database
		wantUser string
		wantPass string
	}{
		{
			name:     "plain credentials",
			db:       config.Database{Username: "postgres", Password: "admin", Host: "blog-db", Port: "5432", DbName: "blog", SSLMode: "disable"},
			wantUser: "postgres",
			wantPass: "admin",
		},
		{
			name:     "password with reserved characters",
			db:       config.Database{Username: "blog user", Password: "p@ss word/+:?#", Host: "blog-db", Port: "5432", DbName: "blog", SSLMode: "require"},
			wantUser: "blog user",
			wantPass: "p@ss word/+:?#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := url.Parse(tt.db.DSN())
			require.NoError(t, err)

			assert.Equal(t, "postgresql", parsed.Scheme)
			assert.Equal(t, tt.wantUser, parsed.User.Username())
			password, ok := parsed.User.Password()
			assert.True(t, ok)
			assert.Equal(t, tt.wantPass, password)
			assert.Equal(t, "blog-db:5432", parsed.Host)
			assert.Equal(t, "/blog", parsed.Path)
			assert.Equal(t, tt.db.SSLMode, parsed.Query().Get("sslmode"))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Env:     "dev",
			Storage: config.Storage{Driver: config.StoragePostgres},
			Session: config.Session{Driver: config.SessionRedis, Secret: "secret"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{
			name:   "memory storage in dev",
			mutate: func(c *config.Config) { c.Storage.Driver = config.StorageMemory },
		},
		{
			name: "memory storage in prod",
			mutate: func(c *config.Config) {
				c.Env = config.EnvProd
				c.Storage.Driver = config.StorageMemory
			},
			wantErr: `storage.driver "memory" is not allowed in prod`,
		},
		{
			name:    "missing secret",
			mutate:  func(c *config.Config) { c.Session.Secret = "" },
			wantErr: "session.secret must be set",
		},
		{
			name:    "unknown storage driver",
			mutate:  func(c *config.Config) { c.Storage.Driver = "sqlite" },
			wantErr: `unknown storage.driver "sqlite"`,
		},
		{
			name:    "unknown session driver",
			mutate:  func(c *config.Config) { c.Session.Driver = "cookie" },
			wantErr: `unknown session.driver "cookie"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
