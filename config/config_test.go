package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{Postgres: &postgres.DBConn{}}
	cfg.Env.Log.Level = "info"
	cfg.Import.DefaultCategoryID = 1
	cfg.Import.MaxOrderItems = 2
	cfg.Import.CategoryAliases = []CategoryAlias{{Label: "Smartphone", CategoryID: 7}}

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing default category", mutate: func(cfg *Config) { cfg.Import.DefaultCategoryID = 0 }, wantErr: true},
		{name: "alias without category", mutate: func(cfg *Config) {
			cfg.Import.CategoryAliases = append(cfg.Import.CategoryAliases, CategoryAlias{Label: "Gadgets"})
		}, wantErr: true},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.Env.Log.Level = "verbose" }, wantErr: true},
		{name: "missing postgres", mutate: func(cfg *Config) { cfg.Postgres = nil }, wantErr: true},
		{name: "google provider without topic", mutate: func(cfg *Config) {
			cfg.PubSub = &PubSubConfig{Provider: "google", ProjectID: "shop"}
		}, wantErr: true},
		{name: "local provider", mutate: func(cfg *Config) {
			cfg.PubSub = &PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085"}
		}},
		{name: "unknown provider", mutate: func(cfg *Config) {
			cfg.PubSub = &PubSubConfig{Provider: "kafka"}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSourcesConfig_Source(t *testing.T) {
	sources := SourcesConfig{
		Categories: "data/categories.csv",
		Products:   "gs://shop-exports/products.csv",
		Orders:     "data/orders.csv",
		Sections:   "data/sections.csv",
	}

	assert.Equal(t, "data/categories.csv", sources.Source("categories"))
	assert.Equal(t, "gs://shop-exports/products.csv", sources.Source("products"))
	assert.Equal(t, "data/orders.csv", sources.Source("orders"))
	assert.Equal(t, "data/sections.csv", sources.Source("sections"))
	assert.Empty(t, sources.Source("reviews"))
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	t.Setenv("IMPORT_DEFAULTCATEGORYID", "12")
	t.Setenv("PUBSUB_TOPICID", "runs")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, uint(12), cfg.Import.DefaultCategoryID)
	assert.Equal(t, "runs", cfg.PubSub.TopicID)
	assert.Equal(t, "/uploads/", cfg.Import.LegacyUploadPrefix)
	require.Len(t, cfg.Import.CategoryAliases, 3)
	assert.Equal(t, CategoryAlias{Label: "Smartphone", CategoryID: 7}, cfg.Import.CategoryAliases[0])
}

func TestLoadWithEnv_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staging.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  slowQueryThreshold: 1s
pubsub:
  provider: local
  publishTimeout: 3s
`), 0o600))
	t.Setenv(ConfigFileEnv, path)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, 3*time.Second, cfg.PubSub.PublishTimeout)
	assert.Equal(t, "local", cfg.PubSub.Provider)
}

func TestLoadWithEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Import.MaxOrderItems = 5

	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.Import.MaxOrderItems)
	assert.Equal(t, defaultMaxFailures, cfg.Import.MaxReportedFailures)
	assert.Equal(t, defaultSlowQuery, cfg.Database.SlowQueryThreshold)
}
