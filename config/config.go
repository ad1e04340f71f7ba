package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath          = "."
	defaultMaxOrderItems = 2
	defaultMaxFailures   = 50
	defaultSlowQuery     = 200 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"required"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Import ImportConfig `json:"import" yaml:"import"`

	// PubSub configuration for run-completed events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// DatabaseConfig holds store options that are not connection parameters.
type DatabaseConfig struct {
	// AutoMigrate creates missing tables and columns at startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged as warnings. Zero selects 200ms.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold" validate:"gte=0"`

	// LogQueries logs every statement at debug level.
	LogQueries bool `json:"logQueries" yaml:"logQueries"`
}

// ImportConfig defines how CSV sources are interpreted.
type ImportConfig struct {
	// Category assigned when a product's category label resolves to nothing.
	DefaultCategoryID uint `json:"defaultCategoryId" yaml:"defaultCategoryId" validate:"required,gt=0"`

	// Number of items[i] slots read from each order row
	MaxOrderItems int `json:"maxOrderItems" yaml:"maxOrderItems" validate:"gte=0,lte=50"`

	CategoryAliases []CategoryAlias `json:"categoryAliases" yaml:"categoryAliases" validate:"dive"`

	// Extra time layouts tried after the built-in ones
	TimestampLayouts []string `json:"timestampLayouts" yaml:"timestampLayouts"`

	LegacyUploadPrefix string `json:"legacyUploadPrefix" yaml:"legacyUploadPrefix"`
	ImageBasePath      string `json:"imageBasePath" yaml:"imageBasePath"`

	// Upper bound on row failures kept in the run summary
	MaxReportedFailures int `json:"maxReportedFailures" yaml:"maxReportedFailures" validate:"gte=0"`

	Sources SourcesConfig `json:"sources" yaml:"sources"`
}

// CategoryAlias maps a free-text product category label onto a category id.
type CategoryAlias struct {
	Label      string `json:"label" yaml:"label" validate:"required"`
	CategoryID uint   `json:"categoryId" yaml:"categoryId" validate:"required,gt=0"`
}

// SourcesConfig holds the default location of each dataset. Values are
// local paths or blob URLs.
type SourcesConfig struct {
	Categories string `json:"categories" yaml:"categories"`
	Products   string `json:"products" yaml:"products"`
	Orders     string `json:"orders" yaml:"orders"`
	Sections   string `json:"sections" yaml:"sections"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "" disables events, "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local"`

	// Upper bound on waiting for the broker ack; zero selects 10s
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout" validate:"gte=0"`
}

// Source returns the configured location for dataset.
func (s SourcesConfig) Source(dataset string) string {
	switch dataset {
	case "categories":
		return s.Categories
	case "products":
		return s.Products
	case "orders":
		return s.Orders
	case "sections":
		return s.Sections
	default:
		return ""
	}
}

// ConfigFileEnv names an explicit config file and bypasses the search path.
const ConfigFileEnv = "IMPORTER_CONFIG"

// LoadWithEnv reads <name>.yaml from the first search directory that has
// it, then overlays environment variables. POSTGRES_SSLMODE sets
// postgres.sslMode: each env segment is matched against the keys the YAML
// already defines.
func LoadWithEnv[T any](name string, searchDirs ...string) (*T, error) {
	path, err := findConfigFile(name, searchDirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	loaded := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, loaded), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "failed to apply env overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(name string, searchDirs []string) (string, error) {
	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", ConfigFileEnv, explicit)
		}

		return explicit, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, dir := range append([]string{defaultPath}, searchDirs...) {
		candidate := filepath.Join(wd, dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found under %v", name, searchDirs)
}

// New loads config.yaml from ./, ./config or a parent config directory.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Replicas come only from POSTGRES_REPLICAS_<n>_* variables.
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Import.MaxOrderItems == 0 {
		cfg.Import.MaxOrderItems = defaultMaxOrderItems
	}
	if cfg.Import.MaxReportedFailures == 0 {
		cfg.Import.MaxReportedFailures = defaultMaxFailures
	}
	if cfg.Database.SlowQueryThreshold == 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQuery
	}
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without host and port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
