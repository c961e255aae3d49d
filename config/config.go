package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"storefront/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 7 * 24 * time.Hour

	defaultGuestOrderRate  = 0.2
	defaultGuestOrderBurst = 5
	defaultRateLimitExpiry = 10 * time.Minute

	defaultKafkaTopic   = "order-events"
	defaultKafkaGroupID = "order-timeline"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin is the back-office account ensured at startup. Leave empty to skip seeding.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Kafka configuration, used when pubsub.provider is "kafka" and by the order worker consumer
	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`

	// QRCode configuration for order receipt QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`

	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

// AdminConfig defines the seeded administrator account
type AdminConfig struct {
	Email     string `json:"email" yaml:"email"`
	Password  string `json:"password" yaml:"password"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of the push OIDC token checked by the order worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// KafkaConfig defines the Kafka brokers and topic for order events
type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
	GroupID string   `json:"groupId" yaml:"groupId"`
}

// Enabled reports whether at least one broker is configured.
func (k *KafkaConfig) Enabled() bool {
	return k != nil && len(k.Brokers) > 0
}

// RateLimitConfig defines per-client request limits
type RateLimitConfig struct {
	GuestOrders RateLimitRule `json:"guestOrders" yaml:"guestOrders"`
}

// RateLimitRule is a token bucket: Rate requests per second with Burst headroom.
// Idle client entries are dropped after ExpiresIn.
type RateLimitRule struct {
	Rate      float64       `json:"rate" yaml:"rate"`
	Burst     int           `json:"burst" yaml:"burst"`
	ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// TelemetryConfig defines OpenTelemetry exporters
type TelemetryConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	// OTLP gRPC collector endpoint for traces; tracing is off when empty
	OTLPEndpoint string `json:"otlpEndpoint" yaml:"otlpEndpoint"`
}

// PaginationConfig defines listing page sizes
type PaginationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A local .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = constants.DefaultMinPasswordLength
	}

	if cfg.Pagination == nil {
		cfg.Pagination = &PaginationConfig{}
	}
	if cfg.Pagination.DefaultLimit <= 0 {
		cfg.Pagination.DefaultLimit = constants.DefaultPageLimit
	}
	if cfg.Pagination.MaxLimit <= 0 {
		cfg.Pagination.MaxLimit = constants.MaxPageLimit
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.GuestOrders.Rate <= 0 {
		cfg.RateLimit.GuestOrders.Rate = defaultGuestOrderRate
	}
	if cfg.RateLimit.GuestOrders.Burst <= 0 {
		cfg.RateLimit.GuestOrders.Burst = defaultGuestOrderBurst
	}
	if cfg.RateLimit.GuestOrders.ExpiresIn <= 0 {
		cfg.RateLimit.GuestOrders.ExpiresIn = defaultRateLimitExpiry
	}

	if cfg.Kafka != nil {
		if cfg.Kafka.Topic == "" {
			cfg.Kafka.Topic = defaultKafkaTopic
		}
		if cfg.Kafka.GroupID == "" {
			cfg.Kafka.GroupID = defaultKafkaGroupID
		}
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
