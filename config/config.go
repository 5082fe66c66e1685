package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

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
	defaultPath         = "."
	defaultReminderDays = 3
	defaultPageSize     = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Telegram configuration for the bot channel
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// SMS configuration for customer text messages
	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// Reminder configuration for the background poller
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// Vision configuration for shipping-label image analysis
	Vision *VisionConfig `json:"vision" yaml:"vision"`

	// Storage configuration for shipment images
	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TelegramConfig defines the bot API credentials and webhook binding
type TelegramConfig struct {
	// Bot API token issued by BotFather; also the webhook path secret
	Token string `json:"token" yaml:"token"`

	// Public base URL the webhook is registered under
	WebhookURL string `json:"webhookUrl" yaml:"webhookUrl"`

	// Bot API endpoint override, defaults to https://api.telegram.org
	APIEndpoint string `json:"apiEndpoint" yaml:"apiEndpoint"`

	// Page size for paginated notification lists
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// SMSConfig defines the SNS sender configuration
type SMSConfig struct {
	Region   string `json:"region" yaml:"region"`
	SenderID string `json:"senderId" yaml:"senderId"`
}

// ReminderConfig defines the background reminder poller configuration
type ReminderConfig struct {
	// Poll interval between reminder sweeps
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Reminder delay in days applied when the operator does not pick one
	DefaultDays int `json:"defaultDays" yaml:"defaultDays"`
}

// VisionConfig defines the image-analysis model configuration
type VisionConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Model    string `json:"model" yaml:"model"`
}

// StorageConfig defines where shipment images are kept
type StorageConfig struct {
	// Local directory backing the image blob bucket
	ImagesDir string `json:"imagesDir" yaml:"imagesDir"`
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
			// Example: TELEGRAM_WEBHOOKURL -> telegram.webhookUrl (not telegram.webhookurl)
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
	// A local .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Telegram == nil || strings.TrimSpace(cfg.Telegram.Token) == "" {
		return nil, errors.New("telegram.token is required")
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills the optional sections a deployment may leave out.
func applyDefaults(cfg *Config) {
	if cfg.Telegram.APIEndpoint == "" {
		cfg.Telegram.APIEndpoint = "https://api.telegram.org"
	}
	if cfg.Telegram.PageSize <= 0 {
		cfg.Telegram.PageSize = defaultPageSize
	}

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	if cfg.Reminder.Interval <= 0 {
		cfg.Reminder.Interval = time.Minute
	}
	if cfg.Reminder.DefaultDays <= 0 {
		cfg.Reminder.DefaultDays = defaultReminderDays
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.ImagesDir == "" {
		cfg.Storage.ImagesDir = "images"
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
