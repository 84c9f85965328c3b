package config

import (
	"os"
	"path/filepath"
	"strconv"
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
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTimezone           = "Asia/Jakarta"
	defaultEventReminderTime  = "07:00"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Dispatch modes
const (
	DispatchModeInProcess = "inprocess"
	DispatchModePubSub    = "pubsub"
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
		// APIKeys accepted in the x-api-key header. Empty disables the check.
		APIKeys  []string `json:"apiKeys" yaml:"apiKeys"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Registry RegistryConfig `json:"registry" yaml:"registry"`

	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for due-event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs the scheduler tick lease. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Prayer PrayerConfig `json:"prayer" yaml:"prayer"`

	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects the persistence driver
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate creates or alters the devices and delivery_records tables on start.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RegistryConfig defines device registry defaults
type RegistryConfig struct {
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`
}

// SchedulerConfig defines the due-event polling loop
type SchedulerConfig struct {
	// Must not exceed one minute, the smallest lead time granularity.
	TickInterval time.Duration `json:"tickInterval" yaml:"tickInterval"`

	// Due events older than this are recorded as skipped-stale instead of being sent.
	Staleness time.Duration `json:"staleness" yaml:"staleness"`

	// How far back a tick looks for triggers it has not recorded yet, so that a
	// restart just after midnight still settles the previous day. At least Staleness.
	CatchUpWindow time.Duration `json:"catchUpWindow" yaml:"catchUpWindow"`

	// Delivery records older than this are pruned.
	Retention     time.Duration `json:"retention" yaml:"retention"`
	PruneInterval time.Duration `json:"pruneInterval" yaml:"pruneInterval"`

	Workers  int `json:"workers" yaml:"workers"`
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Local wall-clock time ("HH:MM") at which Islamic-event reminders become due.
	EventReminderTime string `json:"eventReminderTime" yaml:"eventReminderTime"`
}

// DispatchConfig defines how due events reach the notifier
type DispatchConfig struct {
	// Mode is "inprocess" or "pubsub"
	Mode            string        `json:"mode" yaml:"mode"`
	Workers         int           `json:"workers" yaml:"workers"`
	QueueSize       int           `json:"queueSize" yaml:"queueSize"`
	NotifierTimeout time.Duration `json:"notifierTimeout" yaml:"notifierTimeout"`

	// A pending claim older than this is considered abandoned.
	ClaimLease    time.Duration `json:"claimLease" yaml:"claimLease"`
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int           `json:"burst" yaml:"burst"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the dispatcher worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RedisConfig defines the redis connection used for the tick lease
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LeaseTTL time.Duration `json:"leaseTTL" yaml:"leaseTTL"`
}

// PrayerConfig defines the prayer time provider
type PrayerConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	Method        int           `json:"method" yaml:"method"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
}

// CalendarConfig points at an optional Islamic-event catalog override
type CalendarConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. file:///etc/muslimapp or gs://bucket
	CatalogBucket string `json:"catalogBucket" yaml:"catalogBucket"`
	CatalogKey    string `json:"catalogKey" yaml:"catalogKey"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: SCHEDULER_TICKINTERVAL -> scheduler.tickInterval
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Registry.DefaultTimezone == "" {
		cfg.Registry.DefaultTimezone = defaultTimezone
	}

	s := &cfg.Scheduler
	if s.TickInterval <= 0 {
		s.TickInterval = time.Minute
	}
	if s.Staleness <= 0 {
		s.Staleness = 30 * time.Minute
	}
	if s.CatchUpWindow <= 0 {
		s.CatchUpWindow = 2 * time.Hour
	}
	if s.Retention <= 0 {
		s.Retention = 48 * time.Hour
	}
	if s.PruneInterval <= 0 {
		s.PruneInterval = time.Hour
	}
	if s.Workers <= 0 {
		s.Workers = 8
	}
	if s.PageSize <= 0 {
		s.PageSize = 200
	}
	if s.EventReminderTime == "" {
		s.EventReminderTime = defaultEventReminderTime
	}

	d := &cfg.Dispatch
	if d.Mode == "" {
		d.Mode = DispatchModeInProcess
	}
	if d.Workers <= 0 {
		d.Workers = 4
	}
	if d.QueueSize <= 0 {
		d.QueueSize = 1024
	}
	if d.NotifierTimeout <= 0 {
		d.NotifierTimeout = 10 * time.Second
	}
	if d.ClaimLease <= 0 {
		d.ClaimLease = 2 * time.Minute
	}
	if d.RatePerSecond <= 0 {
		d.RatePerSecond = 50
	}
	if d.Burst <= 0 {
		d.Burst = 10
	}

	p := &cfg.Prayer
	if p.BaseURL == "" {
		p.BaseURL = "https://api.aladhan.com"
	}
	if p.Method == 0 {
		p.Method = 20
	}
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	if p.RatePerSecond <= 0 {
		p.RatePerSecond = 5
	}

	if cfg.Calendar.CatalogKey == "" {
		cfg.Calendar.CatalogKey = "islamic_events.yaml"
	}

	if cfg.Redis != nil && cfg.Redis.LeaseTTL <= 0 {
		cfg.Redis.LeaseTTL = 2 * time.Minute
	}
}

func (cfg *Config) validate() error {
	if cfg.Scheduler.TickInterval > time.Minute {
		return errors.Errorf("scheduler.tickInterval must not exceed 1m, got %s", cfg.Scheduler.TickInterval)
	}
	if _, err := time.LoadLocation(cfg.Registry.DefaultTimezone); err != nil {
		return errors.Wrapf(err, "registry.defaultTimezone %q", cfg.Registry.DefaultTimezone)
	}
	if _, err := ParseClock(cfg.Scheduler.EventReminderTime); err != nil {
		return errors.Wrap(err, "scheduler.eventReminderTime")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres storage driver")
		}
	case StorageDriverMemory:
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	switch cfg.Dispatch.Mode {
	case DispatchModeInProcess, DispatchModePubSub:
	default:
		return errors.Errorf("unknown dispatch mode: %s", cfg.Dispatch.Mode)
	}
	if cfg.Dispatch.ClaimLease <= cfg.Dispatch.NotifierTimeout {
		return errors.Errorf("dispatch.claimLease (%s) must exceed dispatch.notifierTimeout (%s)",
			cfg.Dispatch.ClaimLease, cfg.Dispatch.NotifierTimeout)
	}

	return nil
}

// ParseClock parses an "HH:MM" wall-clock value into an offset from midnight.
func ParseClock(value string) (time.Duration, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid clock value %q", value)
	}

	return time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute, nil
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
