package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Survey    SurveyConfig    `yaml:"survey"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Audit     AuditConfig     `yaml:"audit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-API-Key,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `yaml:"host"                env:"SERVER_HOST"                env-default:"0.0.0.0"`
	Port              int           `yaml:"port"                env:"SERVER_PORT"                env-default:"8080"`
	ReadTimeout       time.Duration `yaml:"read_timeout"        env:"SERVER_READ_TIMEOUT"        env-default:"10s"`
	WriteTimeout      time.Duration `yaml:"write_timeout"       env:"SERVER_WRITE_TIMEOUT"       env-default:"30s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"SERVER_IDLE_TIMEOUT"        env-default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"SERVER_SHUTDOWN_TIMEOUT"    env-default:"10s"`
	TrustProxyHeaders bool          `yaml:"trust_proxy_headers" env:"SERVER_TRUST_PROXY_HEADERS" env-default:"false"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"      env:"SERVER_MAX_BODY_BYTES"      env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds the operator shared secret and session settings.
// Exactly one of APIKey and APIKeyHash must be set.
type AuthConfig struct {
	APIKey        string        `yaml:"api_key"        env:"AUTH_API_KEY"`
	APIKeyHash    string        `yaml:"api_key_hash"   env:"AUTH_API_KEY_HASH"`
	SessionSecret string        `yaml:"session_secret" env:"AUTH_SESSION_SECRET"`
	SessionIssuer string        `yaml:"session_issuer" env:"AUTH_SESSION_ISSUER" env-default:"materiality-survey"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"AUTH_SESSION_TTL"    env-default:"1h"`
}

// SessionsEnabled reports whether operator session tokens can be issued.
func (c AuthConfig) SessionsEnabled() bool {
	return c.SessionSecret != ""
}

// SurveyConfig holds survey lifecycle and submission policies.
type SurveyConfig struct {
	PublicBaseURL       string `yaml:"public_base_url"       env:"SURVEY_PUBLIC_BASE_URL"       env-default:"http://localhost:8080"`
	DefaultDeadlineDays int    `yaml:"default_deadline_days" env:"SURVEY_DEFAULT_DEADLINE_DAYS" env-default:"30"`
	TopicInsertMode     string `yaml:"topic_insert_mode"     env:"SURVEY_TOPIC_INSERT_MODE"     env-default:"atomic"`
	ResubmissionPolicy  string `yaml:"resubmission_policy"   env:"SURVEY_RESUBMISSION_POLICY"   env-default:"replace"`
	MaxTopics           int    `yaml:"max_topics"            env:"SURVEY_MAX_TOPICS"            env-default:"200"`
	MaxCommentLength    int    `yaml:"max_comment_length"    env:"SURVEY_MAX_COMMENT_LENGTH"    env-default:"2000"`
}

// SMTPConfig holds outbound mail settings. Mail is disabled when Host is empty.
type SMTPConfig struct {
	Host           string        `yaml:"host"            env:"SMTP_HOST"`
	Port           int           `yaml:"port"            env:"SMTP_PORT"            env-default:"587"`
	Username       string        `yaml:"username"        env:"SMTP_USERNAME"`
	Password       string        `yaml:"password"        env:"SMTP_PASSWORD"`
	From           string        `yaml:"from"            env:"SMTP_FROM"            env-default:"no-reply@localhost"`
	FromName       string        `yaml:"from_name"       env:"SMTP_FROM_NAME"       env-default:"Sustainability Team"`
	Timeout        time.Duration `yaml:"timeout"         env:"SMTP_TIMEOUT"         env-default:"15s"`
	MaxConcurrency int           `yaml:"max_concurrency" env:"SMTP_MAX_CONCURRENCY" env-default:"4"`
}

// Enabled reports whether an SMTP relay is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits stakeholder-facing traffic per client address.
type RateLimitConfig struct {
	SubmissionsPerMinute int           `yaml:"submissions_per_minute" env:"RATE_LIMIT_SUBMISSIONS_PER_MINUTE" env-default:"20"`
	FetchesPerMinute     int           `yaml:"fetches_per_minute"     env:"RATE_LIMIT_FETCHES_PER_MINUTE"     env-default:"120"`
	CleanupInterval      time.Duration `yaml:"cleanup_interval"       env:"RATE_LIMIT_CLEANUP_INTERVAL"       env-default:"5m"`
}

// AuditConfig controls how long audit records are kept by cmd/cleanup.
type AuditConfig struct {
	RetentionDays int `yaml:"retention_days" env:"AUDIT_RETENTION_DAYS" env-default:"730"`
}
