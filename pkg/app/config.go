package app

import (
	"context"
	"fmt"

	dbutils "github.com/tendant/db-utils/db"

	"github.com/purevote/purevote/pkg/notification"
	"github.com/purevote/purevote/pkg/prefs"
	"github.com/purevote/purevote/pkg/profile"
)

// DbConfig holds the postgres connection settings.
type DbConfig struct {
	Host     string `env:"PUREVOTE_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"PUREVOTE_PG_PORT" env-default:"5432"`
	Database string `env:"PUREVOTE_PG_DATABASE" env-default:"purevote_db"`
	User     string `env:"PUREVOTE_PG_USER" env-default:"purevote"`
	Password string `env:"PUREVOTE_PG_PASSWORD" env-default:"pwd"`
}

// ToDbConfig converts to the db-utils pool config.
func (d DbConfig) ToDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

// JwtConfig holds the session token settings.
type JwtConfig struct {
	JwtSecret      string `env:"JWT_SECRET" env-default:"very-secure-jwt-secret"`
	CookieHttpOnly bool   `env:"COOKIE_HTTP_ONLY" env-default:"true"`
	CookieSecure   bool   `env:"COOKIE_SECURE" env-default:"false"`
}

// SmtpConfig holds the outgoing email settings. An empty host selects the
// mock notifier, useful for local development.
type SmtpConfig struct {
	Host     string `env:"SMTP_HOST" env-default:""`
	Port     int    `env:"SMTP_PORT" env-default:"587"`
	TLS      bool   `env:"SMTP_TLS" env-default:"true"`
	Username string `env:"SMTP_USERNAME" env-default:""`
	Password string `env:"SMTP_PASSWORD" env-default:""`
	From     string `env:"SMTP_FROM" env-default:"noreply@purevote.example.com"`
}

// ToSMTPConfig converts to the notification layer's SMTP config.
func (s SmtpConfig) ToSMTPConfig() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:     s.Host,
		Port:     s.Port,
		TLS:      s.TLS,
		Username: s.Username,
		Password: s.Password,
		From:     s.From,
	}
}

// PasswordPolicyConfig holds the signup validation policy.
type PasswordPolicyConfig struct {
	MinLength         int  `env:"PASSWORD_MIN_LENGTH" env-default:"8"`
	RequireConfirm    bool `env:"PASSWORD_REQUIRE_CONFIRM" env-default:"true"`
	RequireAgreeTerms bool `env:"SIGNUP_REQUIRE_AGREE_TERMS" env-default:"true"`
}

// SessionConfig holds session behavior flags.
type SessionConfig struct {
	DemoMode     bool   `env:"PUREVOTE_DEMO_MODE" env-default:"false"`
	ResetBaseURL string `env:"PUREVOTE_RESET_BASE_URL" env-default:"https://purevote.example.com/reset"`
}

// StorageConfig selects the storage backend for profiles and preferences.
type StorageConfig struct {
	Driver  string `env:"PUREVOTE_STORAGE" env-default:"memory"`
	DataDir string `env:"PUREVOTE_DATA_DIR" env-default:"./data"`
}

// NewProfileStore builds the profile store named by the storage config.
// The postgres driver opens a db-utils pool with the given db config.
func NewProfileStore(ctx context.Context, cfg StorageConfig, dbConfig DbConfig) (profile.Store, error) {
	switch cfg.Driver {
	case "memory":
		return profile.NewInMemoryStore(), nil
	case "file":
		return profile.NewFileStore(cfg.DataDir)
	case "postgres":
		pool, err := dbutils.NewDbPool(ctx, dbConfig.ToDbConfig())
		if err != nil {
			return nil, fmt.Errorf("failed creating dbpool: %w", err)
		}
		return profile.NewPostgresStore(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// NewPrefsStore builds the preference store named by the storage config.
// Preferences have no postgres backend; that driver falls back to file.
func NewPrefsStore(cfg StorageConfig) (prefs.Store, error) {
	switch cfg.Driver {
	case "memory":
		return prefs.NewInMemoryStore(), nil
	case "file", "postgres":
		return prefs.NewFileStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
