package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"leasingcrm/internal/models"
)

type AuthConfig struct {
	Enabled           bool   `yaml:"enabled"`
	JWTSecret         string `yaml:"jwt_secret"`
	TokenTTLMinutes   int    `yaml:"token_ttl_minutes"`
	AdminEmail        string `yaml:"admin_email"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	NotifyEmail  string `yaml:"notify_email"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type FilesConfig struct {
	FontPath string `yaml:"font_path"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Auth     AuthConfig      `yaml:"auth"`
	Email    EmailConfig     `yaml:"email"`
	Telegram TelegramConfig  `yaml:"telegram"`
	Files    FilesConfig     `yaml:"files"`
	Catalog  *models.Catalog `yaml:"catalog"`
}

// LoadConfig reads config/config.yaml (CRM_CONFIG overrides the path).
// A missing file is not an error: the defaults plus DATABASE_URL are
// enough to run. A file that exists but does not parse is fatal.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8000
	cfg.Auth.TokenTTLMinutes = 12 * 60

	path := os.Getenv("CRM_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			panic("failed to parse " + path + ": " + err.Error())
		}
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Auth.TokenTTLMinutes <= 0 {
		cfg.Auth.TokenTTLMinutes = 12 * 60
	}
	return cfg
}

// EffectiveCatalog returns the configured catalog, or the built-in one
// when the config file does not override it.
func (c *Config) EffectiveCatalog() models.Catalog {
	if c.Catalog != nil {
		return *c.Catalog
	}
	return models.DefaultCatalog()
}
