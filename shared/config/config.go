package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

// Duration accepts "24h" style values in yaml.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

type Public struct {
	Port           int      `yaml:"port"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	SecureCookies  bool     `yaml:"secure_cookies"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	JwtTTL         Duration `yaml:"jwt_ttl"`
	MinPasswordLen int      `yaml:"min_password_len"`
	Storage        Storage  `yaml:"storage"`
}

type Storage struct {
	Backend    string `yaml:"backend"` // "memory", "badger" or "redis"
	BadgerPath string `yaml:"badger_path"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTL)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := Config{public, private}
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Port == 0 {
		c.Public.Port = 8080
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.JwtTTL == 0 {
		c.Public.JwtTTL = Duration(24 * time.Hour)
	}
	if c.Public.MinPasswordLen == 0 {
		c.Public.MinPasswordLen = 8
	}
	if c.Public.Storage.Backend == "" {
		c.Public.Storage.Backend = "memory"
	}
}
