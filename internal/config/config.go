package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port              int      `yaml:"port"`
	JwtTTLHours       int      `yaml:"jwt_ttl_hours"`
	ThreadListLimit   int      `yaml:"thread_list_limit"`  // hard cap on thread listing
	ReplyListLimit    int      `yaml:"reply_list_limit"`   // hard cap on reply listing
	MaxImageSizeBytes int64    `yaml:"max_image_size_bytes"`
	CorsOrigins       []string `yaml:"cors_origins"`
	LogLevel          string   `yaml:"log_level"`
	LogJSON           bool     `yaml:"log_json"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTLHours) * time.Hour
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	mustValidate(cfg)
	return cfg
}

func mustValidate(cfg *Config) {
	checks := []struct {
		field string
		ok    bool
	}{
		{"port", cfg.Public.Port > 0},
		{"jwt_ttl_hours", cfg.Public.JwtTTLHours > 0},
		{"thread_list_limit", cfg.Public.ThreadListLimit > 0},
		{"reply_list_limit", cfg.Public.ReplyListLimit > 0},
		{"max_image_size_bytes", cfg.Public.MaxImageSizeBytes > 0},
		{"jwt_key", cfg.Private.JwtKey != ""},
		{"pg.host", cfg.Private.Pg.Host != ""},
		{"pg.dbname", cfg.Private.Pg.Dbname != ""},
	}
	for _, c := range checks {
		if !c.ok {
			panic(fmt.Sprintf("config field %q is missing or invalid", c.field))
		}
	}
}
