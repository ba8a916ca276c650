package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Auth struct {
		JWTSecret     string `yaml:"jwt_secret"`
		TokenTTLMin   int    `yaml:"token_ttl_minutes"`
		CodeTTLMin    int    `yaml:"code_ttl_minutes"`
		SweepEveryMin int    `yaml:"sweep_every_minutes"`
	} `yaml:"auth"`
	Files struct {
		RootDir  string `yaml:"root_dir"`
		FontPath string `yaml:"font_path"`
	} `yaml:"files"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Auth.TokenTTLMin <= 0 {
		cfg.Auth.TokenTTLMin = 60
	}
	if cfg.Auth.CodeTTLMin <= 0 {
		cfg.Auth.CodeTTLMin = 4
	}
	if cfg.Auth.SweepEveryMin <= 0 {
		cfg.Auth.SweepEveryMin = 30
	}
	if cfg.Files.RootDir == "" {
		cfg.Files.RootDir = "./files"
	}
	if cfg.Files.FontPath == "" {
		cfg.Files.FontPath = "assets/fonts/DejaVuSans.ttf"
	}
	return &cfg
}

func (c *Config) TokenTTL() time.Duration { return time.Duration(c.Auth.TokenTTLMin) * time.Minute }
func (c *Config) CodeTTL() time.Duration  { return time.Duration(c.Auth.CodeTTLMin) * time.Minute }
func (c *Config) SweepEvery() time.Duration {
	return time.Duration(c.Auth.SweepEveryMin) * time.Minute
}
