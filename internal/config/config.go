package config

import "time"

// Config holds runtime settings for the adatasks CLI.
type Config struct {
	Driver      string
	DSN         string
	Namespace   string
	CurrentList string
	Seed        bool
	Hardened    bool
	LogLevel    string
	LogFormat   string

	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	BackupTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Driver = "sqlite"
	c.DSN = "adatasks.db"
	c.Namespace = "ada_"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.S3Bucket = "adatasks"
	c.S3Region = "us-east-1"
	c.BackupTimeout = 30 * time.Second
}

// BackupEnabled reports whether enough S3 settings are present to build a
// backup client.
func (c *Config) BackupEnabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// LoadConfig builds a Config from defaults, the environment, the JSON file
// and the flags found in args (usually os.Args[1:]). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
