package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/adatasks/internal/flagx"
	"github.com/dmitrijs2005/adatasks/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from an explicit false.
type JsonConfig struct {
	Driver         string         `json:"driver"`
	DSN            string         `json:"dsn"`
	Namespace      string         `json:"namespace"`
	CurrentList    string         `json:"current_list"`
	Seed           *bool          `json:"seed"`
	Hardened       *bool          `json:"hardened"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	BackupTimeout  timex.Duration `json:"backup_timeout"`
}

// parseJson overlays Config with the values present in the JSON file named
// by -c or -config. Without either flag nothing happens.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return nil
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	setString(&cfg.Driver, jc.Driver)
	setString(&cfg.DSN, jc.DSN)
	setString(&cfg.Namespace, jc.Namespace)
	setString(&cfg.CurrentList, jc.CurrentList)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
	if jc.Hardened != nil {
		cfg.Hardened = *jc.Hardened
	}
	if jc.BackupTimeout.Duration > 0 {
		cfg.BackupTimeout = jc.BackupTimeout.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
