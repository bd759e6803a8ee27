package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/adatasks/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "ADATASKS_"

// parseEnv loads the dotenv file into the process environment and overlays
// Config with the ADATASKS_* variables that are set. A missing default .env
// is not an error; a missing file named with -env is. Variables already
// present in the environment win over the file.
func parseEnv(cfg *Config, args []string) error {
	path := flagx.EnvFileFlag(args)
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	strs := map[string]*string{
		"DRIVER":        &cfg.Driver,
		"DSN":           &cfg.DSN,
		"NAMESPACE":     &cfg.Namespace,
		"LIST":          &cfg.CurrentList,
		"LOG_LEVEL":     &cfg.LogLevel,
		"LOG_FORMAT":    &cfg.LogFormat,
		"S3_ACCESS_KEY": &cfg.S3AccessKey,
		"S3_SECRET_KEY": &cfg.S3SecretKey,
		"S3_BUCKET":     &cfg.S3Bucket,
		"S3_REGION":     &cfg.S3Region,
		"S3_ENDPOINT":   &cfg.S3BaseEndpoint,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"SEED":     &cfg.Seed,
		"HARDENED": &cfg.Hardened,
	}
	for name, dst := range bools {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = b
	}

	if v, ok := os.LookupEnv(envPrefix + "BACKUP_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sBACKUP_TIMEOUT: %w", envPrefix, err)
		}
		cfg.BackupTimeout = d
	}
	return nil
}
