package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/adatasks/internal/flagx"
)

var mainFlags = []string{"-d", "-dsn", "-ns", "-list", "-seed", "-hardened", "-log"}

// parseFlags populates Config from the command-line flags it owns. Other
// arguments (-c, -env) are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Driver, "d", cfg.Driver, "storage driver: sqlite, postgres, mysql or memory")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "data source name")
	fs.StringVar(&cfg.Namespace, "ns", cfg.Namespace, "key namespace prefix")
	fs.StringVar(&cfg.CurrentList, "list", cfg.CurrentList, "list selected at start")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "create sample tasks on first run")
	fs.BoolVar(&cfg.Hardened, "hardened", cfg.Hardened, "store salted password verifiers")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, mainFlags))
}
