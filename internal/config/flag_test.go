package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "postgres", "-dsn", "postgres://x", "-ns", "t_", "-list", "pessoal", "-seed", "-hardened", "-log", "debug"},
			want: func(c *Config) {
				c.Driver, c.DSN, c.Namespace, c.CurrentList = "postgres", "postgres://x", "t_", "pessoal"
				c.Seed, c.Hardened, c.LogLevel = true, true, "debug"
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-env", "x.env", "-list=estudos"},
			want: func(c *Config) { c.CurrentList = "estudos" },
		},
		{name: "bad bool", args: []string{"-hardened=perhaps"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(&want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
