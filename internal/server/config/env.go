package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/opsbot/internal/flagx"
	"github.com/joho/godotenv"
)

// parseDotEnv exports variables from the file named by -env (default .env)
// into the process environment. Variables that are already set win. A
// missing file is ignored; an unreadable or malformed one panics.
func parseDotEnv() {
	if err := godotenv.Load(flagx.EnvFileFlag()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays OPSBOT_* variables. Unset variables keep the current value.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
