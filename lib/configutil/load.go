package configutil

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadOptions controls where Load looks for its inputs, empty fields fall
// back to the defaults.
type LoadOptions struct {
	// env files loaded before parsing, missing files are ignored.
	// defaults to ".env"
	EnvFiles []string
	// prefix for every env tag
	EnvPrefix string
	// when set, a missing config file is not an error
	Optional bool
}

// Load reads a json5 config (see ReadConfig), overrides fields that carry an
// `env` tag with environment variables and validates the result using the
// `validate` tags.
func Load[T any](name string, opts LoadOptions) (T, error) {
	out, files, err := ReadFiles[T](name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || !opts.Optional {
			return out, fmt.Errorf("read config %s: %w", name, err)
		}
	}
	if len(files) > 0 {
		slog.Debug("loaded config", "files", files)
	}

	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return out, fmt.Errorf("load env file %s: %w", f, err)
		}
		slog.Debug("loaded env file", "file", f)
	}

	err = env.ParseWithOptions(&out, env.Options{Prefix: opts.EnvPrefix})
	if err != nil {
		return out, fmt.Errorf("parse environment: %w", err)
	}

	err = Validate(out)
	if err != nil {
		return out, err
	}
	return out, nil
}

// Validate checks the `validate` tags of a config struct.
func Validate(config any) error {
	err := validate.Struct(config)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
