package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/joho/godotenv"
)

const EnvPrefix = "MINES_"

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// readDotenv merges the given dotenv files; later files win. Missing files
// are skipped.
func readDotenv(files ...string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, file := range files {
		m, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", file, err)
		}
		maps.Copy(vars, m)
	}
	return vars, nil
}

// envValues keeps the non-empty MINES_* variables, keyed by their schema name.
func envValues(vars map[string]string) url.Values {
	values := make(url.Values)
	for k, v := range vars {
		name, ok := strings.CutPrefix(k, EnvPrefix)
		if !ok || v == "" {
			continue
		}
		values.Set(strings.ToLower(name), v)
	}
	return values
}

func (c *Config) loadEnv(environ []string, dotenv ...string) error {
	vars, err := readDotenv(dotenv...)
	if err != nil {
		return err
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	if err := decoder.Decode(c, envValues(vars)); err != nil {
		return fmt.Errorf("unable to decode %s* variables: %w", EnvPrefix, err)
	}
	return nil
}
