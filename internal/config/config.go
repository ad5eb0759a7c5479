// Package config resolves command defaults from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvOutput           = "FIXDICT_OUTPUT"
	EnvModule           = "FIXDICT_MODULE"
	EnvPackage          = "FIXDICT_PACKAGE"
	EnvOrchestration    = "FIXDICT_ORCHESTRATION"
	EnvDictionaryImport = "FIXDICT_DICTIONARY_IMPORT"
)

// DefaultEnvFile is the .env file read when Load is given no path.
const DefaultEnvFile = ".env"

// Config holds generator settings that may come from the environment.
// Empty values are unset.
type Config struct {
	Output           string
	Module           string
	Package          string
	Orchestration    string
	DictionaryImport string
}

// Load reads envFile (DefaultEnvFile if empty) and the process environment.
// Non-empty process variables take precedence over the file. A missing file
// is not an error.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}

		fileVars = nil
	}

	return FromLookup(func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}

		v, ok := fileVars[key]

		return v, ok
	}), nil
}

// FromLookup builds a Config from a variable lookup such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	return Config{
		Output:           get(EnvOutput),
		Module:           get(EnvModule),
		Package:          get(EnvPackage),
		Orchestration:    get(EnvOrchestration),
		DictionaryImport: get(EnvDictionaryImport),
	}
}

// Or returns value when non-empty and fallback otherwise.
func Or(value, fallback string) string {
	if value != "" {
		return value
	}

	return fallback
}
