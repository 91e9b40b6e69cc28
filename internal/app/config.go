package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"trustchain/internal/crypto"
	"trustchain/internal/inspect"
	"trustchain/internal/logging"
)

// EnvConfig names the environment variable consulted when --config is unset.
const EnvConfig = "TRUSTCHAIN_CONFIG"

// Config holds runtime options for building the app.
type Config struct {
	Home     string `yaml:"home"`      // key store directory, e.g. $HOME/.trustchain
	LogLevel string `yaml:"log_level"` // debug, info, warn or error
	Output   string `yaml:"output"`    // json, yaml, cbor or cbor-diag
	Encoding string `yaml:"encoding"`  // hex or base64, for blocks and keys
}

// Default returns the configuration used when no file is given.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Home:     filepath.Join(home, ".trustchain"),
		LogLevel: "info",
		Output:   inspect.FormatJSON,
		Encoding: "hex",
	}
}

// LoadFile overlays the YAML file at path onto base. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func LoadFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Load(f, base)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Load overlays the YAML document read from r onto base.
func Load(r io.Reader, base Config) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cfg := base
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that every option names a supported value.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home must be set")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output {
	case inspect.FormatJSON, inspect.FormatYAML, inspect.FormatCBOR, inspect.FormatCBORDiag:
	default:
		return fmt.Errorf("%w %q", inspect.ErrUnknownFormat, c.Output)
	}
	if _, err := crypto.Encode(c.Encoding, nil); err != nil {
		return err
	}
	return nil
}
