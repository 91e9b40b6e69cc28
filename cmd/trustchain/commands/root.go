package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"trustchain/internal/app"
	"trustchain/internal/store"
)

var (
	configPath string
	home       string
	logLevel   string
	output     string
	encoding   string
	passphrase string
	appCtx     *app.App

	// storeOptions tune the key store; tests lower the scrypt cost.
	storeOptions []store.Option
)

// NewRootCommand builds the command tree with fresh flag state.
func NewRootCommand() *cobra.Command {
	configPath, home, logLevel, output, encoding, passphrase = "", "", "", "", "", ""
	appCtx = nil

	root := &cobra.Command{
		Use:           "trustchain",
		Short:         "Author and inspect trustchain blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			appCtx, err = app.New(cfg, cmd.ErrOrStderr(), storeOptions...)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (default $"+app.EnvConfig+")")
	pf.StringVar(&home, "home", "", "key store dir (default ~/.trustchain)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVarP(&output, "output", "o", "", "inspect output: json, yaml, cbor or cbor-diag")
	pf.StringVar(&encoding, "encoding", "", "text encoding for blocks and keys: hex or base64")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the device keys")

	root.AddCommand(
		keygenCmd(),
		fingerprintCmd(),
		initCmd(),
		publishKeyCmd(),
		inspectCmd(),
		naturesCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig layers defaults, the config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg := app.Default()
	path := configPath
	if path == "" {
		path = os.Getenv(app.EnvConfig)
	}
	if path != "" {
		var err error
		if cfg, err = app.LoadFile(path, cfg); err != nil {
			return app.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Home = home
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("encoding") {
		cfg.Encoding = encoding
	}
	return cfg, cfg.Validate()
}

// requirePassphrase returns the -p value, prompting on a terminal when it
// was not given.
func requirePassphrase(cmd *cobra.Command) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("passphrase required (-p)")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if len(b) == 0 {
		return "", errors.New("passphrase required (-p)")
	}
	return string(b), nil
}
