package main

import (
	"context"
	"crypto"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nanotree/nanotree/log"
)

var (
	configPath string
	storeDir   string
	algoName   string
	jsonOut    bool
	debug      bool

	cfg config
)

var rootCmd = &cobra.Command{
	Use:   "nanotree",
	Short: "Edit and inspect content-addressed Git tree objects",
	Long: `nanotree is a small CLI over an in-memory, content-addressed tree editor
modeled on Git's tree objects. It stores loose objects under a local
directory and tracks the current root id in a ref file between
invocations, so a sequence of "nanotree upsert" calls behaves like a
series of commits to one working tree.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if storeDir != "" {
			loaded.StoreDir = storeDir
		}
		if algoName != "" {
			loaded.Algo = algoName
		}
		cfg = loaded
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".nanotree.json", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "Loose-object directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&algoName, "algo", "", "Hash algorithm: sha1 or sha256 (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(upsertCmd, flushRootCmd, catTreeCmd, setRootCmd, emptyTreeIDCmd, commitTreeCmd)
}

// cliContext returns a background context carrying a cliLogger, so editor
// and store operations log through the same --debug/color plumbing as the
// rest of the CLI.
func cliContext() context.Context {
	return log.ToContext(context.Background(), cliLogger{debug: debug})
}

func resolveAlgo() (crypto.Hash, error) {
	switch cfg.Algo {
	case "", "sha1":
		return crypto.SHA1, nil
	case "sha256":
		return crypto.SHA256, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm %q", cfg.Algo)
	}
}

func ensureStoreDir() error {
	return os.MkdirAll(cfg.StoreDir, 0o755)
}

func printSuccess(format string, args ...any) {
	if jsonOut {
		return
	}
	color.New(color.FgGreen).Printf(format+"\n", args...)
}

func printError(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
}
