// Package cli wires the ledgerlens commands: decoding and explaining ledger
// transaction JSON from files. The commands never touch the network.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/ledger/fields"
)

var (
	configFile string
	network    string
)

var rootCmd = &cobra.Command{
	Use:   "ledgerlens",
	Short: "ledgerlens - decode and explain XRPL-family ledger JSON",
	Long: `ledgerlens turns raw ledger transaction and ledger object JSON into
typed, normalized data and human-readable explanations. It understands both
XRPL mainnet and Xahau payloads; the active network profile decides the
native asset scaling.`,
	Version: "0.1.0",
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&network, "network", "", "network profile (mainnet, xahau)")
}

// decodeOptions resolves the active network profile into decode options.
func decodeOptions() (fields.Options, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fields.Options{}, err
	}
	if network != "" {
		cfg.Network = network
	}
	profile, err := cfg.Active()
	if err != nil {
		return fields.Options{}, err
	}
	return fields.Options{NativeAsset: profile.NativeAsset}, nil
}
