package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigFileName = "config.yml"

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:   "emark-staking-service",
		Short: "EMARK staking lifecycle service",
	}
)

func Setup() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	defaultCfgPath := filepath.Join(homeDir, defaultConfigFileName)

	rootCmd.AddCommand(StartServerCmd(), BackfillSnapshotsCmd())
	rootCmd.PersistentFlags().StringVar(
		&cfgPath, "config", defaultCfgPath, fmt.Sprintf("config file (default %s)", defaultCfgPath),
	)

	return rootCmd.Execute()
}

func GetConfigPath() string {
	return cfgPath
}
