package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"zavasearch/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "zavasearch",
	Short: "Provision and query the Zava product search index",
	Long: `zavasearch is a set of operator commands for the hosted product search index:
it provisions the index schema, embeds product records with a hosted embedding
model, uploads them in batches, and issues sample keyword and vector queries.

Example usage:
  zavasearch provision                    # Create or update the index schema
  zavasearch upload                       # Embed and upload product data
  zavasearch search "garden hose"         # Keyword search
  zavasearch vector-search "drip system"  # Vector similarity search`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./zavasearch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
