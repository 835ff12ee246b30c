package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/daysin/batch"
)

// initCmd: daysin init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file listing every operation and its severity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cfgFile); err != nil {
			return fmt.Errorf("error initializing config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", cfgFile)
		return nil
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = batch.DefaultConfigPath
	}

	config, err := batch.DefaultConfig()
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
