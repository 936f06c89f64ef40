// Copyright © 2019 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cratemon",
	Short: "Cratemon orchestrates releases of a multi-package workspace",
	Long: `Cratemon automates the release lifecycle of a fixed set of packages
living in one repository: keeping their versions in sync, toggling
dependency references between local path form and registry form,
publishing packages in dependency order and managing release tags.

The package set, the location of its manifests and the publish order are
configuration, not discovery: cratemon ships with the workspace it was
built for, and a config file overrides it.

`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	addRootPathFlag(rootCmd)
	addConfigFlag(rootCmd)
	addLogLevel(rootCmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cratemonFlags.root.cfgFile != "" {
		viper.SetConfigFile(cratemonFlags.root.cfgFile)
	} else if os.Getenv("CRATEMON_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("CRATEMON_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.cratemon")
		viper.AddConfigPath("/etc/cratemon")
		viper.SetConfigName("cratemon")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setReleaseParams(&cratemonFlags)
}
