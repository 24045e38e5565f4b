// Package cmd is for command line interactions with the asciidna application
package cmd

import (
	"github.com/mechsouls/ASCII-DNA-Translator/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "asciidna",
	Short: "Recover text stored in DNA oligos from merged sequencing reads",
	Long: `Recover text stored in DNA oligos from merged sequencing reads.

Each read carries a tag with a subject ID and an oligo ID. Reads are sorted
by subject and oligo, a consensus is voted at every base of every oligo, and
each subject's oligos are joined in order and translated into text.`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// setup binds the invoked command's flags to viper, reads the settings file
// and configures logging
func setup(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	config.SetDefaults(v)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := config.ReadSettings(v, v.GetString("settings")); err != nil {
		return err
	}

	conf, err := config.Load(v)
	if err != nil {
		return err
	}
	level, err := conf.Level()
	if err != nil {
		return err
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(level)
	return nil
}

// set flags
func init() {
	// settings is an optional YAML file with any of the flags below
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (YAML)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every rejected read")
	RootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
}
