// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables that override settings,
// ex: ASCIIDNA_OUT=results
const EnvPrefix = "ASCIIDNA"

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment,
// and those available from the command line
type Config struct {
	// In is the path to the merged reads (FASTQ, optionally gzip or snappy compressed)
	In string `mapstructure:"in"`

	// Out is the directory subjects' condensed and translated files are written to
	Out string `mapstructure:"out"`

	// Tree is the directory reads are sorted into by subject and oligo
	Tree string `mapstructure:"tree"`

	// Report is the path of the run report, defaults to report.json in Out
	Report string `mapstructure:"report"`

	// ReportFormat is "json" or "yaml", guessed from Report's extension if empty
	ReportFormat string `mapstructure:"report-format"`

	// Strict leaves the oligo that follows a gap out of an assembly
	Strict bool `mapstructure:"strict"`

	// Verbose logs each rejected read
	Verbose bool `mapstructure:"verbose"`

	// LogLevel is a logrus level name: "debug", "info", "warn", ...
	LogLevel string `mapstructure:"log-level"`
}

// SetDefaults registers the default settings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("in", "merged.fastq.gz")
	v.SetDefault("out", "output")
	v.SetDefault("tree", "oligos")
	v.SetDefault("report", "")
	v.SetDefault("report-format", "")
	v.SetDefault("strict", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadSettings merges a YAML settings file into v. An empty path is a no-op.
func ReadSettings(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return nil
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if c.In == "" {
		return nil, fmt.Errorf("no input reads")
	}
	return &c, nil
}

// New returns a new Config struct populated by the global Viper
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Level is the logging level, Debug when Verbose.
func (c *Config) Level() (log.Level, error) {
	if c.Verbose {
		return log.DebugLevel, nil
	}
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.LogLevel)
}

// ReportPath is where the run report goes.
func (c *Config) ReportPath() string {
	if c.Report != "" {
		return c.Report
	}
	if strings.EqualFold(c.ReportFormat, "yaml") || strings.EqualFold(c.ReportFormat, "yml") {
		return filepath.Join(c.Out, "report.yaml")
	}
	return filepath.Join(c.Out, "report.json")
}
