package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/btms-qa/uireport/internal/logger"
)

const (
	defaultLogLevel = "info"
	envPrefix       = "uireport"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use: "uireport",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Short: "Convert UiPath HTML execution reports to JUnit XML",
	Long: `uireport reads the HTML result pages written by UiPath test runs and writes
a JUnit report in every report folder, so CI servers can display the results.

Run uireport --help for more information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}

func init() {
	// Set logger level from flags as early as possible, then load config, then finalize from Viper
	cobra.OnInitialize(preInitLogLevelFromFlags, initConfig, initLogLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/.uireport.yaml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel,
		`Log level. Can be any standard log-level ("info", "debug", etc...)`)

	bindPFlagsSnakeCase(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(convertCommand())
	rootCmd.AddCommand(docgenCommand())
}

func initConfig() {
	workingDir, err := os.Getwd()
	cobra.CheckErr(err)

	viper.SetConfigType("yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		setConfigFile(cfgFile)
	} else if val := os.Getenv("UIREPORT_CONFIG"); val != "" {
		// Use config file from the env variable.
		setConfigFile(val)
	} else {
		// Add $HOME/.config and current directory as paths for Viper to search for the config file in.
		homeDir, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(path.Join(homeDir, ".config"))
		viper.AddConfigPath(workingDir)

		// Search config file with name ".uireport.yaml" or ".uireport.yml".
		viper.SetConfigName(".uireport")
	}

	// Env vars starting with the UIREPORT_ prefix can override any configuration.
	// e.g. UIREPORT_LOG_LEVEL, UIREPORT_S3_BUCKET, etc...
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// The config file is optional, every option has a flag.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Debugf("%s", err)
		} else {
			logger.Warnf("%s", err)
		}
	} else {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initLogLevel() {
	logLevel := viper.GetString("log_level")
	logger.SetLevel(&logLevel)
}

// preInitLogLevelFromFlags sets the log level from Cobra flags or env before config/env are loaded by Viper,
// so that early logs (like config not found) respect user-provided preference.
// Precedence respected here: flag > env (UIREPORT_LOG_LEVEL) > config (handled later in initLogLevel via Viper).
func preInitLogLevelFromFlags() {
	flag := rootCmd.PersistentFlags().Lookup("log-level")
	if flag != nil && flag.Changed {
		val, err := rootCmd.PersistentFlags().GetString("log-level")
		if err == nil {
			logger.SetLevel(&val)
			return
		}
	}

	if val, ok := os.LookupEnv("UIREPORT_LOG_LEVEL"); ok && val != "" {
		logger.SetLevel(&val)
	}
}

func setConfigFile(name string) {
	_, err := os.Stat(name)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("config file %q not found", name))
	}

	viper.SetConfigFile(name)
}

// hydrateOptsFromViper copies all the viper values into our config struct.
// The mapping between viper identifiers and struct field names
// is ensured by `mapstructure` struct tags.
func hydrateOptsFromViper(opts any) error {
	if err := viper.Unmarshal(opts); err != nil {
		return fmt.Errorf("can't read configuration: %w", err)
	}

	return nil
}

// bindPFlagsSnakeCase binds the flags with viper values. The identifier of the viper value
// is the name of the flag with dashes replaced by underscores. This is required so we can
// retrieve values from viper with the same behaviour with config coming from files
// (my_config: "value") or from flags (--my-config=value).
func bindPFlagsSnakeCase(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
	})
}
