// Command conmarkov trains a length-constrained Markov model on a text
// corpus and generates sentences that satisfy a declarative constraint.
//
// Corpus format: one sentence per line, whitespace-separated tokens.
//
// Example:
//
//	conmarkov generate --corpus lyrics.txt --length 8 --require 7=night \
//	    --forbid the,the --count 5 --seed 42 --debug
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "conmarkov",
		Short: "Constrained Markov sentence generator",
		Long: `conmarkov builds a non-homogeneous Markov model from a training corpus,
applies a per-position constraint (length, required words, forbidden pairs),
prunes the model to arc-consistency, and samples sentences that follow the
corpus statistics while satisfying the constraint.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "configuration file path")
	rootCmd.PersistentFlags().Bool("debug", false, "emit diagnostic matrix-size/solution-count information")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.WithError(err).Fatal("failed to bind flags")
	}

	rootCmd.AddCommand(newGenerateCmd())

	cobra.OnInitialize(initConfig(rootCmd))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// initConfig layers an optional config file and environment variables
// under the command-line flags.
func initConfig(cmd *cobra.Command) func() {
	return func() {
		if cfg, _ := cmd.PersistentFlags().GetString("config"); cfg != "" {
			viper.SetConfigFile(cfg)
			if err := viper.ReadInConfig(); err != nil {
				log.WithError(err).Fatal("failed to read configuration file")
			}
		}
		viper.SetEnvPrefix("CONMARKOV")
		viper.AutomaticEnv()

		if viper.GetBool("debug") {
			log.SetLevel(logrus.DebugLevel)
		}
	}
}
