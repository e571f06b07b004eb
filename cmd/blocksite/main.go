// Command blocksite builds and serves sites described in YAML.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/blocksite"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "blocksite",
		Short:         "Render YAML page descriptions into HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./blocksite.yaml)")
	flags.String("site", "site.yml", "site descriptor file")
	flags.String("pages", "pages", "page descriptor directory")
	flags.String("themes", "themes", "theme directory")
	flags.String("url", "", "canonical site URL (enables sitemap.xml in builds)")

	root.AddCommand(
		newBuildCmd(v),
		newServeCmd(v),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

// initConfig layers defaults, an optional config file, BLOCKSITE_* env vars
// (after loading .env) and command-line flags into v.
func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("blocksite")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BLOCKSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return v.BindPFlags(cmd.InheritedFlags())
}

func loadConfig(v *viper.Viper) (blocksite.Config, error) {
	var cfg blocksite.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blocksite version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blocksite %s\n", version)
		},
	}
}
