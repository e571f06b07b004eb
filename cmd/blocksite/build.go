package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/blocksite"
)

func newBuildCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write one HTML file per page into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !v.GetBool("watch") {
				_, err := blocksite.Build(cfg, out)
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return blocksite.Watch(ctx, cfg, out)
		},
	}
	cmd.Flags().String("out", "dist", "output directory")
	cmd.Flags().Bool("watch", false, "rebuild whenever descriptors change")
	return cmd
}
