package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/gorcmap/config"
)

func configCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gorcmap configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default user config if none exists",
		Long: `Init writes ~/.config/gorcmap/config.yaml with default values. An
existing file is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), config.LogConfig{Level: global.logLevel, Format: global.logFormat})
			path, created, err := config.NewLoader(logger).EnsureUserConfig()
			if err != nil {
				return fmt.Errorf("init user config: %w", err)
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cmd
}
