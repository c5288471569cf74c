package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ministryofjustice/fmb-sql/modules/mailbox"
	"github.com/ministryofjustice/fmb-sql/pkg/configuration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fmb-sql",
		Short:         "Generate LDU and probation team SQL from the confirmed functional mailbox workbook",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return usage(cobra.NoArgs(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := configuration.Load(configuration.DefaultEnvFiles)
			if err != nil {
				return usage(fmt.Errorf("configuration: %w", err))
			}
			layout, err := mailbox.Layout()
			if err != nil {
				return fmt.Errorf("workbook layout: %w", err)
			}
			_, err = runGenerate(cmd.Context(), layout, conf.Logger())
			return err
		},
	}
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
