package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/motifui/motif/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <sheet.yaml>",
		Short: "Parse and validate a style sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := config.Load(args[0])
			if err != nil {
				return err
			}

			animated := 0
			for _, el := range sheet.Elements {
				if el.Animation != nil {
					animated++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d elements, %d animated)\n", args[0], len(sheet.Elements), animated)
			return nil
		},
	}

	return cmd
}
