package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/motifui/motif/internal/config"
	"github.com/motifui/motif/internal/logger"
	"github.com/motifui/motif/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	var (
		elementID string
		fps       int
	)

	cmd := &cobra.Command{
		Use:   "demo <sheet.yaml>",
		Short: "Animate an element from a style sheet in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("demo requires an interactive terminal")
			}

			log, err := logger.New(logger.Options{Level: logLevel(flags), HumanReadable: true, Writer: os.Stderr})
			if err != nil {
				return err
			}

			sheet, err := config.Load(args[0])
			if err != nil {
				return err
			}

			el := &sheet.Elements[0]
			if elementID != "" {
				el = sheet.Element(elementID)
				if el == nil {
					return fmt.Errorf("element %q not found in sheet", elementID)
				}
			}

			log.WithFields(map[string]any{"element": el.ID}).Info("starting demo")

			model := tui.NewModel(el, log, fps)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&elementID, "element", "", "Element id to animate (default: first in sheet)")
	cmd.Flags().IntVar(&fps, "fps", 30, "Frames per second for the tick driver")

	return cmd
}
