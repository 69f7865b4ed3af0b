package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-kbs-elements/internal/prompt"
)

func (app *application) promptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Build a single control interactively and print its HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			control, err := prompt.NewBuilder(app.newDriver()).Build(cmd.Context())
			if errors.Is(err, prompt.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}

			renderer, err := app.elements(newDemoData())
			if err != nil {
				return err
			}
			html, err := control.Render(cmd.Context(), renderer)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
}
