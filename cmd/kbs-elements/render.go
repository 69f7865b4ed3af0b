package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-kbs-elements/pkg/controls"
	"github.com/goliatone/go-kbs-elements/pkg/elements"
	"github.com/goliatone/go-kbs-elements/pkg/render/template/gotemplate"
)

func (app *application) renderCommand() *cobra.Command {
	var (
		screenID string
		output   string
		list     bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a screen to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.screens()
			if err != nil {
				return err
			}
			if list {
				for _, id := range store.IDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}
			if strings.TrimSpace(screenID) == "" {
				return fmt.Errorf("kbs-elements: --screen is required (known: %s)", strings.Join(store.IDs(), ", "))
			}

			renderer, err := app.elements(newDemoData())
			if err != nil {
				return err
			}
			html, err := app.renderScreen(cmd, store, renderer, screenID)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
				return err
			}
			if err := os.WriteFile(output, []byte(html+"\n"), 0o644); err != nil {
				return fmt.Errorf("kbs-elements: write %s: %w", output, err)
			}
			app.logger.Info("screen written", zap.String("screen", screenID), zap.String("output", output))
			return nil
		},
	}
	cmd.Flags().StringVar(&screenID, "screen", "", "screen id to render")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&list, "list", false, "list screen ids and exit")
	return cmd
}

func (app *application) renderScreen(cmd *cobra.Command, store *controls.Store, e *elements.Elements, id string) (string, error) {
	screen, ok := store.Screen(id)
	if !ok {
		return "", fmt.Errorf("kbs-elements: unknown screen %q", id)
	}
	engine, err := newLayoutEngine(e)
	if err != nil {
		return "", err
	}
	return screen.RenderLayout(cmd.Context(), e, engine)
}

func newLayoutEngine(e *elements.Elements) (*gotemplate.Engine, error) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(controls.EmbeddedFS()),
		gotemplate.WithElements(e),
	)
	if err != nil {
		return nil, fmt.Errorf("kbs-elements: layout engine: %w", err)
	}
	return engine, nil
}
