// Command kbs-elements renders knowledge base support controls from screen
// documents, builds single controls interactively and serves the widget
// endpoints.
package main

import (
	"os"
)

func main() {
	app := newApplication(os.Stdout, os.Stderr)
	command, err := app.Command()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
