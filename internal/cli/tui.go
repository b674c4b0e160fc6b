package cli

import (
	"todo-cli/internal/tui"

	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, app *App) error {
	s, _, done, err := openSession(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer done()

	return tui.Run(cmd.Context(), s, app.logger)
}
