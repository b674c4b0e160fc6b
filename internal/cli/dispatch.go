package cli

import (
	"fmt"
	"io"
	"strings"

	"todo-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newDispatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <action-json|->",
		Short: "Apply one action given in its JSON wire form",
		Example: strings.TrimSpace(`
  todo dispatch '{"type":"add","data":{"todoItem":{"title":"Buy milk"}}}'
  echo '{"type":"toggleDone","data":{"id":"..."}}' | todo dispatch -`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := []byte(args[0])
			if args[0] == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return writeErr(cmd, fmt.Errorf("read stdin: %w", err))
				}
				raw = b
			}

			a, err := mutate.DecodeAction(raw)
			if err != nil {
				return writeErr(cmd, err)
			}

			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			if err := s.Dispatch(cmd.Context(), a); err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Debug("dispatched", "type", a.Type())
			return writeOut(cmd, app, map[string]any{"data": s.State()})
		},
	}
}
