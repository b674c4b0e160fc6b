package cli

import (
	"fmt"
	"strconv"

	"todo-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move an item by display position (zero-based)",
		Long: `Move an item by display position.

Positions refer to the order shown by "todo list" (open items first).
The resulting order becomes the stored order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("from", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			to, err := parseIndex("to", args[1])
			if err != nil {
				return writeErr(cmd, err)
			}

			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			displayed := s.Sorted()
			n := len(displayed)
			if from >= n {
				return writeErr(cmd, indexRangeError{name: "from", index: from, size: n})
			}
			if to >= n {
				return writeErr(cmd, indexRangeError{name: "to", index: to, size: n})
			}

			if err := s.Dispatch(cmd.Context(), mutate.MoveItem(displayed, from, to)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": s.Sorted()})
		},
	}
}

func parseIndex(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", name, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s index %d (must be >= 0)", name, n)
	}
	return n, nil
}
