package cli

import (
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var details string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item to the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			title := strings.TrimSpace(strings.Join(args, " "))
			if err := s.Dispatch(cmd.Context(), mutate.Add{Item: model.ItemNew{Title: title, Details: details}}); err != nil {
				return writeErr(cmd, err)
			}
			// Add prepends.
			return writeOut(cmd, app, map[string]any{"data": s.Items()[0]})
		},
	}

	cmd.Flags().StringVar(&details, "details", "", "Optional details (Markdown)")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var storedOrder bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items (open items first)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			items := s.Sorted()
			if storedOrder {
				items = s.Items()
			}
			return writeOut(cmd, app, map[string]any{"data": items})
		},
	}

	cmd.Flags().BoolVar(&storedOrder, "stored", false, "Show stored order instead of display order")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			it, ok := s.Find(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": it})
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <item-id>",
		Aliases: []string{"done"},
		Short:   "Flip an item between open and done",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			id := strings.TrimSpace(args[0])
			if err := s.Dispatch(cmd.Context(), mutate.ToggleDone{ID: id}); err != nil {
				return writeErr(cmd, err)
			}
			// Unknown ids are a no-op for the list; report null data.
			var data any
			if it, ok := s.Find(id); ok {
				data = it
			} else {
				app.logger.Warn("no item with id", "id", id)
			}
			return writeOut(cmd, app, map[string]any{"data": data})
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <item-id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			id := strings.TrimSpace(args[0])
			_, existed := s.Find(id)
			if err := s.Dispatch(cmd.Context(), mutate.Delete{ID: id}); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": id, "deleted": existed}})
		},
	}
}
