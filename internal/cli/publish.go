package cli

import (
	"todo-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var opt publish.WriteOptions
	var toDir string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write the list as Markdown pages (not read back)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, done, err := openSession(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			res, err := publish.WriteList(s.Items(), toDir, opt)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}

	cmd.Flags().StringVar(&toDir, "to", "", "Output directory (required)")
	cmd.Flags().BoolVar(&opt.IncludeDone, "include-done", false, "Include completed items")
	cmd.Flags().BoolVar(&opt.Overwrite, "overwrite", false, "Replace existing files")
	cmd.Flags().StringVar(&opt.Title, "title", "", "Heading of the list page (default \"Todo\")")
	return cmd
}
