package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the saved list exactly as stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No session: opening one rewrites the slot.
			p, done, err := openPersister(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer done()

			b, ok, err := p.Raw(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errors.New("nothing saved yet"))
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(b); err != nil {
				return err
			}
			_, err = out.Write([]byte("\n"))
			return err
		},
	}
}
