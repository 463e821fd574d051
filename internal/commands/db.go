package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/manchego/internal/app"
)

func newDBCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.audited("db:migrate", "db_migrate", nil, func(string) (any, error) {
				db, driver, err := app.OpenDB(e.cfg)
				if err != nil {
					return nil, err
				}
				defer db.Close()

				fmt.Fprintf(cmd.OutOrStdout(), "Database (%s) is up to date\n", driver)

				return map[string]any{"success": true, "driver": string(driver)}, nil
			})
		},
	})

	return cmd
}
