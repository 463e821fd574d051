package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/manchego/internal/app"
	"github.com/MrJamesThe3rd/manchego/internal/importer"
)

func newTransactionsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Import bank statement files into the ledger",
	}

	cmd.AddCommand(
		newImportCommand(e),
		newPendingCommand(e),
		newLabelCommand(e),
	)

	return cmd
}

func newImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import every statement file waiting in the intake directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			return e.audited("transactions:import", "transactions_import", nil, func(opID string) (any, error) {
				fmt.Fprintln(out, "Starting transaction import...")

				a, err := app.Open(e.cfg, e.log)
				if err != nil {
					return nil, fmt.Errorf("transaction import failed: %w", err)
				}
				defer a.Close()

				summary, err := a.Importer.Run(cmd.Context(), opID)
				if err != nil {
					return nil, fmt.Errorf("transaction import failed: %w", err)
				}

				fmt.Fprint(out, FormatSummary(summary, "Transaction import"))

				return summary, nil
			})
		},
	}
}

func newPendingCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List intake files and the account each would be imported into",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// listing needs no database
			svc := importer.NewService(nil, e.cfg.Importer(), e.log)

			files, err := svc.Pending()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), FormatPending(files))

			return nil
		},
	}
}

func newLabelCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "label FILE LABEL",
		Short: "Prefix an unidentified intake file with an account label",
		Long: "Renames FILE inside the intake directory to LABEL_FILE so the next import\n" +
			"classifies it by name. LABEL is one of personal-visa, business-visa,\n" +
			"personal-chequing or business-savings.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, label := args[0], args[1]

			return e.audited("transactions:label", "transactions_label", map[string]any{"file": name, "label": label},
				func(string) (any, error) {
					svc := importer.NewService(nil, e.cfg.Importer(), e.log)

					renamed, err := svc.Label(name, label)
					if err != nil {
						return nil, err
					}

					fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s -> %s\n", name, renamed)

					return map[string]any{"success": true, "renamed": renamed}, nil
				})
		},
	}
}
