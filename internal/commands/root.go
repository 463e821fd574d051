package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/manchego/internal/audit"
	"github.com/MrJamesThe3rd/manchego/internal/buildinfo"
	"github.com/MrJamesThe3rd/manchego/internal/config"
	"github.com/MrJamesThe3rd/manchego/internal/logging"
)

// env is the state shared by every subcommand once flags are parsed.
type env struct {
	cfg   *config.Config
	log   *slog.Logger
	audit *audit.Log
}

func (e *env) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.log = logging.Setup(cfg.Log.Level, cfg.Log.Format)
	e.audit = audit.New(cfg.AuditLogPath())

	return nil
}

// audited records command_start and command_end around fn. Audit write
// failures are logged and never fail the command.
func (e *env) audited(command, operation string, args map[string]any, fn func(operationID string) (any, error)) error {
	opID := audit.NewOperationID(operation)
	start := time.Now()

	if err := e.audit.Start(command, opID, args); err != nil {
		e.log.Warn("failed to write audit entry", "error", err)
	}

	result, err := fn(opID)
	if err != nil {
		result = audit.Failure(err)
	}

	if aerr := e.audit.End(command, opID, result, time.Since(start)); aerr != nil {
		e.log.Warn("failed to write audit entry", "error", aerr)
	}

	return err
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:     "manchego",
		Short:   "Personal finance data management",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return e.load()
		},
	}

	rootCmd.AddCommand(
		newTransactionsCommand(e),
		newDBCommand(e),
		newAPITokenCommand(e),
		newVersionCommand(),
	)

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "manchego "+buildinfo.String())
		},
	}
}
