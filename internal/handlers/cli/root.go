package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
	"github.com/tkk2112/pyproject-aliases/internal/ctxlog"
	"github.com/tkk2112/pyproject-aliases/internal/handlers/ui"
)

// ServiceFactory builds the alias run service once the flags are known.
type ServiceFactory func(opts Options) ports.AliasRunService

func NewRootCommand(version, defaultShell string, newService ServiceFactory) *cobra.Command {
	opts := Options{}

	rootCmd := &cobra.Command{
		Use:   "pyproject-aliases [flags] [alias [args...]]",
		Short: "Run shortcut commands defined in pyproject.toml.",
		Long: `pyproject-aliases runs the shell command stored under [tool.aliases] in the
nearest pyproject.toml. Arguments after the alias name are appended to the
command, each quoted as a single word. Without an alias name the available
aliases are listed.`,
		Example: `  pyproject-aliases test -k "slow and not network"
  pyproject-aliases --pyproject-toml ../other/pyproject.toml build`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		// An alias may be called "completion".
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, opts, newService)
		},
	}

	flags := rootCmd.Flags()
	// Everything after the alias name belongs to the alias.
	flags.SetInterspersed(false)
	flags.StringVar(&opts.ConfigPath, "pyproject-toml", "", "Path to the pyproject.toml file (default: search upward from the current directory)")
	flags.StringVarP(&opts.Output, "output", "o", OutputText, "Format of the alias listing: text, table or yaml")
	flags.StringVar(&opts.Shell, "shell", defaultShell, "Shell interpreter used to run the alias")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug information to stderr")

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string, opts Options, newService ServiceFactory) error {
	if err := opts.Validate(); err != nil {
		return failure(err)
	}

	logger := ctxlog.New(cmd.ErrOrStderr(), opts.Verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	svc := newService(opts)
	if svc == nil {
		return failure(fmt.Errorf("alias service not initialized"))
	}

	req := alias.Request{ConfigPath: opts.ConfigPath}
	if len(args) > 0 {
		req.Name = args[0]
		req.ExtraArgs = args[1:]
	}
	if !req.HasAlias() {
		return listAliases(ctx, cmd, svc, req, opts.Output)
	}

	exitCode, err := svc.RunAlias(ctx, req)
	if err != nil {
		return failure(err)
	}
	if exitCode != 0 {
		return &ExitError{Code: exitCode}
	}
	return nil
}

// listAliases prints the available aliases. Not naming an alias is a usage
// error, so it always ends with exit code 1.
func listAliases(ctx context.Context, cmd *cobra.Command, svc ports.AliasRunService, req alias.Request, format string) error {
	table, err := svc.ListAliases(ctx, req)
	if err != nil {
		return failure(err)
	}

	if table.Len() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.ForWriter(cmd.ErrOrStderr(), ui.InfoColor)(noAliasesMessage))
		return &ExitError{Code: 1}
	}

	if err := renderAliases(cmd.OutOrStdout(), table, format); err != nil {
		return failure(fmt.Errorf("could not list aliases: %w", err))
	}
	return &ExitError{Code: 1}
}
