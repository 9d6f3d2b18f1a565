package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/tkk2112/pyproject-aliases/internal/adapters/oscommand"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
	"github.com/tkk2112/pyproject-aliases/internal/core/services/aliasrunner"
	"github.com/tkk2112/pyproject-aliases/internal/handlers/cli"
	"github.com/tkk2112/pyproject-aliases/internal/repositories/pyproject"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// run wires the application and returns the process exit code.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	fs := afero.NewOsFs()

	newService := func(opts cli.Options) ports.AliasRunService {
		cmdExec := oscommand.NewOSCommandExecutor(opts.Shell, stdin, stdout, stderr)
		return aliasrunner.NewService(pyproject.NewLocator(fs), pyproject.NewReader(fs), cmdExec)
	}

	rootCmd := cli.NewRootCommand(Version, oscommand.DefaultShell(), newService)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return cli.Execute(rootCmd)
}
