package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tychodb/tycho/repl"
)

var (
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive console session",
		RunE:  replRun,
	}

	dialectName = "default"
)

func initConsoleFlags(fs *pflag.FlagSet) {
	fs.StringVar(&dialectName, "dialect", dialectName, "`dialect` to resolve types against")
	cfgVars["dialect"] = fs.Lookup("dialect")
}

func init() {
	initConsoleFlags(replCmd.Flags())

	tychoCmd.AddCommand(replCmd)
}

func newSession() (*repl.Session, error) {
	d, err := repl.LookupDialect(dialectName)
	if err != nil {
		return nil, err
	}
	return repl.NewSession(d, flgs), nil
}

func replRun(cmd *cobra.Command, args []string) error {
	ses, err := newSession()
	if err != nil {
		return err
	}

	repl.Interact(ses)
	return nil
}

// runConsole feeds scripted commands through a console session, the
// way the interactive console would run them.
func runConsole(cmds []string) error {
	ses, err := newSession()
	if err != nil {
		return err
	}

	idx := 0
	rl := func() (string, error) {
		if idx >= len(cmds) {
			return "", io.EOF
		}
		s := cmds[idx]
		idx += 1
		return s, nil
	}
	repl.ReplCommands(ses, rl, os.Stdout)
	return nil
}
