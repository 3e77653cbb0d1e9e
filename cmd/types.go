package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	typesCmd = &cobra.Command{
		Use:   "types",
		Short: "List types and their backend renderings",
		RunE:  typesRun,
	}

	resolveCmd = &cobra.Command{
		Use:   "resolve <type>",
		Short: "Resolve a type against a dialect",
		Args:  cobra.MinimumNArgs(1),
		RunE:  resolveRun,
	}

	inferCmd = &cobra.Command{
		Use:   "infer <type> <op> <type>",
		Short: "Infer the result type of an operator",
		Args:  cobra.ExactArgs(3),
		RunE:  inferRun,
	}
)

func init() {
	initConsoleFlags(typesCmd.Flags())
	initConsoleFlags(resolveCmd.Flags())
	initConsoleFlags(inferCmd.Flags())

	tychoCmd.AddCommand(typesCmd, resolveCmd, inferCmd)
}

func typesRun(cmd *cobra.Command, args []string) error {
	return runConsole([]string{"types"})
}

func resolveRun(cmd *cobra.Command, args []string) error {
	return runConsole([]string{"resolve " + strings.Join(args, " ")})
}

func inferRun(cmd *cobra.Command, args []string) error {
	return runConsole([]string{"infer " + strings.Join(args, " ")})
}
