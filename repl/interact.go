package repl

import (
	"fmt"
	"os"

	"github.com/peterh/liner"
)

const (
	tychoHistory = ".tycho_history"
)

// Interact runs the console session on the terminal with line editing
// and history.
func Interact(ses *Session) {
	line := liner.NewLiner()
	defer line.Close()

	if f, err := os.Open(tychoHistory); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	rl := func() (string, error) {
		s, err := line.Prompt("tycho: ")
		if err != nil {
			return "", err
		}
		line.AppendHistory(s)
		return s, nil
	}
	ReplCommands(ses, rl, os.Stdout)

	if f, err := os.Create(tychoHistory); err != nil {
		fmt.Fprintf(os.Stderr, "tycho: error writing history file, %s: %s", tychoHistory, err)
	} else {
		line.WriteHistory(f)
		f.Close()
	}
}
