// Package repl is the interactive console: a small command language
// for exploring types, backend renderings, and operator inference.
package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tychodb/tycho/dialect/postgres"
	"github.com/tychodb/tycho/dialect/sqlite"
	"github.com/tychodb/tycho/flags"
	"github.com/tychodb/tycho/types"
)

type Session struct {
	Dialect types.Dialect
	Flags   flags.Flags
}

func NewSession(d types.Dialect, flgs flags.Flags) *Session {
	ses := &Session{Flags: flgs}
	ses.setDialect(d)
	return ses
}

// setDialect installs d, pushing the session flags that live on the
// backend context.
func (ses *Session) setDialect(d types.Dialect) {
	warn := ses.Flags.GetFlag(flags.WarnUnknownTypes)
	switch d := d.(type) {
	case *postgres.Dialect:
		d.WarnUnknownKinds = warn
	case *sqlite.Dialect:
		d.WarnUnknownKinds = warn
	}
	ses.Dialect = d
}

// LineReader produces console lines; io.EOF ends the session.
type LineReader func() (string, error)

// ReplCommands reads commands from rl and writes results to w until
// EOF or an exit command.
func ReplCommands(ses *Session, rl LineReader, w io.Writer) {
	for {
		s, err := rl()
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}

		fields := strings.Fields(s)
		if len(fields) == 0 {
			continue
		}

		cmd := strings.ToLower(fields[0])
		args := fields[1:]
		if cmd == "exit" || cmd == "quit" {
			return
		}
		err = ses.run(cmd, args, w)
		if err != nil {
			fmt.Fprintln(w, err)
		}
	}
}

func (ses *Session) run(cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "help":
		helpCommand(w)
		return nil
	case "dialect":
		return ses.dialectCommand(args, w)
	case "types":
		return ses.typesCommand(w)
	case "resolve":
		return ses.resolveCommand(args, w)
	case "affinity":
		return ses.affinityCommand(args, w)
	case "infer":
		return ses.inferCommand(args, w)
	case "bind":
		return ses.bindCommand(args, w)
	case "result":
		return ses.resultCommand(args, w)
	}
	return fmt.Errorf("repl: unknown command: %s; try help", cmd)
}

func helpCommand(w io.Writer) {
	fmt.Fprint(w, `dialect [name[:version]]     show or switch the current dialect
types                        list types under the current dialect
resolve <type>               resolve a type against the current dialect
affinity <type>              show a type's class and affinity
infer <type> <op> <type>     infer the result type of an operator
bind <type> <value>          run a value through a type's bind processor
result <type> <value>        run a value through a type's result processor
exit                         leave the console
`)
}

func (ses *Session) dialectCommand(args []string, w io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(w, "%s %s\n", ses.Dialect.Family(), ses.Dialect.Version())
		return nil
	}
	d, err := LookupDialect(args[0])
	if err != nil {
		return err
	}
	ses.setDialect(d)
	fmt.Fprintf(w, "%s %s\n", d.Family(), d.Version())
	return nil
}

// sampleTypes are the rows the types command displays.
var sampleTypes = []string{
	"varchar(30)",
	"text",
	"unicode(30)",
	"smallint",
	"integer",
	"bigint",
	"numeric(10, 2)",
	"float(24)",
	"boolean",
	"date",
	"time",
	"timestamp",
	"interval",
	"blob",
	"uuid",
	"json",
	"enum(mood, sad, ok, happy)",
}

func (ses *Session) typesCommand(w io.Writer) error {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"Type", "Class", "Affinity", ses.Dialect.Family()})

	for _, s := range sampleTypes {
		typ, err := ParseType(s)
		if err != nil {
			return err
		}
		t := types.Resolve(typ, ses.Dialect)
		tw.Append([]string{s, typ.Class().String(), typ.Affinity().String(), t.String()})
	}
	tw.Render()
	return nil
}

func (ses *Session) resolveCommand(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("repl: resolve needs a type")
	}
	typ, err := ParseType(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, types.Resolve(typ, ses.Dialect))
	return nil
}

func (ses *Session) affinityCommand(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("repl: affinity needs a type")
	}
	typ, err := ParseType(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "class %s affinity %s\n", typ.Class(), typ.Affinity())
	return nil
}

func (ses *Session) inferCommand(args []string, w io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("repl: infer needs a type, an operator, and a type")
	}
	left, err := ParseType(args[0])
	if err != nil {
		return err
	}
	op, ok := types.LookupOp(args[1])
	if !ok {
		return fmt.Errorf("repl: unknown operator: %s", args[1])
	}
	right, err := ParseType(args[2])
	if err != nil {
		return err
	}

	rop, typ := types.Infer(left, op, right)
	fmt.Fprintf(w, "%s %s %s: %s is %s\n", left, op, right, rop, typ)
	return nil
}

func (ses *Session) bindCommand(args []string, w io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("repl: bind needs a type and a value")
	}
	typ, err := ParseType(args[0])
	if err != nil {
		return err
	}
	val := parseValue(strings.Join(args[1:], " "))

	t := types.Resolve(typ, ses.Dialect)
	if bind := t.BindProcessor(ses.Dialect); bind != nil {
		val, err = bind(val)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%#v\n", val)
	return nil
}

func (ses *Session) resultCommand(args []string, w io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("repl: result needs a type and a value")
	}
	typ, err := ParseType(args[0])
	if err != nil {
		return err
	}
	if n, ok := typ.(*types.Numeric); ok {
		n.AsDecimal = ses.Flags.GetFlag(flags.DecimalResults)
	}
	val := parseValue(strings.Join(args[1:], " "))

	t := types.Resolve(typ, ses.Dialect)
	if result := t.ResultProcessor(ses.Dialect, nil); result != nil {
		val, err = result(val)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%#v\n", val)
	return nil
}

func parseValue(s string) any {
	if strings.EqualFold(s, "null") {
		return nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return strings.Trim(s, "'\"")
}
