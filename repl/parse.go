package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tychodb/tycho/dialect"
	"github.com/tychodb/tycho/dialect/postgres"
	"github.com/tychodb/tycho/dialect/sqlite"
	"github.com/tychodb/tycho/types"
)

// ParseType parses a console type expression: a name with optional
// arguments, VARCHAR(30), NUMERIC(10, 2), ENUM(mood, sad, ok, happy),
// and so on.
func ParseType(s string) (types.Type, error) {
	nam := strings.TrimSpace(s)

	var args []string
	if idx := strings.IndexByte(nam, '('); idx >= 0 {
		if !strings.HasSuffix(nam, ")") {
			return nil, fmt.Errorf("repl: expected ')': %s", s)
		}
		for _, arg := range strings.Split(nam[idx+1:len(nam)-1], ",") {
			args = append(args, strings.TrimSpace(arg))
		}
		nam = nam[:idx]
	}
	nam = strings.ToLower(strings.TrimSpace(nam))

	switch nam {
	case "char", "varchar", "string":
		n, err := intArgs(nam, args, 1)
		if err != nil {
			return nil, err
		}
		return types.NewString(n[0]), nil
	case "text", "clob":
		return types.NewText(), nil
	case "nchar", "nvarchar", "unicode":
		n, err := intArgs(nam, args, 1)
		if err != nil {
			return nil, err
		}
		return types.NewUnicode(n[0]), nil
	case "ntext", "unicodetext":
		return types.NewUnicodeText(), nil
	case "smallint", "int2":
		return types.NewSmallInt(), nil
	case "int", "integer", "int4":
		return types.NewInteger(), nil
	case "bigint", "int8":
		return types.NewBigInt(), nil
	case "numeric", "decimal":
		n, err := intArgs(nam, args, 2)
		if err != nil {
			return nil, err
		}
		return types.NewNumeric(n[0], n[1]), nil
	case "float", "real", "double":
		n, err := intArgs(nam, args, 1)
		if err != nil {
			return nil, err
		}
		return types.NewFloat(n[0]), nil
	case "bool", "boolean":
		return types.NewBoolean(), nil
	case "date":
		return types.NewDate(), nil
	case "time":
		return types.NewTime(false), nil
	case "timetz":
		return types.NewTime(true), nil
	case "datetime", "timestamp":
		return types.NewDateTime(false), nil
	case "timestamptz":
		return types.NewDateTime(true), nil
	case "interval":
		return types.NewInterval(), nil
	case "binary", "varbinary", "blob", "bytea":
		n, err := intArgs(nam, args, 1)
		if err != nil {
			return nil, err
		}
		return types.NewLargeBinary(n[0]), nil
	case "uuid":
		return types.NewUuid(), nil
	case "json":
		return types.NewJSONData(), nil
	case "enum":
		if len(args) < 2 {
			return nil, fmt.Errorf("repl: enum needs a name and at least one label: %s", s)
		}
		return types.NewEnum(args[0], args[1:]...), nil
	case "null":
		return types.Null, nil
	}
	return nil, fmt.Errorf("repl: unknown type: %s", s)
}

func intArgs(nam string, args []string, max int) ([]int, error) {
	if len(args) > max {
		return nil, fmt.Errorf("repl: %s takes at most %d arguments; got %d", nam, max,
			len(args))
	}
	n := make([]int, max)
	for adx, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("repl: %s: expected an integer; got %s", nam, arg)
		}
		n[adx] = i
	}
	return n, nil
}

const (
	defaultPostgresVersion = "16.0"
	defaultSQLiteVersion   = "3.45"
)

// LookupDialect maps a console dialect name, optionally suffixed with
// :version, to a backend context.
func LookupDialect(nam string) (types.Dialect, error) {
	version := ""
	if idx := strings.IndexByte(nam, ':'); idx >= 0 {
		version = nam[idx+1:]
		nam = nam[:idx]
	}

	switch strings.ToLower(nam) {
	case "default", "":
		return dialect.Default(), nil
	case "postgres", "postgresql", "pg":
		if version == "" {
			version = defaultPostgresVersion
		}
		return postgres.New(version), nil
	case "sqlite", "sqlite3":
		if version == "" {
			version = defaultSQLiteVersion
		}
		return sqlite.New(version), nil
	}
	return nil, fmt.Errorf("repl: unknown dialect: %s", nam)
}

// DialectNames are the console dialect names in display order.
func DialectNames() []string {
	return []string{"default", "postgres", "sqlite"}
}
