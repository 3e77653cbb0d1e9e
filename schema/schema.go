// Package schema is a minimal schema model: catalogs of tables with
// typed columns and check constraints, enough to drive the DDL
// lifecycle of the types attached to them.
package schema

import (
	"fmt"
	"strings"

	"github.com/tychodb/tycho/types"
)

type listenerKey struct {
	event string
	owner any
}

// listenerList keeps listeners in registration order and dedupes by
// (event, owner) so attaching a type twice registers its callbacks
// once.
type listenerList struct {
	seen    map[listenerKey]struct{}
	entries []listenerEntry
}

type listenerEntry struct {
	event string
	fn    types.DDLListener
}

func (ll *listenerList) add(event string, owner any, fn types.DDLListener) {
	key := listenerKey{event: event, owner: owner}
	if _, ok := ll.seen[key]; ok {
		return
	}
	if ll.seen == nil {
		ll.seen = map[listenerKey]struct{}{}
	}
	ll.seen[key] = struct{}{}
	ll.entries = append(ll.entries, listenerEntry{event: event, fn: fn})
}

func (ll *listenerList) fire(event string, target any, x types.Executor) error {
	for _, ent := range ll.entries {
		if ent.event != event {
			continue
		}
		err := ent.fn(target, x)
		if err != nil {
			return err
		}
	}
	return nil
}

type Catalog struct {
	name      string
	tables    []*Table
	listeners listenerList
}

func NewCatalog(name string) *Catalog {
	return &Catalog{name: name}
}

func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) AddDDLListener(event string, owner any, fn types.DDLListener) {
	c.listeners.add(event, owner, fn)
}

func (c *Catalog) CreateTable(name string) *Table {
	tbl := &Table{name: name, catalog: c}
	c.tables = append(c.tables, tbl)
	return tbl
}

func (c *Catalog) Tables() []*Table {
	return c.tables
}

// CreateAll fires the catalog's before-create listeners and then
// creates every table in definition order. Catalog-scoped objects,
// named enums for one, come into existence before any table that
// references them.
func (c *Catalog) CreateAll(x types.Executor) error {
	err := c.listeners.fire(types.BeforeCreate, c, x)
	if err != nil {
		return err
	}
	for _, tbl := range c.tables {
		err = tbl.Create(x)
		if err != nil {
			return err
		}
	}
	return nil
}

// DropAll drops every table in reverse definition order and then
// fires the catalog's after-drop listeners, so shared objects outlive
// the tables that depend on them.
func (c *Catalog) DropAll(x types.Executor) error {
	for idx := len(c.tables) - 1; idx >= 0; idx -= 1 {
		err := c.tables[idx].Drop(x)
		if err != nil {
			return err
		}
	}
	return c.listeners.fire(types.AfterDrop, c, x)
}

type Column struct {
	Name string
	Type types.Type
}

type constraint struct {
	name  string
	check string
	rule  func(d types.Dialect) bool
}

type Table struct {
	name        string
	catalog     *Catalog
	columns     []*Column
	constraints []constraint
	listeners   listenerList
}

func (tbl *Table) Name() string {
	return tbl.name
}

func (tbl *Table) Catalog() types.SchemaEventTarget {
	if tbl.catalog == nil {
		return nil
	}
	return tbl.catalog
}

func (tbl *Table) AddDDLListener(event string, owner any, fn types.DDLListener) {
	tbl.listeners.add(event, owner, fn)
}

func (tbl *Table) AppendConstraint(name string, check string, rule func(d types.Dialect) bool) {
	tbl.constraints = append(tbl.constraints,
		constraint{name: name, check: check, rule: rule})
}

// AddColumn appends a column and gives its type the chance to hook
// the table's DDL lifecycle.
func (tbl *Table) AddColumn(name string, typ types.Type) *Column {
	col := &Column{Name: name, Type: typ}
	tbl.columns = append(tbl.columns, col)
	if sa, ok := typ.(types.SchemaAttacher); ok {
		sa.AttachTo(tbl, name)
	}
	return col
}

func (tbl *Table) Columns() []*Column {
	return tbl.columns
}

// Create fires the table's before-create listeners and then executes
// the CREATE TABLE statement for the executor's backend.
func (tbl *Table) Create(x types.Executor) error {
	err := tbl.listeners.fire(types.BeforeCreate, tbl, x)
	if err != nil {
		return err
	}
	return x.Execute(tbl.createDDL(x.Dialect()))
}

// Drop executes the DROP TABLE statement and then fires the table's
// after-drop listeners.
func (tbl *Table) Drop(x types.Executor) error {
	err := x.Execute(fmt.Sprintf("DROP TABLE %s", tbl.name))
	if err != nil {
		return err
	}
	return tbl.listeners.fire(types.AfterDrop, tbl, x)
}

func (tbl *Table) createDDL(d types.Dialect) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "CREATE TABLE %s (", tbl.name)
	for idx, col := range tbl.columns {
		if idx > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %s", col.Name, types.Resolve(col.Type, d))
	}
	for _, con := range tbl.constraints {
		if con.rule != nil && !con.rule(d) {
			continue
		}
		buf.WriteString(", ")
		if con.name != "" {
			fmt.Fprintf(&buf, "CONSTRAINT %s ", con.name)
		}
		fmt.Fprintf(&buf, "CHECK (%s)", con.check)
	}
	buf.WriteRune(')')
	return buf.String()
}
