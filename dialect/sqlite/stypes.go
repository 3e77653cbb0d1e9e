package sqlite

import (
	"github.com/tychodb/tycho/types"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05.000"
	dateTimeLayout = "2006-01-02 15:04:05.000"
)

// Date stores dates as ISO 8601 text.
type Date struct {
	types.Base
}

func NewDate() *Date {
	return &Date{Base: types.MakeBase(DateClass)}
}

func (_ *Date) String() string {
	return "DATE"
}

func (_ *Date) BindProcessor(d types.Dialect) types.BindFunc {
	return types.FormatTime(dateLayout)
}

func (_ *Date) ResultProcessor(d types.Dialect, raw types.RawKind) types.ResultFunc {
	return types.ParseTime(dateLayout)
}

// Time stores times of day as text.
type Time struct {
	types.Base
	Timezone bool
}

func NewTime(timezone bool) *Time {
	return &Time{Base: types.MakeBase(TimeClass), Timezone: timezone}
}

func (_ *Time) String() string {
	return "TIME"
}

func (_ *Time) BindProcessor(d types.Dialect) types.BindFunc {
	return types.FormatTime(timeLayout)
}

func (_ *Time) ResultProcessor(d types.Dialect, raw types.RawKind) types.ResultFunc {
	return types.ParseTime(timeLayout)
}

// DateTime stores timestamps as text.
type DateTime struct {
	types.Base
	Timezone bool
}

func NewDateTime(timezone bool) *DateTime {
	return &DateTime{Base: types.MakeBase(DateTimeClass), Timezone: timezone}
}

func (_ *DateTime) String() string {
	return "DATETIME"
}

func (_ *DateTime) BindProcessor(d types.Dialect) types.BindFunc {
	return types.FormatTime(dateTimeLayout)
}

func (_ *DateTime) ResultProcessor(d types.Dialect, raw types.RawKind) types.ResultFunc {
	return types.ParseTime(dateTimeLayout)
}
