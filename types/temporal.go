package types

// Date is a calendar date. The generic type assumes the backend driver
// deals in time.Time directly; backends that store dates as text
// substitute their own types.
type Date struct {
	Base
}

func NewDate() *Date {
	return &Date{MakeBase(DateClass)}
}

func (d *Date) String() string {
	return "DATE"
}

func (d *Date) ExpressionAdaptations() AdaptTable {
	return dateAdaptations
}

// Time is a time of day, optionally with a time zone.
type Time struct {
	Base
	Timezone bool
}

func NewTime(timezone bool) *Time {
	return &Time{Base: MakeBase(TimeClass), Timezone: timezone}
}

func (t *Time) String() string {
	if t.Timezone {
		return "TIME WITH TIME ZONE"
	}
	return "TIME"
}

func (t *Time) ExpressionAdaptations() AdaptTable {
	return timeAdaptations
}

// DateTime is a date and time of day, optionally with a time zone.
type DateTime struct {
	Base
	Timezone bool
}

func NewDateTime(timezone bool) *DateTime {
	return &DateTime{Base: MakeBase(DateTimeClass), Timezone: timezone}
}

func (t *DateTime) String() string {
	if t.Timezone {
		return "TIMESTAMP WITH TIME ZONE"
	}
	return "TIMESTAMP"
}

func (t *DateTime) ExpressionAdaptations() AdaptTable {
	return dateTimeAdaptations
}
