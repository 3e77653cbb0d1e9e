package types

// Op is a binary operator symbol as the expression layer sees it.
type Op int

const (
	AddOp Op = iota
	SubtractOp
	MultiplyOp
	DivideOp
	ModuloOp
	ConcatOp
	BinaryAndOp
	BinaryOrOp
)

var ops = [...]struct {
	name        string
	commutative bool
}{
	AddOp:       {"+", true},
	SubtractOp:  {"-", false},
	MultiplyOp:  {"*", true},
	DivideOp:    {"/", false},
	ModuloOp:    {"%", false},
	ConcatOp:    {"||", false},
	BinaryAndOp: {"&", true},
	BinaryOrOp:  {"|", true},
}

func (op Op) String() string {
	return ops[op].name
}

func (op Op) Commutative() bool {
	return ops[op].commutative
}

func LookupOp(sym string) (Op, bool) {
	for op := range ops {
		if ops[op].name == sym {
			return Op(op), true
		}
	}
	return 0, false
}

// AdaptTable maps an operator and the other operand's affinity to the
// type that results from combining the two.
type AdaptTable map[Op]map[*Class]Type

// Concatenable marks types whose addition operator means string
// concatenation rather than arithmetic.
type Concatenable interface {
	Type
	Concatenable()
}

// DateAffine marks types that participate in date and time operator
// inference. The rules follow the PostgreSQL date/time operator
// matrix.
type DateAffine interface {
	Type
	ExpressionAdaptations() AdaptTable
}

// ExpressionAdapter lets a type take full control of operator
// inference, in the manner of user defined types.
type ExpressionAdapter interface {
	Type
	AdaptExpression(op Op, other Type) (Op, Type)
}

// Infer returns the effective operator and result type when a left
// operand of type left is combined under op with a right operand of
// type right. Unknown combinations degrade to the null type so the
// expression layer can still compile the operator as plain SQL; Infer
// never fails.
//
// The null type defers to the other operand under commutative
// operators, so null + date and date + null agree.
func Infer(left Type, op Op, right Type) (Op, Type) {
	if left.Class() == NullClass {
		if right.Class() == NullClass || !op.Commutative() {
			return op, left
		}
		return Infer(right, op, left)
	}

	if ea, ok := left.(ExpressionAdapter); ok {
		return ea.AdaptExpression(op, right)
	}

	if _, ok := left.(Concatenable); ok {
		if op == AddOp {
			if _, ok := right.(Concatenable); ok || right.Class() == NullClass {
				return ConcatOp, left
			}
		}
		return op, left
	}

	if da, ok := left.(DateAffine); ok {
		if m, ok := da.ExpressionAdaptations()[op]; ok {
			if typ, ok := m[right.Affinity()]; ok {
				return op, typ
			}
		}
		return op, Null
	}

	return op, left
}

// Canonical instances used as inference results and type map defaults.
var (
	integerType  = NewInteger()
	dateType     = NewDate()
	timeType     = NewTime(false)
	dateTimeType = NewDateTime(false)
	intervalType = NewInterval()
)

var integerAdaptations = AdaptTable{
	AddOp: {
		DateClass: dateType,
	},
	MultiplyOp: {
		IntervalClass: intervalType,
	},
}

var numericAdaptations = AdaptTable{
	MultiplyOp: {
		IntervalClass: intervalType,
	},
}

var dateAdaptations = AdaptTable{
	AddOp: {
		IntegerClass:  dateType,
		IntervalClass: dateTimeType,
		TimeClass:     dateTimeType,
	},
	SubtractOp: {
		// date - integer = date, date - date = integer
		IntegerClass:  dateType,
		DateClass:     integerType,
		IntervalClass: dateTimeType,
		DateTimeClass: intervalType,
	},
}

var timeAdaptations = AdaptTable{
	AddOp: {
		DateClass:     dateTimeType,
		IntervalClass: timeType,
	},
	SubtractOp: {
		TimeClass:     intervalType,
		IntervalClass: timeType,
	},
}

var dateTimeAdaptations = AdaptTable{
	AddOp: {
		IntervalClass: dateTimeType,
	},
	SubtractOp: {
		IntervalClass: dateTimeType,
		DateTimeClass: intervalType,
	},
}

var intervalAdaptations = AdaptTable{
	AddOp: {
		DateClass:     dateTimeType,
		DateTimeClass: dateTimeType,
		TimeClass:     timeType,
		IntervalClass: intervalType,
	},
	SubtractOp: {
		IntervalClass: intervalType,
	},
	MultiplyOp: {
		NumericClass: intervalType,
	},
	DivideOp: {
		NumericClass: intervalType,
	},
}
