package picojson

// Kind identifies the shape of an Event.
type Kind int

// Possible event kinds.
const (
	StartObject Kind = iota
	EndObject
	StartArray
	EndArray
	Key
	String
	Number
	Bool
	Null
	EndDocument
	numKinds
)

var kindStrings = [numKinds]string{
	"StartObject", "EndObject", "StartArray", "EndArray",
	"Key", "String", "Number", "Bool", "Null", "EndDocument",
}

// String returns a human-readable name for the event kind.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// StrKind distinguishes a zero-copy borrowed string/key from one held in the
// scratch buffer: in slice mode because it contained escapes, in stream mode
// always.
type StrKind int

const (
	// Borrowed means the bytes live in the original input (slice mode only).
	Borrowed StrKind = iota
	// Unescaped means the bytes were decoded into the caller's scratch buffer.
	Unescaped
)

// Str is a JSON string or key value. Its Kind tells the caller whether the
// bytes are still resident in the original input or were written to
// scratch; both are only valid until the next NextEvent call on the same
// parser.
type Str struct {
	Kind  StrKind
	Value string
}

// IsBorrowed reports whether the value is an unmodified view of the input.
func (s Str) IsBorrowed() bool { return s.Kind == Borrowed }

func (s Str) String() string { return s.Value }

// NumKind identifies how a Number's raw lexeme was interpreted, per the
// build-time configuration selected in Config.
type NumKind int

const (
	// Integer is a value that fit the configured signed integer width.
	Integer NumKind = iota
	// IntegerOverflow indicates the lexeme was integer- or float-shaped but
	// did not fit the configured representation (overflow, or a
	// non-finite float downgraded to this kind).
	IntegerOverflow
	// Float is a binary64 value (only produced when FloatEnabled).
	Float
	// FloatTruncated is the integer part of a float-shaped lexeme (only
	// produced when FloatTruncate and the lexeme has no exponent).
	FloatTruncated
	// FloatSkipped marks a float-shaped lexeme under FloatSkip: the event
	// is still emitted, only the raw lexeme is usable.
	FloatSkipped
	// FloatUnparsed is the default: float-shaped lexemes are reported with
	// their raw text only, because FloatMode is FloatDisabled.
	FloatUnparsed
	numNumKinds
)

var numKindStrings = [numNumKinds]string{
	"Integer", "IntegerOverflow", "Float", "FloatTruncated", "FloatSkipped", "FloatUnparsed",
}

// String returns a human-readable name for the number kind.
func (k NumKind) String() string {
	if k < 0 || k >= numNumKinds {
		return "<unknown>"
	}
	return numKindStrings[k]
}

// Num is a parsed JSON number: the raw lexeme (always present, byte-exact
// with the input) plus the interpretation selected by Config. Raw is a
// zero-copy view like Str's Unescaped/Borrowed forms and is likewise only
// valid until the next NextEvent call on the same parser.
type Num struct {
	Raw   string
	Kind  NumKind
	Int   int64
	Float float64
}

// AsInt returns the integer value when Kind is Integer or FloatTruncated.
func (n Num) AsInt() (int64, bool) {
	switch n.Kind {
	case Integer, FloatTruncated:
		return n.Int, true
	}
	return 0, false
}

// AsFloat returns the float value when Kind is Float, widening Integer
// values for convenience.
func (n Num) AsFloat() (float64, bool) {
	switch n.Kind {
	case Float:
		return n.Float, true
	case Integer:
		return float64(n.Int), true
	}
	return 0, false
}

// Event is one semantic unit produced by NextEvent. Only the fields
// relevant to Kind are populated; the zero value of the others is
// meaningless.
type Event struct {
	Kind Kind
	Str  Str
	Num  Num
	Bool bool
}
