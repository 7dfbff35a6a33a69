package wizmon

import (
	"errors"
	"fmt"
)

// The fixed exchange ratios between the denominations.
const (
	KnutsPerSickle    = 29
	SicklesPerGalleon = 17
	KnutsPerGalleon   = SicklesPerGalleon * KnutsPerSickle
)

// Unit type represents a denomination of wizard money.
// The zero value is [Knut], the base unit in which totals are counted.
//
// Unit is implemented as an integer index into in-memory arrays that
// store the denomination's code and its worth in knuts.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Unit value.
type Unit uint8

// Denominations, from smallest to largest.
const (
	Knut Unit = iota
	Sickle
	Galleon
)

var (
	codeLookup  = [...]string{"k", "s", "g"}
	knutsLookup = [...]int64{1, KnutsPerSickle, KnutsPerGalleon}
	unitLookup  = map[string]Unit{"k": Knut, "s": Sickle, "g": Galleon}
)

var errInvalidUnit = errors.New("invalid unit")

// ParseUnit converts a string to a unit.
// The input string must be one of the lowercase abbreviations:
//
//	g
//	s
//	k
//
// ParseUnit returns an error if the string does not represent a valid
// denomination code.
// The error wraps [ErrQuantityFormat].
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[unit]
	if !ok {
		return Knut, fmt.Errorf("%w: %w %q", ErrQuantityFormat, errInvalidUnit, unit)
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Unit value.
// See also method [Unit.Code].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Code()
}

// Code returns the one-letter lowercase abbreviation of the denomination:
// "g" for galleons, "s" for sickles, and "k" for knuts.
// The abbreviation follows directly behind the count in quantity strings,
// e.g. "5g".
func (u Unit) Code() string {
	return codeLookup[u]
}

// Knuts returns the worth of one unit of the denomination in knuts:
// 1 for a knut, 29 for a sickle, and 493 for a galleon.
func (u Unit) Knuts() int64 {
	return knutsLookup[u]
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Knut, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends a one-letter code.
// See also method [Unit.Code].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (u Unit) AppendText(text []byte) ([]byte, error) {
	return append(text, u.Code()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a one-letter code.
// See also method [Unit.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Knut, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted one-letter code.
// See also method [Unit.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 3)
	text = append(text, '"')
	text = append(text, u.Code()...)
	text = append(text, '"')
	return text, nil
}
