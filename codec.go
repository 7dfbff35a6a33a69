package wizmon

import (
	"database/sql/driver"
	"fmt"

	"github.com/govalues/decimal"
)

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the canonical quantity string,
// e.g. "5g, 2s, 10k".
// See also method [Amount.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	return a.appendText(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical quantity string,
// e.g. "5g, 2s, 10k".
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return a.appendText(make([]byte, 0, 24)), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON string is parsed as a quantity string, and a JSON number is
// taken as a count of knuts, truncated toward zero.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		var err error
		*a, err = Parse(string(text[1 : len(text)-1]))
		if err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
		}
		return nil
	}
	d, err := decimal.Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	k, err := knutsFromDecimal(d)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = NewFromKnuts(k)
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted quantity string.
// See also method [Amount.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 26)
	text = append(text, '"')
	text = a.appendText(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	var err error
	*a, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary always appends the canonical quantity string.
// See also method [Amount.String].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	return a.appendText(data), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns the canonical quantity string.
// See also method [Amount.String].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	return a.appendText(make([]byte, 0, 24)), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed as quantity strings, integers are
// taken as counts of knuts, and floats as counts of knuts truncated
// toward zero.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = Parse(value)
	case []byte:
		*a, err = Parse(string(value))
	case int64:
		*a = NewFromKnuts(value)
	case float64:
		*a, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrInvalidOperand, value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// Value always returns the canonical quantity string.
// See also method [Amount.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.String(), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}
