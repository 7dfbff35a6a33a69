package wizmon

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrDivisionByZero is returned when the divisor of a division or
	// modulo operation is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperand is returned when an operand cannot be interpreted
	// as a count of knuts, e.g. a NaN or infinite float, or an unsupported
	// SQL source type.
	ErrInvalidOperand = errors.New("invalid operand")

	errValueOverflow = errors.New("value overflow")
)

// Amount type represents an amount of wizard money as three independently
// signed counts of galleons, sickles, and knuts.
// Its zero value corresponds to "0g, 0s, 0k".
//
// The counts are not constrained to their natural ranges: "0g, 1s, -10k"
// is a valid amount.
// Conversion methods such as [Amount.ToGalleons] redistribute the counts
// across the denominations without changing the total value.
//
// Amount is a small struct and is copied by value.
// Methods with a pointer receiver, such as [Amount.ConvertToGalleons] and
// [Amount.AddAssign], modify the amount in place; an amount shared between
// owners through a pointer should be copied first if the owners need
// isolation from each other's mutations.
//
// Two amounts with equal total value but different distributions, such as
// 29 knuts and 1 sickle, compare equal with [Amount.Equal] but not with
// the == operator.
// For this reason amounts should not be used as map keys.
type Amount struct {
	galleons int64 // 1 galleon = 493 knuts
	sickles  int64 // 1 sickle = 29 knuts
	knuts    int64 // base unit
}

// New returns an amount with the given counts of galleons, sickles,
// and knuts.
// The counts are kept as given: New does not normalize.
// See also constructors [NewFromKnuts] and [Parse].
func New(galleons, sickles, knuts int64) Amount {
	return Amount{galleons: galleons, sickles: sickles, knuts: knuts}
}

// NewFromKnuts returns an amount holding the given count entirely as knuts.
// See also method [Amount.Value].
func NewFromKnuts(knuts int64) Amount {
	return Amount{knuts: knuts}
}

// NewFromFloat64 converts a float, representing a count of knuts, to an
// amount, truncating any fractional part toward zero.
// See also constructor [NewFromKnuts].
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the truncated count cannot be represented as an int64.
func NewFromFloat64(knuts float64) (Amount, error) {
	d, err := decimalFromFloat(knuts)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	k, err := knutsFromDecimal(d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return NewFromKnuts(k), nil
}

// decimalFromFloat converts a float to a decimal through its shortest
// exact string form.
func decimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: special value %v", ErrInvalidOperand, f)
	}
	return decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
}

// knutsFromDecimal truncates a decimal toward zero to a count of knuts.
func knutsFromDecimal(d decimal.Decimal) (int64, error) {
	k, _, ok := d.Trunc(0).Int64(0)
	if !ok {
		return 0, errValueOverflow
	}
	return k, nil
}

// Galleons returns the count of galleons in the amount.
func (a Amount) Galleons() int64 {
	return a.galleons
}

// Sickles returns the count of sickles in the amount.
func (a Amount) Sickles() int64 {
	return a.sickles
}

// Knuts returns the count of knuts in the amount.
func (a Amount) Knuts() int64 {
	return a.knuts
}

// Value returns the total value of the amount in knuts,
// computed as galleons * 493 + sickles * 29 + knuts.
// It is recomputed on every call and preserved by every conversion method.
func (a Amount) Value() int64 {
	return a.galleons*KnutsPerGalleon + a.sickles*KnutsPerSickle + a.knuts
}

// SetGalleons sets the count of galleons, leaving the other counts unchanged.
func (a *Amount) SetGalleons(galleons int64) {
	a.galleons = galleons
}

// SetSickles sets the count of sickles, leaving the other counts unchanged.
func (a *Amount) SetSickles(sickles int64) {
	a.sickles = sickles
}

// SetKnuts sets the count of knuts, leaving the other counts unchanged.
func (a *Amount) SetKnuts(knuts int64) {
	a.knuts = knuts
}

// ResetGalleons sets the count of galleons to zero.
func (a *Amount) ResetGalleons() {
	a.galleons = 0
}

// ResetSickles sets the count of sickles to zero.
func (a *Amount) ResetSickles() {
	a.sickles = 0
}

// ResetKnuts sets the count of knuts to zero.
func (a *Amount) ResetKnuts() {
	a.knuts = 0
}

// ToKnuts returns an amount with the same value as a, with all
// denominations converted to knuts.
// See also method [Amount.ConvertToKnuts].
func (a Amount) ToKnuts() Amount {
	return NewFromKnuts(a.Value())
}

// ToSickles returns an amount with the same value as a, with all
// denominations converted to sickles.
// Any remaining change is left as knuts, in the range [0, 29) while
// intermediate sums stay non-negative.
// See also method [Amount.ConvertToSickles].
func (a Amount) ToSickles() Amount {
	sickles := a.sickles + a.galleons*SicklesPerGalleon + floorDiv(a.knuts, KnutsPerSickle)
	knuts := floorMod(a.knuts, KnutsPerSickle)
	return New(0, sickles, knuts)
}

// ToGalleons returns an amount with the same value as a, with all
// denominations converted to galleons.
// Any remaining change is left as sickles and knuts.
// Knuts carry into sickles before sickles carry into galleons, so the
// remainders cascade upward exactly once; while intermediate sums stay
// non-negative the result has sickles in [0, 17) and knuts in [0, 29).
// Negative values floor toward more negative galleons: -5 knuts converts
// to "-1g, 16s, 24k".
//
// ToGalleons is idempotent and is also exposed as [Amount.Normalize].
// See also method [Amount.ConvertToGalleons].
func (a Amount) ToGalleons() Amount {
	sickles := a.sickles + floorDiv(a.knuts, KnutsPerSickle)
	knuts := floorMod(a.knuts, KnutsPerSickle)
	galleons := a.galleons + floorDiv(sickles, SicklesPerGalleon)
	sickles = floorMod(sickles, SicklesPerGalleon)
	return New(galleons, sickles, knuts)
}

// Normalize returns the amount in its canonical largest-denomination form.
// It is an alias for [Amount.ToGalleons].
func (a Amount) Normalize() Amount {
	return a.ToGalleons()
}

// ConvertToKnuts converts the amount in place, like [Amount.ToKnuts].
func (a *Amount) ConvertToKnuts() {
	*a = a.ToKnuts()
}

// ConvertToSickles converts the amount in place, like [Amount.ToSickles].
func (a *Amount) ConvertToSickles() {
	*a = a.ToSickles()
}

// ConvertToGalleons converts the amount in place, like [Amount.ToGalleons].
func (a *Amount) ConvertToGalleons() {
	*a = a.ToGalleons()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	switch v := a.Value(); {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Value() == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Value() < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Value() > 0
}

// Abs returns the absolute value of the amount in its canonical
// largest-denomination form.
func (a Amount) Abs() Amount {
	if a.IsNeg() {
		return a.Neg().ToGalleons()
	}
	return a.ToGalleons()
}

// Neg returns an amount with every denomination count negated.
func (a Amount) Neg() Amount {
	return New(-a.galleons, -a.sickles, -a.knuts)
}

// Equal reports whether amounts a and b have equal total value.
// The distribution of the value across denominations is ignored,
// so 29 knuts is equal to 1 sickle.
// See also method [Amount.Cmp].
func (a Amount) Equal(b Amount) bool {
	return a.Value() == b.Value()
}

// Cmp compares the total values of amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// See also methods [Amount.Min], [Amount.Max].
func (a Amount) Cmp(b Amount) int {
	d, e := a.Value(), b.Value()
	switch {
	case d < e:
		return -1
	case d > e:
		return 1
	}
	return 0
}

// Min returns the amount with the smaller total value.
// See also method [Amount.Max].
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the amount with the larger total value.
// See also method [Amount.Min].
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Add returns the sum of amounts a and b.
// Each denomination is added independently and the result is not
// normalized, so "1g" plus "20s" is "1g, 20s, 0k".
// See also methods [Amount.AddKnuts], [Amount.AddQuantity].
func (a Amount) Add(b Amount) Amount {
	return New(a.galleons+b.galleons, a.sickles+b.sickles, a.knuts+b.knuts)
}

// AddKnuts returns the sum of amount a and a count of knuts.
// See also method [Amount.Add].
func (a Amount) AddKnuts(knuts int64) Amount {
	return New(a.galleons, a.sickles, a.knuts+knuts)
}

// AddQuantity returns the sum of amount a and a parsed quantity string.
// See also constructor [Parse].
func (a Amount) AddQuantity(quantity string) (Amount, error) {
	b, err := Parse(quantity)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %q]: %w", a, quantity, err)
	}
	return a.Add(b), nil
}

// Sub returns the difference between amounts a and b.
// Each denomination is subtracted independently and the result is not
// normalized, so "1s" minus "10k" is "0g, 1s, -10k" rather than
// "0g, 0s, 19k".
// See also methods [Amount.SubKnuts], [Amount.SubQuantity].
func (a Amount) Sub(b Amount) Amount {
	return New(a.galleons-b.galleons, a.sickles-b.sickles, a.knuts-b.knuts)
}

// SubKnuts returns the difference between amount a and a count of knuts.
// See also method [Amount.Sub].
func (a Amount) SubKnuts(knuts int64) Amount {
	return New(a.galleons, a.sickles, a.knuts-knuts)
}

// SubQuantity returns the difference between amount a and a parsed
// quantity string.
// See also constructor [Parse].
func (a Amount) SubQuantity(quantity string) (Amount, error) {
	b, err := Parse(quantity)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %q]: %w", a, quantity, err)
	}
	return a.Sub(b), nil
}

// MulInt64 returns the product of amount a and an integer factor.
// Each denomination is multiplied independently, preserving the shape of
// the distribution.
// See also method [Amount.Mul].
func (a Amount) MulInt64(factor int64) Amount {
	return New(a.galleons*factor, a.sickles*factor, a.knuts*factor)
}

// Mul returns the product of amount a and factor e.
//
// When e is a whole number, each denomination is multiplied independently,
// exactly like [Amount.MulInt64].
// When e has a fractional part, the total value of the amount in knuts is
// multiplied instead, truncated toward zero, and normalized to the largest
// denominations.
// Scaling the total is more accurate than scaling each denomination, as it
// does not lose the cross-denomination carry: "1g" times 1.5 is
// "1g, 8s, 14k", not "1g".
//
// Mul returns an error if the result cannot be represented as an int64
// count of knuts.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e decimal.Decimal) (Amount, error) {
	if e.IsInt() {
		n, _, ok := e.Int64(0)
		if !ok {
			return Amount{}, errValueOverflow
		}
		return a.MulInt64(n), nil
	}
	d, err := decimal.New(a.Value(), 0)
	if err != nil {
		return Amount{}, err
	}
	d, err = d.Mul(e)
	if err != nil {
		return Amount{}, err
	}
	k, err := knutsFromDecimal(d)
	if err != nil {
		return Amount{}, err
	}
	return NewFromKnuts(k).ToGalleons(), nil
}

// MulFloat64 is like [Amount.Mul], but accepts the factor as a float.
//
// MulFloat64 returns an error if the float is a special value (NaN or Inf).
func (a Amount) MulFloat64(factor float64) (Amount, error) {
	e, err := decimalFromFloat(factor)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, factor, err)
	}
	return a.Mul(e)
}

// QuoInt64 returns the quotient of amount a and an integer divisor.
// The total value of the amount in knuts is floor-divided by the divisor
// and the result is normalized to the largest denominations.
// All division of amounts is floor division: the quotient floors toward
// negative infinity.
// See also methods [Amount.Quo], [Amount.QuoRemInt64], [Amount.Split].
//
// QuoInt64 returns an error if the divisor is zero.
func (a Amount) QuoInt64(divisor int64) (Amount, error) {
	if divisor == 0 {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, divisor, ErrDivisionByZero)
	}
	return NewFromKnuts(floorDiv(a.Value(), divisor)).ToGalleons(), nil
}

// Quo returns the quotient of amount a and divisor e.
// The total value of the amount in knuts is floor-divided by the divisor
// and the result is normalized to the largest denominations.
// See also methods [Amount.QuoInt64], [Amount.QuoRem].
//
// Quo returns an error if:
//   - the divisor is zero;
//   - the result cannot be represented as an int64 count of knuts.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	c, err := a.quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	d, err := decimal.New(a.Value(), 0)
	if err != nil {
		return Amount{}, err
	}
	q, err := d.Quo(e)
	if err != nil {
		return Amount{}, err
	}
	k, err := knutsFromDecimal(q.Floor(0))
	if err != nil {
		return Amount{}, err
	}
	return NewFromKnuts(k).ToGalleons(), nil
}

// QuoFloat64 is like [Amount.Quo], but accepts the divisor as a float.
//
// QuoFloat64 returns an error if the float is a special value (NaN or Inf).
func (a Amount) QuoFloat64(divisor float64) (Amount, error) {
	e, err := decimalFromFloat(divisor)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, divisor, err)
	}
	return a.Quo(e)
}

// ModInt64 returns the remainder of the total value of amount a
// floor-divided by an integer divisor, normalized to the largest
// denominations.
// The remainder is zero or has the same sign as the divisor, consistent
// with the flooring quotient of [Amount.QuoInt64].
// See also method [Amount.QuoRemInt64].
//
// ModInt64 returns an error if the divisor is zero.
func (a Amount) ModInt64(divisor int64) (Amount, error) {
	if divisor == 0 {
		return Amount{}, fmt.Errorf("computing [%v mod %v]: %w", a, divisor, ErrDivisionByZero)
	}
	return NewFromKnuts(floorMod(a.Value(), divisor)).ToGalleons(), nil
}

// Mod returns the remainder of the total value of amount a floor-divided
// by divisor e, truncated to a count of knuts and normalized to the
// largest denominations.
// See also methods [Amount.ModInt64], [Amount.QuoRem].
//
// Mod returns an error if:
//   - the divisor is zero;
//   - the result cannot be represented as an int64 count of knuts.
func (a Amount) Mod(e decimal.Decimal) (Amount, error) {
	c, err := a.mod(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v mod %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mod(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, ErrDivisionByZero
	}
	d, err := decimal.New(a.Value(), 0)
	if err != nil {
		return Amount{}, err
	}
	q, err := d.Quo(e)
	if err != nil {
		return Amount{}, err
	}
	p, err := q.Floor(0).Mul(e)
	if err != nil {
		return Amount{}, err
	}
	r, err := d.Sub(p)
	if err != nil {
		return Amount{}, err
	}
	k, err := knutsFromDecimal(r)
	if err != nil {
		return Amount{}, err
	}
	return NewFromKnuts(k).ToGalleons(), nil
}

// QuoRemInt64 returns the quotient q and remainder r of amount a and an
// integer divisor, each computed by the rules of [Amount.QuoInt64] and
// [Amount.ModInt64].
// For a nonzero divisor d, the results reconstruct the original value:
// q.MulInt64(d).Add(r) has the same total value as a.
//
// QuoRemInt64 returns an error if the divisor is zero.
func (a Amount) QuoRemInt64(divisor int64) (q, r Amount, err error) {
	q, err = a.QuoInt64(divisor)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	r, err = a.ModInt64(divisor)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	return q, r, nil
}

// QuoRem returns the quotient q and remainder r of amount a and divisor e,
// each computed independently by the rules of [Amount.Quo] and [Amount.Mod].
//
// QuoRem returns an error if:
//   - the divisor is zero;
//   - a result cannot be represented as an int64 count of knuts.
func (a Amount) QuoRem(e decimal.Decimal) (q, r Amount, err error) {
	q, r, err = a.quoRem(e)
	if err != nil {
		return Amount{}, Amount{}, fmt.Errorf("computing [%v div %v] and [%v mod %v]: %w", a, e, a, e, err)
	}
	return q, r, nil
}

func (a Amount) quoRem(e decimal.Decimal) (q, r Amount, err error) {
	q, err = a.quo(e)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	r, err = a.mod(e)
	if err != nil {
		return Amount{}, Amount{}, err
	}
	return q, r, nil
}

// Pow returns the total value of amount a in knuts raised to the given
// exponent, truncated toward zero and normalized to the largest
// denominations.
// A negative exponent inverts the result, which truncates to zero for any
// value larger than one knut.
//
// Pow returns an error if:
//   - the exponent is negative and the amount is zero;
//   - the result cannot be represented as an int64 count of knuts.
func (a Amount) Pow(exp int) (Amount, error) {
	c, err := a.pow(exp)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v ^ %v]: %w", a, exp, err)
	}
	return c, nil
}

func (a Amount) pow(exp int) (Amount, error) {
	d, err := decimal.New(a.Value(), 0)
	if err != nil {
		return Amount{}, err
	}
	p := d.One()
	n := exp
	if n < 0 {
		n = -n
	}
	for i := 0; i < n; i++ {
		p, err = p.Mul(d)
		if err != nil {
			return Amount{}, err
		}
	}
	if exp < 0 {
		if d.IsZero() {
			return Amount{}, ErrDivisionByZero
		}
		p, err = d.One().Quo(p)
		if err != nil {
			return Amount{}, err
		}
	}
	k, err := knutsFromDecimal(p)
	if err != nil {
		return Amount{}, err
	}
	return NewFromKnuts(k).ToGalleons(), nil
}

// AddAssign adds amount b to a in place and returns the mutated receiver.
// See also method [Amount.Add].
func (a *Amount) AddAssign(b Amount) *Amount {
	*a = a.Add(b)
	return a
}

// SubAssign subtracts amount b from a in place and returns the mutated
// receiver.
// See also method [Amount.Sub].
func (a *Amount) SubAssign(b Amount) *Amount {
	*a = a.Sub(b)
	return a
}

// MulAssign multiplies the amount by factor e in place, by the rules of
// [Amount.Mul].
// If the multiplication fails, the receiver is left unchanged.
func (a *Amount) MulAssign(e decimal.Decimal) error {
	c, err := a.Mul(e)
	if err != nil {
		return err
	}
	*a = c
	return nil
}

// QuoAssign divides the amount by divisor e in place, by the rules of
// [Amount.Quo].
// If the division fails, the receiver is left unchanged.
func (a *Amount) QuoAssign(e decimal.Decimal) error {
	c, err := a.Quo(e)
	if err != nil {
		return err
	}
	*a = c
	return nil
}

// ModAssign reduces the amount in place to the remainder of division by
// divisor e, by the rules of [Amount.Mod].
// If the operation fails, the receiver is left unchanged.
func (a *Amount) ModAssign(e decimal.Decimal) error {
	c, err := a.Mod(e)
	if err != nil {
		return err
	}
	*a = c
	return nil
}

// PowAssign raises the amount to the given exponent in place, by the rules
// of [Amount.Pow].
// If the operation fails, the receiver is left unchanged.
func (a *Amount) PowAssign(exp int) error {
	c, err := a.Pow(exp)
	if err != nil {
		return err
	}
	*a = c
	return nil
}

// Split returns a slice of amounts that sum up to the total value of the
// original amount, ensuring the parts are as equal as possible.
// If the value cannot be divided equally among the specified number of
// parts, the extra knuts are distributed among the first parts of the
// slice.
// Each part is normalized to the largest denominations.
// See also methods [Amount.QuoInt64], [Amount.QuoRemInt64].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	if parts < 1 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	n := int64(parts)
	quo := floorDiv(a.Value(), n)
	rem := a.Value() - quo*n

	res := make([]Amount, parts)
	for i := range res {
		k := quo
		// Extra knut distribution
		if int64(i) < rem {
			k++
		}
		res[i] = NewFromKnuts(k).ToGalleons()
	}
	return res, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, e.g. "5g, 2s, 10k".
// The counts are printed as stored, in galleon, sickle, knut order,
// without normalization.
// The result is a valid quantity string and round-trips through [Parse].
// See also method [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return string(a.appendText(make([]byte, 0, 24)))
}

func (a Amount) appendText(text []byte) []byte {
	text = strconv.AppendInt(text, a.galleons, 10)
	text = append(text, Galleon.Code()...)
	text = append(text, ',', ' ')
	text = strconv.AppendInt(text, a.sickles, 10)
	text = append(text, Sickle.Code()...)
	text = append(text, ',', ' ')
	text = strconv.AppendInt(text, a.knuts, 10)
	text = append(text, Knut.Code()...)
	return text
}

// GoString implements the [fmt.GoStringer] interface and returns a string
// that reproduces a valid constructor call for the amount,
// e.g. "wizmon.New(5, 2, 10)".
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (a Amount) GoString() string {
	return fmt.Sprintf("wizmon.New(%d, %d, %d)", a.galleons, a.sickles, a.knuts)
}

// Denominations returns the denomination counts of the amount as a
// three-element slice of quantity strings, always in galleon, sickle,
// knut order, e.g. ["5g", "2s", "10k"].
// It is intended for enumeration use cases, such as iterating over the
// denominations for display.
func (a Amount) Denominations() []string {
	return []string{
		strconv.FormatInt(a.galleons, 10) + Galleon.Code(),
		strconv.FormatInt(a.sickles, 10) + Sickle.Code(),
		strconv.FormatInt(a.knuts, 10) + Knut.Code(),
	}
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example       | Description            |
//	| ------ | ------------- | ---------------------- |
//	| %s, %v | 5g, 2s, 10k   | Quantity string        |
//	| %q     | "5g, 2s, 10k" | Quoted quantity string |
//	| %d     | 2533          | Total value in knuts   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//nolint:errcheck
func (a Amount) Format(state fmt.State, verb rune) {
	var text []byte
	switch verb {
	case 'q', 'Q':
		text = append(text, '"')
		text = a.appendText(text)
		text = append(text, '"')
	case 's', 'S', 'v', 'V':
		text = a.appendText(text)
	case 'd', 'D':
		text = strconv.AppendInt(text, a.Value(), 10)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(wizmon.Amount="))
		state.Write(a.appendText(nil))
		state.Write([]byte(")"))
		return
	}

	// Calculating padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	for i := 0; i < lspaces; i++ {
		state.Write([]byte{' '})
	}
	state.Write(text)
	for i := 0; i < tspaces; i++ {
		state.Write([]byte{' '})
	}
}

// floorDiv returns the quotient of x and y floored toward negative
// infinity, unlike Go's / operator, which truncates toward zero.
func floorDiv(x, y int64) int64 {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder of the flooring division of x by y.
// The remainder is zero or has the same sign as y.
func floorMod(x, y int64) int64 {
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}
