package wizmon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrQuantityFormat is returned when a quantity string is malformed:
// a bad unit suffix, a non-numeric count, or an empty segment.
var ErrQuantityFormat = errors.New("invalid quantity")

// Parse converts a quantity string to an amount.
// A quantity string is a comma-delimited list of counts, each followed by
// the unit abbreviation g, s, or k for galleons, sickles, or knuts:
//
//	5g
//	5g, 10k
//	-4s
//	2g,-5s,10k
//
// Whitespace around each piece is trimmed.
// The abbreviation must be lowercase and follow directly behind the count.
// A count without a unit is taken to be in knuts, so "10" is the same
// as "10k".
// Repeated units are summed together, so "5g, 5g" is the same as "10g".
// The order of pieces does not matter.
//
// Parse does not normalize the result: "40k" parses to 40 knuts,
// not 1 sickle and 11 knuts.
// See also method [Amount.ToGalleons].
//
// Parse returns an error, wrapping [ErrQuantityFormat], if:
//   - a piece is empty or contains only whitespace;
//   - a count is not a valid integer, e.g. "1.5g" or "5 g";
//   - a piece ends with a character that is not a digit or
//     a valid unit abbreviation, e.g. "5x".
func Parse(quantity string) (Amount, error) {
	a, err := parseQuantity(quantity)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", quantity, err)
	}
	return a, nil
}

func parseQuantity(quantity string) (Amount, error) {
	var galleons, sickles, knuts int64

	for _, piece := range strings.Split(quantity, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			return Amount{}, fmt.Errorf("%w: empty piece", ErrQuantityFormat)
		}

		unit := Knut
		count := piece
		if last := piece[len(piece)-1]; last < '0' || last > '9' {
			u, err := ParseUnit(string(last))
			if err != nil {
				return Amount{}, err
			}
			unit = u
			count = piece[:len(piece)-1]
		}

		n, err := strconv.ParseInt(count, 10, 64)
		if err != nil {
			return Amount{}, fmt.Errorf("%w: piece %q must be an integer count followed by 'g', 's', 'k', or no unit", ErrQuantityFormat, piece)
		}

		switch unit {
		case Galleon:
			galleons += n
		case Sickle:
			sickles += n
		default:
			knuts += n
		}
	}

	return New(galleons, sickles, knuts), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(quantity string) Amount {
	a, err := Parse(quantity)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", quantity, err))
	}
	return a
}
