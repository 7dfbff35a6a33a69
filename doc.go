/*
Package wizmon implements amounts of wizard money.
An amount is counted in three fixed-ratio denominations: 29 knuts make
1 sickle, and 17 sickles make 1 galleon, so 1 galleon is 493 knuts.
Fractional scalars in arithmetic are handled with the [decimal] package.

# Representation

The wizmon package consists of two main types: Amount and Unit.
An Amount holds three independently signed integer counts, one per
denomination; the counts are not forced into their natural ranges, so
"0g, 1s, -10k" is a valid amount.
The Unit type identifies a single denomination and knows its worth
in knuts.

The total value of an amount is its worth in knuts,
galleons * 493 + sickles * 29 + knuts.
Conversion methods redistribute the counts across the denominations
without changing the total value; ToGalleons produces the canonical
largest-denomination form.

# Quantity Strings

Amounts are written as comma-delimited quantity strings such as
"5g, 2s, 10k" or "-4s".
Each piece is an integer count followed directly by the lowercase unit
abbreviation g, s, or k; a piece without a unit is a count of knuts.
Repeated units are summed, so "5g, 5g" parses the same as "10g".
The String method prints this format and Parse reads it back.

# Operations

Addition, subtraction, and negation work on each denomination count
independently and never normalize, preserving the distribution the
caller chose.
Multiplication by a whole number also works per denomination; a
fractional multiplier instead scales the total value in knuts and
normalizes, which preserves the cross-denomination carry.
All division is floor division of the total value.
Comparison operations and equality consider only the total value, so
29 knuts is equal to 1 sickle.

# Mutability

Amount is a mutable value type and is not safe for concurrent use.
The in-place conversion and compound-assignment methods take a pointer
receiver; in-place operations validate their operands before touching
the receiver, so a failed operation leaves the amount unchanged.
Copying the struct value gives an isolated amount.

# Errors

Errors may occur during the parsing of quantity strings, during division
by zero, and when a result does not fit in an int64 count of knuts.
Sentinel errors such as ErrQuantityFormat can be tested for with
errors.Is.
*/
package wizmon
