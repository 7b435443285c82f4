package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAttributeInvalidName indicates an empty attribute name
	ErrAttributeInvalidName = errors.New("catalog: invalid attribute name")
	// ErrAttributeNoValues indicates a discrete attribute with no values
	ErrAttributeNoValues = errors.New("catalog: attribute requires at least one value")
	// ErrAttributeNumeric indicates a mutation attempted on a numeric-range attribute
	ErrAttributeNumeric = errors.New("catalog: numeric attribute does not accept discrete values")
	// ErrAttributeNotFound indicates the attribute definition does not exist
	ErrAttributeNotFound = errors.New("catalog: attribute not found")
)

// AttributeValue is one discrete value of an item attribute. The abbreviation
// acts as an alternate key: resolution matches either field, case-insensitively.
type AttributeValue struct {
	// Value is the canonical attribute value (e.g. "Small")
	Value string
	// Abbr is the abbreviation used on variant item codes (e.g. "S")
	Abbr string
}

// ItemAttribute defines one variation axis shared across items (e.g. Size).
// An attribute is either discrete (carries a value list) or numeric-range
// (carries from/to/increment and resolves raw inputs to plain numbers).
// Once numeric, a definition never accepts discrete values.
type ItemAttribute struct {
	// Name is the definition's identity, matched case-sensitively
	Name string
	// NumericValues marks the definition as numeric-range mode
	NumericValues bool
	// FromRange is the lower bound for numeric-range attributes
	FromRange decimal.Decimal
	// ToRange is the upper bound for numeric-range attributes
	ToRange decimal.Decimal
	// Increment is the step size for numeric-range attributes
	Increment decimal.Decimal
	// Values holds the discrete values (empty in numeric-range mode)
	Values []AttributeValue
	// CreatedAt is when the definition was created
	CreatedAt time.Time
	// UpdatedAt is when the definition was last updated
	UpdatedAt time.Time
}

// NewItemAttribute creates a discrete attribute definition seeded with the
// given values. Each value doubles as its own abbreviation, mirroring how
// platform option values arrive without separate codes.
func NewItemAttribute(name string, values []string) (*ItemAttribute, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAttributeInvalidName
	}
	if len(values) == 0 {
		return nil, ErrAttributeNoValues
	}

	now := time.Now()
	attr := &ItemAttribute{
		Name:      name,
		Values:    make([]AttributeValue, 0, len(values)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	attr.appendValues(values)
	return attr, nil
}

// MatchValue resolves a raw option value against the discrete value list.
// Both the stored value and its abbreviation are compared case-insensitively.
// Returns the canonical stored value on a hit.
func (a *ItemAttribute) MatchValue(raw string) (string, bool) {
	for _, v := range a.Values {
		if strings.EqualFold(v.Value, raw) || strings.EqualFold(v.Abbr, raw) {
			return v.Value, true
		}
	}
	return "", false
}

// AppendMissingValues appends any values that do not already match an existing
// value or abbreviation, and reports how many were added. Numeric-range
// definitions are never mutated.
func (a *ItemAttribute) AppendMissingValues(values []string) (int, error) {
	if a.NumericValues {
		return 0, ErrAttributeNumeric
	}

	var missing []string
	for _, raw := range values {
		if _, ok := a.MatchValue(raw); !ok {
			missing = append(missing, raw)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	a.appendValues(missing)
	a.UpdatedAt = time.Now()
	return len(missing), nil
}

// ResolveValue resolves a raw option value to the value stored on a variant.
// Discrete definitions return the canonical matched value; numeric-range
// definitions (and unmatched discrete inputs) coerce the raw string to a
// plain number.
func (a *ItemAttribute) ResolveValue(raw string) string {
	if !a.NumericValues {
		if value, ok := a.MatchValue(raw); ok {
			return value
		}
	}
	return coerceNumeric(raw)
}

func (a *ItemAttribute) appendValues(values []string) {
	for _, raw := range values {
		a.Values = append(a.Values, AttributeValue{Value: raw, Abbr: raw})
	}
}

// coerceNumeric parses raw as a decimal number, returning its normalized
// string form. Unparseable input collapses to "0".
func coerceNumeric(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "0"
	}
	return d.String()
}
