package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/domain/shopify"
)

// AttributeSynthesizer reconciles a product's option axes against the local
// attribute definitions. Missing definitions are created with the supplied
// values; existing discrete definitions absorb unmatched values; numeric-range
// definitions are never mutated.
type AttributeSynthesizer struct {
	attributes catalog.AttributeRepository
}

// NewAttributeSynthesizer creates a new AttributeSynthesizer.
func NewAttributeSynthesizer(attributes catalog.AttributeRepository) *AttributeSynthesizer {
	return &AttributeSynthesizer{attributes: attributes}
}

// Synthesize reconciles each option axis and returns the resulting
// definitions in axis slot order, so that definition i resolves variant
// option slot i. Definitions are persisted at most once per axis.
func (s *AttributeSynthesizer) Synthesize(ctx context.Context, options []shopify.ProductOption) ([]*catalog.ItemAttribute, error) {
	defs := make([]*catalog.ItemAttribute, 0, len(options))

	for _, option := range options {
		def, err := s.attributes.FindByName(ctx, option.Name)
		switch {
		case errors.Is(err, catalog.ErrAttributeNotFound):
			def, err = catalog.NewItemAttribute(option.Name, option.Values)
			if err != nil {
				return nil, fmt.Errorf("sync: creating attribute %q: %w", option.Name, err)
			}
			if err := s.attributes.Save(ctx, def); err != nil {
				return nil, fmt.Errorf("sync: saving attribute %q: %w", option.Name, err)
			}

		case err != nil:
			return nil, err

		case !def.NumericValues:
			added, err := def.AppendMissingValues(option.Values)
			if err != nil {
				return nil, err
			}
			if added > 0 {
				if err := s.attributes.Save(ctx, def); err != nil {
					return nil, fmt.Errorf("sync: saving attribute %q: %w", option.Name, err)
				}
			}
		}
		// Numeric-range definitions pass through untouched: the variant path
		// coerces raw option values to numbers instead.

		defs = append(defs, def)
	}

	return defs, nil
}

// AxisRows converts reconciled definitions into the attribute rows stored on
// a template item: axis names only, with range descriptors copied for
// numeric-range axes and no concrete values.
func AxisRows(defs []*catalog.ItemAttribute) []catalog.VariantAttribute {
	rows := make([]catalog.VariantAttribute, 0, len(defs))
	for _, def := range defs {
		row := catalog.VariantAttribute{Attribute: def.Name}
		if def.NumericValues {
			row.NumericValues = true
			row.FromRange = def.FromRange
			row.ToRange = def.ToRange
			row.Increment = def.Increment
		}
		rows = append(rows, row)
	}
	return rows
}

// VariantRows resolves one variant's raw option values against the axis
// definitions, returning a per-variant copy of the attribute rows. Axis order
// follows the definitions, which follow the product's option slots.
func VariantRows(defs []*catalog.ItemAttribute, variant shopify.Variant) []catalog.VariantAttribute {
	rows := AxisRows(defs)
	for i, def := range defs {
		if raw := variant.OptionValue(i); raw != "" {
			rows[i].Value = def.ResolveValue(raw)
		}
	}
	return rows
}
