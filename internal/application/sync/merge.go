package sync

import (
	"context"
	"errors"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
)

// MergeAction is the outcome of evaluating an incoming record against the
// local catalog.
type MergeAction int

const (
	// MergeActionCreate indicates no usable local match: the caller creates
	// (or update-by-remote-id upserts) the item.
	MergeActionCreate MergeAction = iota
	// MergeActionAttachIDs indicates a name-matched item that has never been
	// linked: only the remote ids are attached, local fields stay untouched.
	MergeActionAttachIDs
	// MergeActionLinkVariant indicates an existing variant matched the full
	// attribute set: the remote ids are attached to that variant.
	MergeActionLinkVariant
	// MergeActionSkip indicates the item is already fully linked.
	MergeActionSkip
)

// MergeDecision is a merge action plus the local item it targets.
// Target is nil for MergeActionCreate.
type MergeDecision struct {
	Action MergeAction
	Target *catalog.Item
}

// MergeEngine applies the update-vs-create decision table for incoming
// records. The table is evaluated in order; the first matching rule wins:
//
//  1. no local item by name/parent code        -> Create
//  2. name match, never linked                 -> AttachIDs
//  3. linked item + resolved attribute values  -> variant disambiguation:
//     exactly one full-set match -> LinkVariant, none -> Create
//  4. stored remote product id differs         -> Create
//  5. otherwise                                -> Skip
type MergeEngine struct {
	items catalog.ItemReader
}

// NewMergeEngine creates a new MergeEngine.
func NewMergeEngine(items catalog.ItemReader) *MergeEngine {
	return &MergeEngine{items: items}
}

// Decide evaluates the decision table for a candidate.
func (e *MergeEngine) Decide(ctx context.Context, cand *itemCandidate) (MergeDecision, error) {
	existing, err := e.lookupAnchor(ctx, cand)
	if err != nil {
		return MergeDecision{}, err
	}
	if existing == nil {
		return MergeDecision{Action: MergeActionCreate}, nil
	}

	if cand.VariantOf == "" && !existing.IsLinked() {
		return MergeDecision{Action: MergeActionAttachIDs, Target: existing}, nil
	}

	if existing.IsLinked() && cand.hasResolvedAttributes() {
		return e.disambiguateVariant(ctx, cand, existing)
	}

	if existing.ShopifyProductID != 0 && existing.ShopifyProductID != cand.ShopifyProductID {
		return MergeDecision{Action: MergeActionCreate}, nil
	}

	return MergeDecision{Action: MergeActionSkip, Target: existing}, nil
}

// lookupAnchor finds the local item the decision table pivots on: the parent
// template for variant candidates, otherwise the item carrying the incoming
// display name.
func (e *MergeEngine) lookupAnchor(ctx context.Context, cand *itemCandidate) (*catalog.Item, error) {
	var (
		item *catalog.Item
		err  error
	)
	if cand.VariantOf != "" {
		item, err = e.items.FindByCode(ctx, cand.VariantOf)
	} else {
		item, err = e.items.FindByName(ctx, cand.Name)
	}
	if errors.Is(err, catalog.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// disambiguateVariant searches the template's existing variants for one whose
// full attribute-value set equals the candidate's. A hit links that variant;
// a miss means the exact combination does not exist locally yet and the
// caller creates it through the variant graph path.
func (e *MergeEngine) disambiguateVariant(ctx context.Context, cand *itemCandidate, anchor *catalog.Item) (MergeDecision, error) {
	templateCode := cand.VariantOf
	if templateCode == "" {
		if anchor.IsTemplate() {
			templateCode = anchor.Code
		} else {
			templateCode = anchor.VariantOf
		}
	}
	if templateCode == "" {
		return MergeDecision{Action: MergeActionCreate}, nil
	}

	match, err := e.items.FindVariantWithAttributes(ctx, templateCode, cand.attributeValueSet())
	if errors.Is(err, catalog.ErrItemNotFound) {
		return MergeDecision{Action: MergeActionCreate}, nil
	}
	if err != nil {
		return MergeDecision{}, err
	}
	return MergeDecision{Action: MergeActionLinkVariant, Target: match}, nil
}
