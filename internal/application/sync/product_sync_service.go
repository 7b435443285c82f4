package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Alchez/shopify-integration/internal/domain/catalog"
	"github.com/Alchez/shopify-integration/internal/domain/shopify"
)

// ProductSyncConfig holds the local defaults applied to synced items.
type ProductSyncConfig struct {
	// Warehouse is the default warehouse assigned to synced items
	Warehouse string
	// ItemGroup is the default (and parent) item group
	ItemGroup string
	// SupplierGroup is the group assigned to auto-created suppliers
	SupplierGroup string
	// PriceList is the price list synced rates are written to
	PriceList string
	// UpdatePriceList gates price list writes entirely
	UpdatePriceList bool
}

// ProductSyncService pulls the active remote catalog and reconciles every
// product into the local item tree. Records are processed one at a time, in
// remote list order, and committed individually: a failure partway through
// leaves previously processed records durably linked.
type ProductSyncService struct {
	client      shopify.CatalogClient
	items       catalog.ItemRepository
	itemGroups  catalog.ItemGroupRepository
	suppliers   catalog.SupplierRepository
	prices      catalog.ItemPriceRepository
	resolver    *IdentityResolver
	synthesizer *AttributeSynthesizer
	merge       *MergeEngine
	audit       SyncLogger
	cfg         ProductSyncConfig
	logger      *zap.Logger
}

// NewProductSyncService creates a new ProductSyncService.
func NewProductSyncService(
	client shopify.CatalogClient,
	items catalog.ItemRepository,
	attributes catalog.AttributeRepository,
	itemGroups catalog.ItemGroupRepository,
	suppliers catalog.SupplierRepository,
	prices catalog.ItemPriceRepository,
	audit SyncLogger,
	cfg ProductSyncConfig,
	logger *zap.Logger,
) *ProductSyncService {
	return &ProductSyncService{
		client:      client,
		items:       items,
		itemGroups:  itemGroups,
		suppliers:   suppliers,
		prices:      prices,
		resolver:    NewIdentityResolver(items),
		synthesizer: NewAttributeSynthesizer(attributes),
		merge:       NewMergeEngine(items),
		audit:       audit,
		cfg:         cfg,
		logger:      logger,
	}
}

// SyncProducts pulls all active products and reconciles them. A listing
// failure aborts the pass; per-product failures are logged and the remaining
// products continue.
func (s *ProductSyncService) SyncProducts(ctx context.Context) error {
	products, err := s.client.ListActiveProducts(ctx)
	if err != nil {
		s.audit.Record(ctx, StatusError, "product listing failed", err)
		return fmt.Errorf("sync: listing products: %w", err)
	}

	var failed int
	for i := range products {
		if err := s.SyncProduct(ctx, &products[i]); err != nil {
			failed++
			s.audit.Record(ctx, StatusError, fmt.Sprintf("product %d sync failed", products[i].ID), err)
			s.logger.Error("product sync failed",
				zap.Int64("product_id", products[i].ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("product sync completed",
		zap.Int("total", len(products)),
		zap.Int("failed", failed),
	)
	return nil
}

// SyncProduct reconciles a single remote product. Multi-variant products go
// through attribute synthesis and the variant graph; everything else becomes
// a simple item carrying its default variant's identity.
func (s *ProductSyncService) SyncProduct(ctx context.Context, product *shopify.Product) error {
	if product.HasVariantAxes() {
		return s.syncVariantProduct(ctx, product)
	}

	cand := newSimpleCandidate(product)
	if err := s.decorateCandidate(ctx, cand, product); err != nil {
		return err
	}
	_, err := s.upsertItem(ctx, cand)
	return err
}

// syncVariantProduct builds the template/variant tree for a multi-variant
// product. The template write is a strict barrier: variants take the
// committed template as an input and are only attempted after it succeeded,
// so they can never come up as orphans.
func (s *ProductSyncService) syncVariantProduct(ctx context.Context, product *shopify.Product) error {
	defs, err := s.synthesizer.Synthesize(ctx, product.Options)
	if err != nil {
		return err
	}

	cand := newTemplateCandidate(product, AxisRows(defs))
	if err := s.decorateCandidate(ctx, cand, product); err != nil {
		return err
	}
	template, err := s.upsertItem(ctx, cand)
	if err != nil {
		return fmt.Errorf("sync: template for product %d: %w", product.ID, err)
	}
	if template == nil {
		// The merge engine declined to produce a template (already handled
		// elsewhere); without a committed template no variant can link.
		return nil
	}

	var firstErr error
	for _, variant := range product.Variants {
		attrs := VariantRows(defs, variant)
		vc := newVariantCandidate(product, variant, template, attrs)
		if _, err := s.upsertItem(ctx, vc); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sync: variant %d: %w", variant.ID, err)
		}
	}
	return firstErr
}

// EnsureItemsForOrder force-creates local items for any order line that
// references a product, variant or bare title with no local match. Shopify
// allows such orphaned references, so backfilled orders lean on this before
// local documents are cut.
func (s *ProductSyncService) EnsureItemsForOrder(ctx context.Context, order *shopify.Order) error {
	var firstErr error
	for _, line := range order.LineItems {
		exists, err := s.lineItemExists(ctx, line)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if exists {
			continue
		}

		cand := newLineItemCandidate(line)
		if cand.Name == "" {
			continue
		}
		if _, err := s.upsertItem(ctx, cand); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sync: line item %q: %w", cand.Name, err)
		}
	}
	return firstErr
}

// lineItemExists checks all three identifying keys a line item may carry.
// Every key the line carries must resolve for the item to count as present.
func (s *ProductSyncService) lineItemExists(ctx context.Context, line shopify.LineItem) (bool, error) {
	if line.ProductID != 0 {
		if _, err := s.items.FindByShopifyProductID(ctx, line.ProductID); err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				return false, nil
			}
			return false, err
		}
	}

	if line.VariantID != 0 {
		if _, err := s.items.FindByShopifyVariantID(ctx, line.VariantID); err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				return false, nil
			}
			return false, err
		}
	}

	if title := strings.TrimSpace(line.Title); title != "" {
		if _, err := s.items.FindByCode(ctx, title); err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				return false, nil
			}
			return false, err
		}
	}

	return true, nil
}

// ---------------------------------------------------------------------------
// Item upsert
// ---------------------------------------------------------------------------

// upsertItem runs the merge decision for a candidate and applies the outcome.
// Returns the item the candidate now corresponds to (nil only on error).
func (s *ProductSyncService) upsertItem(ctx context.Context, cand *itemCandidate) (*catalog.Item, error) {
	decision, err := s.merge.Decide(ctx, cand)
	if err != nil {
		return nil, err
	}

	switch decision.Action {
	case MergeActionSkip:
		return decision.Target, nil

	case MergeActionAttachIDs:
		target := decision.Target
		target.LinkShopifyIDs(cand.ShopifyProductID, cand.ShopifyVariantID)
		if err := s.items.Save(ctx, target); err != nil {
			return nil, err
		}
		return target, nil

	case MergeActionLinkVariant:
		target := decision.Target
		target.LinkShopifyIDs(cand.ShopifyProductID, cand.ShopifyVariantID)
		if err := s.items.Save(ctx, target); err != nil {
			return nil, err
		}
		// The linked variant then absorbs the incoming fields through the
		// regular update-by-remote-id path below.
		return s.createOrUpdate(ctx, cand)

	default:
		return s.createOrUpdate(ctx, cand)
	}
}

// createOrUpdate updates the item already linked to the candidate's remote
// ids, or inserts a fresh one. Variant candidates only match by variant id:
// matching by product id would resolve to the template and corrupt it.
func (s *ProductSyncService) createOrUpdate(ctx context.Context, cand *itemCandidate) (*catalog.Item, error) {
	existing, err := s.findExisting(ctx, cand)
	if err != nil {
		return nil, err
	}

	var item *catalog.Item
	if existing != nil {
		cand.apply(existing)
		item = existing
	} else {
		item = cand.newItem()
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	if !cand.HasVariants && cand.HasPrice {
		if err := s.addToPriceList(ctx, item.Code, cand); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// findExisting resolves the candidate to an already-linked item, if any.
func (s *ProductSyncService) findExisting(ctx context.Context, cand *itemCandidate) (*catalog.Item, error) {
	if cand.VariantOf == "" && cand.ShopifyProductID != 0 {
		item, err := s.items.FindByShopifyProductID(ctx, cand.ShopifyProductID)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, catalog.ErrItemNotFound) {
			return nil, err
		}
	}
	if cand.ShopifyVariantID != 0 {
		item, err := s.items.FindByShopifyVariantID(ctx, cand.ShopifyVariantID)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, catalog.ErrItemNotFound) {
			return nil, err
		}
	}
	return nil, nil
}

// decorateCandidate fills in the defaults and on-demand records a
// product-level candidate needs: item group, supplier and warehouse-driven
// settings from configuration.
func (s *ProductSyncService) decorateCandidate(ctx context.Context, cand *itemCandidate, product *shopify.Product) error {
	group, err := s.ensureItemGroup(ctx, product.ProductType)
	if err != nil {
		return err
	}
	cand.ItemGroup = group

	supplier, err := s.ensureSupplier(ctx, product.Vendor)
	if err != nil {
		return err
	}
	cand.Supplier = supplier
	return nil
}

// ensureItemGroup finds or creates the item group for a product type.
// An empty product type falls back to the configured default group.
func (s *ProductSyncService) ensureItemGroup(ctx context.Context, productType string) (string, error) {
	productType = strings.TrimSpace(productType)
	if productType == "" {
		return s.cfg.ItemGroup, nil
	}

	exists, err := s.itemGroups.Exists(ctx, productType)
	if err != nil {
		return "", err
	}
	if !exists {
		group := &catalog.ItemGroup{
			Name:        productType,
			ParentGroup: s.cfg.ItemGroup,
		}
		if err := s.itemGroups.Save(ctx, group); err != nil {
			return "", err
		}
	}
	return productType, nil
}

// ensureSupplier finds or creates the supplier for a vendor. Lookup matches
// the exact vendor name or the normalized lowercase key.
func (s *ProductSyncService) ensureSupplier(ctx context.Context, vendor string) (string, error) {
	vendor = strings.TrimSpace(vendor)
	if vendor == "" {
		return "", nil
	}

	supplier, err := s.suppliers.FindByNameOrShopifyID(ctx, vendor, strings.ToLower(vendor))
	if err != nil {
		return "", err
	}
	if supplier != nil {
		return supplier.Name, nil
	}

	supplier = &catalog.Supplier{
		Name:              vendor,
		ShopifySupplierID: strings.ToLower(vendor),
		SupplierGroup:     s.cfg.SupplierGroup,
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return "", err
	}
	return supplier.Name, nil
}

// addToPriceList upserts the price list entry for an item.
func (s *ProductSyncService) addToPriceList(ctx context.Context, itemCode string, cand *itemCandidate) error {
	if !s.cfg.UpdatePriceList || s.cfg.PriceList == "" {
		return nil
	}

	entry, err := s.prices.FindByItemAndPriceList(ctx, itemCode, s.cfg.PriceList)
	if errors.Is(err, catalog.ErrItemNotFound) {
		entry = &catalog.ItemPrice{
			ItemCode:  itemCode,
			PriceList: s.cfg.PriceList,
		}
	} else if err != nil {
		return err
	}

	entry.Rate = cand.Price
	return s.prices.Save(ctx, entry)
}

// Resolver exposes the service's identity resolver for collaborators that
// need bare reference resolution.
func (s *ProductSyncService) Resolver() *IdentityResolver {
	return s.resolver
}
