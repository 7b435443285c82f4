package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alchez/shopify-integration/internal/domain/selling"
	"github.com/Alchez/shopify-integration/internal/domain/shopify"
)

// PayoutSyncConfig holds the accounting defaults for payout reconciliation.
type PayoutSyncConfig struct {
	// FeeAccountHead is the ledger account payout fees post to
	FeeAccountHead string
}

// PayoutSyncService reconciles Shopify Payments payouts into local records.
// Each remote payout is reconciled at most once: the remote payout id is the
// uniqueness key and already-recorded payouts are skipped without any remote
// re-fetch. The cursor only advances after a full pass, so a crashed pass is
// re-listed from the previous cursor and deduplicated by the existence check.
type PayoutSyncService struct {
	client     shopify.PayoutClient
	payouts    selling.PayoutRepository
	orders     selling.SalesOrderRepository
	invoices   selling.SalesInvoiceRepository
	deliveries selling.DeliveryNoteRepository
	products   *ProductSyncService
	settings   SettingsStore
	audit      SyncLogger
	cfg        PayoutSyncConfig
	logger     *zap.Logger
}

// NewPayoutSyncService creates a new PayoutSyncService.
func NewPayoutSyncService(
	client shopify.PayoutClient,
	payouts selling.PayoutRepository,
	orders selling.SalesOrderRepository,
	invoices selling.SalesInvoiceRepository,
	deliveries selling.DeliveryNoteRepository,
	products *ProductSyncService,
	settings SettingsStore,
	audit SyncLogger,
	cfg PayoutSyncConfig,
	logger *zap.Logger,
) *PayoutSyncService {
	return &PayoutSyncService{
		client:     client,
		payouts:    payouts,
		orders:     orders,
		invoices:   invoices,
		deliveries: deliveries,
		products:   products,
		settings:   settings,
		audit:      audit,
		cfg:        cfg,
		logger:     logger,
	}
}

// SyncPayouts lists payouts since the stored cursor and reconciles each new
// one. Per-payout failures are logged and skipped; the failed payout stays
// unrecorded and is retried on the next pass because the cursor did not move
// past it individually.
func (s *PayoutSyncService) SyncPayouts(ctx context.Context) error {
	since, err := s.settings.LastPayoutSync(ctx)
	if err != nil {
		return fmt.Errorf("sync: reading payout cursor: %w", err)
	}

	payouts, err := s.client.ListPayoutsSince(ctx, since)
	if err != nil {
		s.audit.Record(ctx, StatusPayoutError, "payout listing failed", err)
		return fmt.Errorf("sync: listing payouts: %w", err)
	}

	var failed int
	for i := range payouts {
		if err := s.syncPayout(ctx, &payouts[i]); err != nil {
			failed++
			s.logger.Error("payout sync failed",
				zap.Int64("payout_id", payouts[i].ID),
				zap.Error(err),
			)
		}
	}

	if err := s.settings.SetLastPayoutSync(ctx, time.Now()); err != nil {
		return fmt.Errorf("sync: advancing payout cursor: %w", err)
	}

	s.audit.Record(ctx, StatusSuccess, fmt.Sprintf("payout sync completed: %d payouts, %d failed", len(payouts), failed), nil)
	s.logger.Info("payout sync completed",
		zap.Int("total", len(payouts)),
		zap.Int("failed", failed),
	)
	return nil
}

// syncPayout reconciles one remote payout end to end: existence check,
// transaction fetch, order backfill, record build, fee folding.
func (s *PayoutSyncService) syncPayout(ctx context.Context, payout *shopify.Payout) error {
	exists, err := s.payouts.ExistsByPayoutID(ctx, payout.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	transactions, err := s.client.ListTransactions(ctx, payout.ID)
	if err != nil {
		s.audit.Record(ctx, StatusTransactionsError, fmt.Sprintf("transactions fetch failed for payout %d", payout.ID), err)
		return err
	}

	fetched := s.backfillOrders(ctx, transactions)

	record, err := s.buildPayoutRecord(ctx, payout, transactions, fetched)
	if err != nil {
		s.audit.Record(ctx, StatusPayoutError, fmt.Sprintf("payout %d reconciliation failed", payout.ID), err)
		return err
	}
	if err := s.payouts.Save(ctx, record); err != nil {
		return err
	}

	return s.foldInvoiceFees(ctx, record)
}

// backfillOrders makes sure every order referenced by the payout's
// transactions has its local documents. Backfill failures are logged and
// tolerated: the affected transactions are simply recorded without document
// links. Returns the fetched orders keyed by remote order id, so the record
// build can snapshot financial statuses without re-fetching.
func (s *PayoutSyncService) backfillOrders(ctx context.Context, transactions []shopify.Transaction) map[int64]*shopify.Order {
	fetched := make(map[int64]*shopify.Order)
	for _, txn := range transactions {
		if txn.SourceOrderID == 0 {
			continue
		}
		if _, ok := fetched[txn.SourceOrderID]; ok {
			continue
		}

		order, err := s.client.GetOrder(ctx, txn.SourceOrderID)
		if err != nil {
			s.logger.Warn("order fetch failed during payout backfill",
				zap.Int64("order_id", txn.SourceOrderID),
				zap.Error(err),
			)
			continue
		}
		fetched[txn.SourceOrderID] = order

		if err := s.ensureOrderDocuments(ctx, order); err != nil {
			s.logger.Warn("order backfill failed",
				zap.Int64("order_id", order.ID),
				zap.Error(err),
			)
		}
	}
	return fetched
}

// ensureOrderDocuments creates the missing local documents for an order:
// items first, then sales order, invoice and delivery note, each only when
// absent.
func (s *PayoutSyncService) ensureOrderDocuments(ctx context.Context, order *shopify.Order) error {
	if err := s.products.EnsureItemsForOrder(ctx, order); err != nil {
		return err
	}

	so, err := s.ensureSalesOrder(ctx, order)
	if err != nil {
		return err
	}
	if err := s.ensureSalesInvoice(ctx, order, so); err != nil {
		return err
	}
	return s.ensureDeliveryNote(ctx, order, so)
}

func (s *PayoutSyncService) ensureSalesOrder(ctx context.Context, order *shopify.Order) (*selling.SalesOrder, error) {
	so, err := s.orders.FindByShopifyOrderID(ctx, order.ID)
	if err == nil {
		return so, nil
	}
	if !errors.Is(err, selling.ErrDocumentNotFound) {
		return nil, err
	}

	so, err = selling.NewSalesOrder(documentName("SO", order), order.ID, order.Currency, order.TotalPrice)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, so); err != nil {
		return nil, err
	}
	return so, nil
}

func (s *PayoutSyncService) ensureSalesInvoice(ctx context.Context, order *shopify.Order, so *selling.SalesOrder) error {
	_, err := s.invoices.FindByShopifyOrderID(ctx, order.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, selling.ErrDocumentNotFound) {
		return err
	}

	invoice, err := selling.NewSalesInvoice(documentName("SINV", order), order.ID, so.Name, order.Currency, order.TotalPrice)
	if err != nil {
		return err
	}
	return s.invoices.Save(ctx, invoice)
}

func (s *PayoutSyncService) ensureDeliveryNote(ctx context.Context, order *shopify.Order, so *selling.SalesOrder) error {
	_, err := s.deliveries.FindByShopifyOrderID(ctx, order.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, selling.ErrDocumentNotFound) {
		return err
	}

	note, err := selling.NewDeliveryNote(documentName("DN", order), order.ID, so.Name)
	if err != nil {
		return err
	}
	return s.deliveries.Save(ctx, note)
}

// buildPayoutRecord assembles the local payout record: the payout header,
// the unpacked summary, and one transaction row per remote transaction with
// the accounting sign rule applied and local document links attached where
// they exist.
func (s *PayoutSyncService) buildPayoutRecord(ctx context.Context, payout *shopify.Payout, transactions []shopify.Transaction, fetched map[int64]*shopify.Order) (*selling.Payout, error) {
	record, err := selling.NewPayout(payout.ID, payout.Date, payout.Status, payout.Currency, payout.Amount, selling.PayoutSummary{
		AdjustmentsFee:      payout.Summary.AdjustmentsFee,
		AdjustmentsGross:    payout.Summary.AdjustmentsGross,
		ChargesFee:          payout.Summary.ChargesFee,
		ChargesGross:        payout.Summary.ChargesGross,
		RefundsFee:          payout.Summary.RefundsFee,
		RefundsGross:        payout.Summary.RefundsGross,
		ReservedFundsFee:    payout.Summary.ReservedFundsFee,
		ReservedFundsGross:  payout.Summary.ReservedFundsGross,
		RetriedPayoutsFee:   payout.Summary.RetriedPayoutsFee,
		RetriedPayoutsGross: payout.Summary.RetriedPayoutsGross,
	})
	if err != nil {
		return nil, err
	}

	for _, txn := range transactions {
		row := selling.PayoutTransaction{
			TransactionID:            txn.ID,
			TransactionType:          txn.Type.String(),
			ProcessedAt:              txn.ProcessedAt,
			TotalAmount:              txn.SignedAmount(),
			Fee:                      txn.Fee,
			NetAmount:                txn.SignedNet(),
			Currency:                 txn.Currency,
			SourceID:                 txn.SourceID,
			SourceType:               txn.SourceType,
			SourceOrderID:            txn.SourceOrderID,
			SourceOrderTransactionID: txn.SourceOrderTransactionID,
		}

		if txn.SourceOrderID != 0 {
			if order, ok := fetched[txn.SourceOrderID]; ok {
				row.SourceOrderFinancialStatus = order.FinancialStatus
			}
			s.attachDocumentLinks(ctx, &row, txn.SourceOrderID)
		}

		record.AppendTransaction(row)
	}
	return record, nil
}

// attachDocumentLinks resolves the local document names for an order.
// Missing documents leave the link empty; lookup errors are logged and
// treated as missing.
func (s *PayoutSyncService) attachDocumentLinks(ctx context.Context, row *selling.PayoutTransaction, shopifyOrderID int64) {
	if so, err := s.orders.FindByShopifyOrderID(ctx, shopifyOrderID); err == nil {
		row.SalesOrder = so.Name
	} else if !errors.Is(err, selling.ErrDocumentNotFound) {
		s.logger.Warn("sales order lookup failed", zap.Int64("order_id", shopifyOrderID), zap.Error(err))
	}

	if invoice, err := s.invoices.FindByShopifyOrderID(ctx, shopifyOrderID); err == nil {
		row.SalesInvoice = invoice.Name
	} else if !errors.Is(err, selling.ErrDocumentNotFound) {
		s.logger.Warn("sales invoice lookup failed", zap.Int64("order_id", shopifyOrderID), zap.Error(err))
	}

	if note, err := s.deliveries.FindByShopifyOrderID(ctx, shopifyOrderID); err == nil {
		row.DeliveryNote = note.Name
	} else if !errors.Is(err, selling.ErrDocumentNotFound) {
		s.logger.Warn("delivery note lookup failed", zap.Int64("order_id", shopifyOrderID), zap.Error(err))
	}
}

// foldInvoiceFees appends fee charge rows to each linked draft invoice and
// submits it. Submitted invoices are left untouched: fee rows are never
// retrofitted onto finalized documents. A draft invoice in the group is
// submitted even when none of its transactions carried a fee.
func (s *PayoutSyncService) foldInvoiceFees(ctx context.Context, record *selling.Payout) error {
	var firstErr error
	for name, group := range record.TransactionsByInvoice() {
		invoice, err := s.invoices.FindByName(ctx, name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !invoice.IsEditable() {
			continue
		}

		for _, txn := range group {
			if txn.Fee.IsZero() {
				continue
			}
			charge := selling.TaxCharge{
				ChargeType:  "Actual",
				AccountHead: s.cfg.FeeAccountHead,
				Description: txn.TransactionType,
				Amount:      txn.Fee.Neg(),
			}
			if err := invoice.AppendTax(charge); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
		}

		if err := invoice.Submit(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := s.invoices.Save(ctx, invoice); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// documentName derives a stable local document name from a remote order.
func documentName(prefix string, order *shopify.Order) string {
	if order.Name != "" {
		return fmt.Sprintf("%s-%s", prefix, order.Name)
	}
	return fmt.Sprintf("%s-%d", prefix, order.ID)
}
