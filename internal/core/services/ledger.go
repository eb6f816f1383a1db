// internal/core/services/ledger.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
)

// ReportDateFormat is the accepted layout for sales report boundaries,
// parsed in local time.
const ReportDateFormat = "2006-01-02"

const (
	defaultBestSellersLimit = 3
	defaultReportTopItems   = 5
)

// LedgerOptions tunes report sizing.
type LedgerOptions struct {
	// BestSellersLimit is the fallback row count for BestSellers when the
	// caller passes limit <= 0.
	BestSellersLimit int
	// ReportTopItems caps the per-item breakdown of SalesReport. Grand
	// totals are unaffected.
	ReportTopItems int
}

// Ledger owns the stock catalog and the append-only sales history per item.
// Every public operation is all-or-nothing and serialized by a single mutex;
// operations are O(n) over a small catalog and hold no external resources,
// so finer-grained locking buys nothing here.
type Ledger struct {
	mu      sync.Mutex
	catalog map[string]*domain.StockItem
	opts    LedgerOptions
	logger  *slog.Logger
}

// Statically assert that *Ledger implements the Ledger port.
var _ ports.Ledger = (*Ledger)(nil)

// NewLedger creates an empty ledger.
func NewLedger(opts LedgerOptions, logger *slog.Logger) *Ledger {
	if opts.BestSellersLimit <= 0 {
		opts.BestSellersLimit = defaultBestSellersLimit
	}
	if opts.ReportTopItems <= 0 {
		opts.ReportTopItems = defaultReportTopItems
	}
	return &Ledger{
		catalog: make(map[string]*domain.StockItem),
		opts:    opts,
		logger:  logger.With(slog.String("service", "ledger")),
	}
}

// AddItem inserts a new catalog entry with empty sales history.
func (l *Ledger) AddItem(ctx context.Context, params ports.AddItemParams) (domain.StockItem, error) {
	item, err := domain.NewStockItem(params.Name, params.Quantity, params.Price, params.MinimumStock, params.Category)
	if err != nil {
		return domain.StockItem{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.catalog[item.Name]; exists {
		return domain.StockItem{}, fmt.Errorf("%w: %s", domain.ErrDuplicateItem, item.Name)
	}
	l.catalog[item.Name] = item

	l.logger.InfoContext(ctx, "added stock item",
		slog.String("name", item.Name),
		slog.Int("quantity", item.Quantity),
		slog.String("category", string(item.Category)))

	return item.Clone(), nil
}

// RemoveItem deletes an item and its entire sales history irrecoverably.
func (l *Ledger) RemoveItem(ctx context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.catalog[name]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	delete(l.catalog, name)

	l.logger.InfoContext(ctx, "removed stock item", slog.String("name", name))
	return nil
}

// SetQuantity overwrites the on-hand quantity. This is an administrative
// override distinct from selling: it touches neither sold counters nor
// history, but it does bump LastUpdated.
func (l *Ledger) SetQuantity(ctx context.Context, name string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item, exists := l.catalog[name]
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	item.Quantity = quantity
	item.LastUpdated = time.Now()

	l.logger.InfoContext(ctx, "set stock quantity",
		slog.String("name", name),
		slog.Int("quantity", quantity))
	return nil
}

// AddStock restocks an item. Quantity-only change: LastUpdated stays put.
func (l *Ledger) AddStock(ctx context.Context, name string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: restock amount must be positive", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item, exists := l.catalog[name]
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	item.Quantity += amount

	l.logger.InfoContext(ctx, "restocked item",
		slog.String("name", name),
		slog.Int("amount", amount),
		slog.Int("quantity", item.Quantity))
	return nil
}

// Sell records a sale at the item's current price. A sale that would drive
// the quantity negative is rejected outright, never partially applied.
func (l *Ledger) Sell(ctx context.Context, name string, amount int) (domain.SaleRecord, error) {
	if amount <= 0 {
		return domain.SaleRecord{}, fmt.Errorf("%w: sale amount must be positive", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item, exists := l.catalog[name]
	if !exists {
		return domain.SaleRecord{}, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	if amount > item.Quantity {
		return domain.SaleRecord{}, fmt.Errorf("%w: %d requested, %d on hand", domain.ErrInsufficientStock, amount, item.Quantity)
	}

	record := domain.NewSaleRecord(item.Name, amount, item.Price)
	item.Quantity -= amount
	item.Sold += amount
	item.SalesHistory = append(item.SalesHistory, record)

	l.logger.InfoContext(ctx, "recorded sale",
		slog.String("name", name),
		slog.Int("amount", amount),
		slog.String("total", record.Total().StringFixed(2)))

	return record, nil
}

// SetPrice updates the unit price and bumps LastUpdated.
func (l *Ledger) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidArgument)
	}
	return l.editItem(ctx, name, "price", func(item *domain.StockItem) {
		item.Price = price
	})
}

// SetMinimumStock updates the reorder threshold and bumps LastUpdated.
func (l *Ledger) SetMinimumStock(ctx context.Context, name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%w: minimum stock cannot be negative", domain.ErrInvalidArgument)
	}
	return l.editItem(ctx, name, "minimum_stock", func(item *domain.StockItem) {
		item.MinimumStock = value
	})
}

// SetCategory updates the category and bumps LastUpdated.
func (l *Ledger) SetCategory(ctx context.Context, name string, category domain.ItemCategory) error {
	if category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidArgument)
	}
	return l.editItem(ctx, name, "category", func(item *domain.StockItem) {
		item.Category = category
	})
}

// editItem applies an attribute edit under the lock and bumps LastUpdated.
func (l *Ledger) editItem(ctx context.Context, name, field string, apply func(*domain.StockItem)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, exists := l.catalog[name]
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	apply(item)
	item.LastUpdated = time.Now()

	l.logger.InfoContext(ctx, "edited stock item",
		slog.String("name", name),
		slog.String("field", field))
	return nil
}

// Query returns a snapshot of every item matching the filter, ordered by
// name so repeated calls render identically.
func (l *Ledger) Query(ctx context.Context, params ports.QueryParams) ([]domain.StockItem, error) {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	category := strings.TrimSpace(params.Category)

	l.mu.Lock()
	defer l.mu.Unlock()

	var items []domain.StockItem
	for _, item := range l.catalog {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if category != "" && category != domain.CategoryFilterAll && string(item.Category) != category {
			continue
		}
		items = append(items, item.Clone())
	}

	sort.Slice(items, func(a, b int) bool {
		return items[a].Name < items[b].Name
	})
	return items, nil
}

// BestSellers ranks items by cumulative units sold, descending, ties broken
// by name ascending. Items that never sold are eligible and rank last.
func (l *Ledger) BestSellers(ctx context.Context, limit int) ([]domain.StockItem, error) {
	if limit <= 0 {
		limit = l.opts.BestSellersLimit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]domain.StockItem, 0, len(l.catalog))
	for _, item := range l.catalog {
		items = append(items, item.Clone())
	}

	sort.Slice(items, func(a, b int) bool {
		if items[a].Sold != items[b].Sold {
			return items[a].Sold > items[b].Sold
		}
		return items[a].Name < items[b].Name
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// SalesReport aggregates every sale across all items whose timestamp falls
// within [startDate, end of endDate], both in local time. The per-item
// breakdown is ordered by quantity descending and truncated to the display
// limit; grand totals always cover every matching record.
func (l *Ledger) SalesReport(ctx context.Context, startDate, endDate string) (*ports.SalesReport, error) {
	start, err := time.ParseInLocation(ReportDateFormat, startDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q is not in format %s", domain.ErrInvalidArgument, startDate, ReportDateFormat)
	}
	endDay, err := time.ParseInLocation(ReportDateFormat, endDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q is not in format %s", domain.ErrInvalidArgument, endDate, ReportDateFormat)
	}
	if start.After(endDay) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", domain.ErrInvalidArgument, startDate, endDate)
	}
	// Inclusive through 23:59:59 of the end calendar day.
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, time.Local)

	l.mu.Lock()
	defer l.mu.Unlock()

	quantityByItem := make(map[string]int)
	revenueByItem := make(map[string]decimal.Decimal)
	totalQuantity := 0
	totalRevenue := decimal.Zero

	for _, item := range l.catalog {
		for _, sale := range item.SalesHistory {
			if sale.SoldAt.Before(start) || sale.SoldAt.After(end) {
				continue
			}
			quantityByItem[sale.ItemName] += sale.Quantity
			revenueByItem[sale.ItemName] = revenueByItem[sale.ItemName].Add(sale.Total())
			totalQuantity += sale.Quantity
			totalRevenue = totalRevenue.Add(sale.Total())
		}
	}

	lines := make([]ports.ItemSales, 0, len(quantityByItem))
	for name, quantity := range quantityByItem {
		lines = append(lines, ports.ItemSales{
			ItemName: name,
			Quantity: quantity,
			Revenue:  revenueByItem[name],
		})
	}
	sort.Slice(lines, func(a, b int) bool {
		if lines[a].Quantity != lines[b].Quantity {
			return lines[a].Quantity > lines[b].Quantity
		}
		return lines[a].ItemName < lines[b].ItemName
	})
	if len(lines) > l.opts.ReportTopItems {
		lines = lines[:l.opts.ReportTopItems]
	}

	l.logger.InfoContext(ctx, "generated sales report",
		slog.String("start", startDate),
		slog.String("end", endDate),
		slog.Int("total_quantity", totalQuantity),
		slog.String("total_revenue", totalRevenue.StringFixed(2)))

	return &ports.SalesReport{
		StartDate:     start,
		EndDate:       end,
		TopItems:      lines,
		TotalQuantity: totalQuantity,
		TotalRevenue:  totalRevenue,
	}, nil
}

// Items returns a full catalog snapshot ordered by name.
func (l *Ledger) Items(ctx context.Context) []domain.StockItem {
	items, _ := l.Query(ctx, ports.QueryParams{})
	return items
}
