// internal/core/ports/ledger.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
)

// Ledger defines the application service port for the stock catalog and its
// sales history. Implementations own all StockItem instances exclusively;
// every method returns snapshots, never interior references. The ledger
// carries no identity parameter — role enforcement belongs to the caller.
type Ledger interface {
	AddItem(ctx context.Context, params AddItemParams) (domain.StockItem, error)
	RemoveItem(ctx context.Context, name string) error
	SetQuantity(ctx context.Context, name string, quantity int) error
	AddStock(ctx context.Context, name string, amount int) error
	Sell(ctx context.Context, name string, amount int) (domain.SaleRecord, error)
	SetPrice(ctx context.Context, name string, price decimal.Decimal) error
	SetMinimumStock(ctx context.Context, name string, value int) error
	SetCategory(ctx context.Context, name string, category domain.ItemCategory) error
	Query(ctx context.Context, params QueryParams) ([]domain.StockItem, error)
	BestSellers(ctx context.Context, limit int) ([]domain.StockItem, error)
	SalesReport(ctx context.Context, startDate, endDate string) (*SalesReport, error)
	Items(ctx context.Context) []domain.StockItem
}

// AddItemParams holds the fields for creating a catalog entry.
type AddItemParams struct {
	Name         string
	Quantity     int
	Price        decimal.Decimal
	MinimumStock int
	Category     domain.ItemCategory
}

// QueryParams holds catalog filter parameters. Search is a case-insensitive
// substring match against the item name; empty matches all. Category is
// "All" (or empty) for every category, otherwise an exact match.
type QueryParams struct {
	Search   string
	Category string
}

// ItemSales is one per-item line of a sales report.
type ItemSales struct {
	ItemName string          `json:"item_name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesReport aggregates every sale whose timestamp falls inside the period.
// TopItems is truncated to the configured display limit; the grand totals
// cover ALL matching records regardless of that truncation.
type SalesReport struct {
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	TopItems      []ItemSales     `json:"top_items"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}
