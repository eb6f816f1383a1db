// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemCategory represents stock item categories
type ItemCategory string

// Category constants
const (
	CategoryElectronics ItemCategory = "Electronics"
	CategoryClothing    ItemCategory = "Clothing"
	CategoryFood        ItemCategory = "Food"
	CategoryOther       ItemCategory = "Other"
)

// CategoryFilterAll is the pseudo-category that matches every item when
// filtering the catalog.
const CategoryFilterAll = "All"

// Categories lists the selectable categories in presentation order.
func Categories() []ItemCategory {
	return []ItemCategory{CategoryElectronics, CategoryClothing, CategoryFood, CategoryOther}
}

// SaleRecord is one immutable sale fact. Total amount is computed, never
// stored as a separate source of truth.
type SaleRecord struct {
	SaleID    uuid.UUID       `json:"sale_id"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SoldAt    time.Time       `json:"sold_at"`
}

// NewSaleRecord creates a sale record stamped with the current time.
func NewSaleRecord(itemName string, quantity int, unitPrice decimal.Decimal) SaleRecord {
	return SaleRecord{
		SaleID:    uuid.New(),
		ItemName:  itemName,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		SoldAt:    time.Now(),
	}
}

// Total returns quantity × unit price at time of sale.
func (r SaleRecord) Total() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// StockItem represents a single row in the catalog. The name is the unique
// identifier and is immutable after creation. LastUpdated tracks edits to
// price, minimum stock and category only; stock-level changes (Sell, AddStock)
// deliberately do not bump it.
type StockItem struct {
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Sold         int             `json:"sold"`
	Price        decimal.Decimal `json:"price"`
	MinimumStock int             `json:"minimum_stock"`
	Category     ItemCategory    `json:"category"`
	LastUpdated  time.Time       `json:"last_updated"`
	SalesHistory []SaleRecord    `json:"sales_history"`
}

// NewStockItem builds a validated stock item with empty sales history.
func NewStockItem(name string, quantity int, price decimal.Decimal, minimumStock int, category ItemCategory) (*StockItem, error) {
	item := &StockItem{
		Name:         strings.TrimSpace(name),
		Quantity:     quantity,
		Price:        price,
		MinimumStock: minimumStock,
		Category:     category,
		LastUpdated:  time.Now(),
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate performs domain validation on the stock item
func (i *StockItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}
	if i.MinimumStock < 0 {
		return fmt.Errorf("%w: minimum stock cannot be negative", ErrInvalidArgument)
	}
	if i.Category == "" {
		i.Category = CategoryOther
	}
	return nil
}

// IsLowStock reports whether the on-hand quantity has reached the reorder
// threshold.
func (i *StockItem) IsLowStock() bool {
	return i.Quantity <= i.MinimumStock
}

// TotalSold sums the quantities across the sales history.
func (i *StockItem) TotalSold() int {
	total := 0
	for _, sale := range i.SalesHistory {
		total += sale.Quantity
	}
	return total
}

// TotalRevenue sums the sale totals across the sales history.
func (i *StockItem) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, sale := range i.SalesHistory {
		total = total.Add(sale.Total())
	}
	return total
}

// Clone returns a deep copy safe to hand outside the ledger.
func (i *StockItem) Clone() StockItem {
	out := *i
	out.SalesHistory = make([]SaleRecord, len(i.SalesHistory))
	copy(out.SalesHistory, i.SalesHistory)
	return out
}
