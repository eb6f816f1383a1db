// internal/core/services/ledger_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/services"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/test/helpers"
)

func TestLedger_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		params        ports.AddItemParams
		expectedError error
	}{
		{
			name:   "valid_item",
			params: helpers.CreateTestItemParams(),
		},
		{
			name: "trims_whitespace_from_name",
			params: helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
				p.Name = "  Monitor  "
			}),
		},
		{
			name: "empty_name",
			params: helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
				p.Name = "   "
			}),
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "negative_quantity",
			params: helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
				p.Quantity = -1
			}),
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "negative_price",
			params: helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
				p.Price = decimal.NewFromFloat(-0.01)
			}),
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "negative_minimum_stock",
			params: helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
				p.MinimumStock = -5
			}),
			expectedError: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := helpers.NewTestLedger(t)

			item, err := ledger.AddItem(context.Background(), tt.params)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, item.Sold)
			assert.Empty(t, item.SalesHistory)
			assert.False(t, item.LastUpdated.IsZero())
		})
	}
}

func TestLedger_AddItem_DuplicateNeverMutatesExisting(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()

	original, err := ledger.AddItem(ctx, helpers.CreateTestItemParams())
	require.NoError(t, err)

	_, err = ledger.AddItem(ctx, helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
		p.Quantity = 999
		p.Price = decimal.NewFromFloat(1.00)
	}))
	require.ErrorIs(t, err, domain.ErrDuplicateItem)

	items := ledger.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, original.Quantity, items[0].Quantity)
	assert.True(t, original.Price.Equal(items[0].Price))
}

func TestLedger_RemoveItem(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()

	err := ledger.RemoveItem(ctx, "Ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)

	helpers.SeedCatalog(t, ledger, helpers.SampleCatalog()...)
	before := ledger.Items(ctx)

	// Add then remove restores the catalog to its prior state.
	_, err = ledger.AddItem(ctx, helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
		p.Name = "Tablet"
	}))
	require.NoError(t, err)
	require.NoError(t, ledger.RemoveItem(ctx, "Tablet"))

	after := ledger.Items(ctx)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Name, after[i].Name)
		assert.Equal(t, before[i].Quantity, after[i].Quantity)
	}
}

func TestLedger_Sell(t *testing.T) {
	tests := []struct {
		name          string
		amount        int
		expectedError error
	}{
		{name: "valid_sale", amount: 4},
		{name: "exact_remaining_stock", amount: 10},
		{name: "zero_amount", amount: 0, expectedError: domain.ErrInvalidArgument},
		{name: "negative_amount", amount: -3, expectedError: domain.ErrInvalidArgument},
		{name: "exceeds_stock", amount: 11, expectedError: domain.ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := helpers.NewTestLedger(t)
			ctx := context.Background()
			helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

			before := ledger.Items(ctx)[0]

			record, err := ledger.Sell(ctx, "Laptop", tt.amount)
			after := ledger.Items(ctx)[0]

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				// Rejected sales leave the item untouched.
				assert.Equal(t, before.Quantity, after.Quantity)
				assert.Equal(t, before.Sold, after.Sold)
				assert.Len(t, after.SalesHistory, len(before.SalesHistory))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, before.Quantity-tt.amount, after.Quantity)
			assert.Equal(t, before.Sold+tt.amount, after.Sold)
			require.Len(t, after.SalesHistory, len(before.SalesHistory)+1)

			assert.Equal(t, "Laptop", record.ItemName)
			assert.Equal(t, tt.amount, record.Quantity)
			assert.True(t, record.UnitPrice.Equal(before.Price))
			expectedTotal := before.Price.Mul(decimal.NewFromInt(int64(tt.amount)))
			assert.True(t, record.Total().Equal(expectedTotal),
				"expected total %s, got %s", expectedTotal, record.Total())
		})
	}
}

func TestLedger_Sell_UnknownItem(t *testing.T) {
	ledger := helpers.NewTestLedger(t)

	_, err := ledger.Sell(context.Background(), "Ghost", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_Sell_RecordsPriceAtTimeOfSale(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	first, err := ledger.Sell(ctx, "Laptop", 1)
	require.NoError(t, err)

	require.NoError(t, ledger.SetPrice(ctx, "Laptop", decimal.NewFromFloat(1299.99)))

	second, err := ledger.Sell(ctx, "Laptop", 1)
	require.NoError(t, err)

	assert.True(t, first.UnitPrice.Equal(decimal.NewFromFloat(999.99)))
	assert.True(t, second.UnitPrice.Equal(decimal.NewFromFloat(1299.99)))
}

func TestLedger_SetQuantity(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	require.ErrorIs(t, ledger.SetQuantity(ctx, "Laptop", -1), domain.ErrInvalidArgument)
	require.ErrorIs(t, ledger.SetQuantity(ctx, "Ghost", 5), domain.ErrNotFound)

	require.NoError(t, ledger.SetQuantity(ctx, "Laptop", 0))
	item := ledger.Items(ctx)[0]
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, 0, item.Sold)
	assert.Empty(t, item.SalesHistory)
}

func TestLedger_AddStock(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	require.ErrorIs(t, ledger.AddStock(ctx, "Laptop", 0), domain.ErrInvalidArgument)
	require.ErrorIs(t, ledger.AddStock(ctx, "Ghost", 5), domain.ErrNotFound)

	require.NoError(t, ledger.AddStock(ctx, "Laptop", 7))
	assert.Equal(t, 17, ledger.Items(ctx)[0].Quantity)
}

func TestLedger_LastUpdatedTracksAttributeEditsOnly(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	created := ledger.Items(ctx)[0].LastUpdated

	// Stock-level changes leave LastUpdated alone.
	_, err := ledger.Sell(ctx, "Laptop", 2)
	require.NoError(t, err)
	require.NoError(t, ledger.AddStock(ctx, "Laptop", 2))
	assert.True(t, ledger.Items(ctx)[0].LastUpdated.Equal(created))

	// Attribute edits bump it.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ledger.SetPrice(ctx, "Laptop", decimal.NewFromFloat(899.99)))
	afterPrice := ledger.Items(ctx)[0].LastUpdated
	assert.True(t, afterPrice.After(created))

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ledger.SetMinimumStock(ctx, "Laptop", 4))
	afterMin := ledger.Items(ctx)[0].LastUpdated
	assert.True(t, afterMin.After(afterPrice))

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ledger.SetCategory(ctx, "Laptop", domain.CategoryOther))
	afterCat := ledger.Items(ctx)[0].LastUpdated
	assert.True(t, afterCat.After(afterMin))

	// The administrative quantity override bumps it too.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ledger.SetQuantity(ctx, "Laptop", 30))
	assert.True(t, ledger.Items(ctx)[0].LastUpdated.After(afterCat))
}

func TestLedger_EditValidation(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	require.ErrorIs(t, ledger.SetPrice(ctx, "Laptop", decimal.NewFromFloat(-1)), domain.ErrInvalidArgument)
	require.ErrorIs(t, ledger.SetMinimumStock(ctx, "Laptop", -1), domain.ErrInvalidArgument)
	require.ErrorIs(t, ledger.SetCategory(ctx, "Laptop", ""), domain.ErrInvalidArgument)
	require.ErrorIs(t, ledger.SetPrice(ctx, "Ghost", decimal.NewFromInt(1)), domain.ErrNotFound)
	require.ErrorIs(t, ledger.SetMinimumStock(ctx, "Ghost", 1), domain.ErrNotFound)
	require.ErrorIs(t, ledger.SetCategory(ctx, "Ghost", domain.CategoryFood), domain.ErrNotFound)
}

func TestLedger_Query(t *testing.T) {
	tests := []struct {
		name     string
		params   ports.QueryParams
		expected []string
	}{
		{
			name:     "no_filter_returns_all_sorted_by_name",
			params:   ports.QueryParams{},
			expected: []string{"Coffee", "Laptop", "Smartphone", "T-Shirt"},
		},
		{
			name:     "case_insensitive_substring",
			params:   ports.QueryParams{Search: "LAP"},
			expected: []string{"Laptop"},
		},
		{
			name:     "category_all_matches_everything",
			params:   ports.QueryParams{Category: "All"},
			expected: []string{"Coffee", "Laptop", "Smartphone", "T-Shirt"},
		},
		{
			name:     "category_exact_match",
			params:   ports.QueryParams{Category: "Electronics"},
			expected: []string{"Laptop", "Smartphone"},
		},
		{
			name:     "search_and_category_combined",
			params:   ports.QueryParams{Search: "phone", Category: "Electronics"},
			expected: []string{"Smartphone"},
		},
		{
			name:     "no_match",
			params:   ports.QueryParams{Search: "camera"},
			expected: nil,
		},
	}

	ledger := helpers.NewTestLedger(t)
	helpers.SeedCatalog(t, ledger, helpers.SampleCatalog()...)
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ledger.Query(ctx, tt.params)
			require.NoError(t, err)

			var names []string
			for _, item := range items {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.expected, names)

			// Order must be stable across repeated calls.
			again, err := ledger.Query(ctx, tt.params)
			require.NoError(t, err)
			var namesAgain []string
			for _, item := range again {
				namesAgain = append(namesAgain, item.Name)
			}
			assert.Equal(t, names, namesAgain)
		})
	}
}

func TestLedger_Query_SubstringDoesNotMatchAcrossNames(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	helpers.SeedCatalog(t, ledger,
		helpers.CreateTestItemParams(),
		helpers.CreateTestItemParams(func(p *ports.AddItemParams) { p.Name = "Desktop" }),
	)

	items, err := ledger.Query(context.Background(), ports.QueryParams{Search: "lap", Category: "All"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].Name)
}

func TestLedger_QueryReturnsSnapshots(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	items, err := ledger.Query(ctx, ports.QueryParams{})
	require.NoError(t, err)
	items[0].Quantity = 0
	items[0].SalesHistory = append(items[0].SalesHistory, domain.SaleRecord{})

	fresh := ledger.Items(ctx)[0]
	assert.Equal(t, 10, fresh.Quantity)
	assert.Empty(t, fresh.SalesHistory)
}

func TestLedger_BestSellers(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()

	for name, stock := range map[string]int{"Apple": 20, "Banana": 20, "Cherry": 20, "Damson": 20} {
		helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
			p.Name = name
			p.Quantity = stock
			p.Category = domain.CategoryFood
		}))
	}

	// Sold counts: Apple 5, Banana 5, Cherry 3, Damson 0.
	_, err := ledger.Sell(ctx, "Apple", 5)
	require.NoError(t, err)
	_, err = ledger.Sell(ctx, "Banana", 5)
	require.NoError(t, err)
	_, err = ledger.Sell(ctx, "Cherry", 3)
	require.NoError(t, err)

	top, err := ledger.BestSellers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "Apple", top[0].Name)
	assert.Equal(t, "Banana", top[1].Name)
	assert.Equal(t, "Cherry", top[2].Name)

	// Zero-sold items are eligible and rank last.
	all, err := ledger.BestSellers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Damson", all[3].Name)

	// limit <= 0 falls back to the configured default of 3.
	fallback, err := ledger.BestSellers(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, fallback, 3)
}

func TestLedger_SalesReport(t *testing.T) {
	ledger := services.NewLedger(services.LedgerOptions{ReportTopItems: 2}, helpers.TestLogger())
	ctx := context.Background()

	for _, name := range []string{"Apple", "Banana", "Cherry"} {
		helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams(func(p *ports.AddItemParams) {
			p.Name = name
			p.Quantity = 50
			p.Price = decimal.NewFromInt(2)
			p.Category = domain.CategoryFood
		}))
	}

	// Units sold inside the window: Apple 10, Banana 7, Cherry 2.
	_, err := ledger.Sell(ctx, "Apple", 10)
	require.NoError(t, err)
	_, err = ledger.Sell(ctx, "Banana", 7)
	require.NoError(t, err)
	_, err = ledger.Sell(ctx, "Cherry", 2)
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")

	report, err := ledger.SalesReport(ctx, today, today)
	require.NoError(t, err)

	// Breakdown is truncated to the display limit, quantity descending.
	require.Len(t, report.TopItems, 2)
	assert.Equal(t, "Apple", report.TopItems[0].ItemName)
	assert.Equal(t, 10, report.TopItems[0].Quantity)
	assert.True(t, report.TopItems[0].Revenue.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Banana", report.TopItems[1].ItemName)

	// Grand totals cover every matching record, not just the top N.
	assert.Equal(t, 19, report.TotalQuantity)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(38)),
		"expected revenue 38, got %s", report.TotalRevenue)
}

func TestLedger_SalesReport_WindowExcludesOutOfRangeSales(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()
	helpers.SeedCatalog(t, ledger, helpers.CreateTestItemParams())

	_, err := ledger.Sell(ctx, "Laptop", 1)
	require.NoError(t, err)

	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	report, err := ledger.SalesReport(ctx, lastWeek, yesterday)
	require.NoError(t, err)
	assert.Empty(t, report.TopItems)
	assert.Equal(t, 0, report.TotalQuantity)
	assert.True(t, report.TotalRevenue.IsZero())
}

func TestLedger_SalesReport_InvalidInput(t *testing.T) {
	ledger := helpers.NewTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "unparseable_start", start: "01-02-2026", end: "2026-02-01"},
		{name: "unparseable_end", start: "2026-02-01", end: "tomorrow"},
		{name: "start_after_end", start: "2026-02-02", end: "2026-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.SalesReport(ctx, tt.start, tt.end)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func BenchmarkLedger_Sell(b *testing.B) {
	ledger := services.NewLedger(services.LedgerOptions{}, helpers.TestLogger())
	ctx := context.Background()
	_, err := ledger.AddItem(ctx, ports.AddItemParams{
		Name:     "Laptop",
		Quantity: b.N + 1,
		Price:    decimal.NewFromFloat(999.99),
		Category: domain.CategoryElectronics,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ledger.Sell(ctx, "Laptop", 1); err != nil {
			b.Fatal(err)
		}
	}
}
