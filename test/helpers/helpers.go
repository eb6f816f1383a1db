// test/helpers/test_helpers.go
package helpers

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/services"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// NewTestLedger creates an empty ledger with default report sizing.
func NewTestLedger(t *testing.T) *services.Ledger {
	t.Helper()
	return services.NewLedger(services.LedgerOptions{}, TestLogger())
}

// CreateTestItemParams builds add-item parameters with optional overrides.
func CreateTestItemParams(overrides ...func(*ports.AddItemParams)) ports.AddItemParams {
	params := ports.AddItemParams{
		Name:         "Laptop",
		Quantity:     10,
		Price:        decimal.NewFromFloat(999.99),
		MinimumStock: 2,
		Category:     domain.CategoryElectronics,
	}
	for _, override := range overrides {
		override(&params)
	}
	return params
}

// SeedCatalog adds every item to the ledger, failing the test on error.
func SeedCatalog(t *testing.T, ledger *services.Ledger, items ...ports.AddItemParams) {
	t.Helper()
	ctx := context.Background()
	for _, params := range items {
		_, err := ledger.AddItem(ctx, params)
		require.NoError(t, err, "failed to seed item %s", params.Name)
	}
}

// SampleCatalog returns the demo catalog used across tests.
func SampleCatalog() []ports.AddItemParams {
	return []ports.AddItemParams{
		CreateTestItemParams(),
		CreateTestItemParams(func(p *ports.AddItemParams) {
			p.Name = "Smartphone"
			p.Quantity = 15
			p.Price = decimal.NewFromFloat(699.99)
			p.MinimumStock = 3
		}),
		CreateTestItemParams(func(p *ports.AddItemParams) {
			p.Name = "T-Shirt"
			p.Quantity = 50
			p.Price = decimal.NewFromFloat(19.99)
			p.MinimumStock = 10
			p.Category = domain.CategoryClothing
		}),
		CreateTestItemParams(func(p *ports.AddItemParams) {
			p.Name = "Coffee"
			p.Quantity = 100
			p.Price = decimal.NewFromFloat(9.99)
			p.MinimumStock = 20
			p.Category = domain.CategoryFood
		}),
	}
}

// SeededUsers returns the fixed development credential list.
func SeededUsers() []domain.User {
	return []domain.User{
		{Username: "manager", Password: "manager123", Role: domain.RoleManager},
		{Username: "worker", Password: "worker123", Role: domain.RoleWorker},
	}
}
