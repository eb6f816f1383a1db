// cmd/console/seed.go
package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
)

// seedSampleData loads the demo catalog used in development runs.
func seedSampleData(ctx context.Context, ledger ports.Ledger) error {
	samples := []ports.AddItemParams{
		{Name: "Laptop", Quantity: 10, Price: decimal.NewFromFloat(999.99), MinimumStock: 2, Category: domain.CategoryElectronics},
		{Name: "Smartphone", Quantity: 15, Price: decimal.NewFromFloat(699.99), MinimumStock: 3, Category: domain.CategoryElectronics},
		{Name: "T-Shirt", Quantity: 50, Price: decimal.NewFromFloat(19.99), MinimumStock: 10, Category: domain.CategoryClothing},
		{Name: "Jeans", Quantity: 30, Price: decimal.NewFromFloat(49.99), MinimumStock: 5, Category: domain.CategoryClothing},
		{Name: "Coffee", Quantity: 100, Price: decimal.NewFromFloat(9.99), MinimumStock: 20, Category: domain.CategoryFood},
		{Name: "Bread", Quantity: 40, Price: decimal.NewFromFloat(3.99), MinimumStock: 15, Category: domain.CategoryFood},
	}

	for _, params := range samples {
		if _, err := ledger.AddItem(ctx, params); err != nil {
			return fmt.Errorf("failed to seed %s: %w", params.Name, err)
		}
	}
	return nil
}
