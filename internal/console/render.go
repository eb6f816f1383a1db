// internal/console/render.go
package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/adapters/export"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
)

func renderStockTable(w io.Writer, items []domain.StockItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Stock is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tQUANTITY\tPRICE\tCATEGORY\tLAST UPDATED\tSOLD\t")
	for _, item := range items {
		marker := ""
		if item.IsLowStock() {
			marker = "  [LOW]"
		}
		fmt.Fprintf(tw, "%s\t%d%s\t$%s\t%s\t%s\t%d\t\n",
			item.Name,
			item.Quantity, marker,
			item.Price.StringFixed(2),
			item.Category,
			item.LastUpdated.Format(export.TimestampFormat),
			item.Sold,
		)
	}
	tw.Flush()
}

func renderBestSellers(w io.Writer, items []domain.StockItem) {
	fmt.Fprintln(w, "\nBest Selling Items:")
	if len(items) == 0 {
		fmt.Fprintln(w, "No items in stock.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s - Sold: %d, Quantity: %d, Price: $%s\n",
			i+1, item.Name, item.Sold, item.Quantity, item.Price.StringFixed(2))
	}
}

func renderSalesReport(w io.Writer, report *ports.SalesReport) {
	fmt.Fprintf(w, "\nSales Report for Period: %s to %s\n\n",
		report.StartDate.Format("2006-01-02"),
		report.EndDate.Format("2006-01-02"))

	fmt.Fprintln(w, "Most Sold Items:")
	fmt.Fprintln(w, "----------------------------------------")
	if len(report.TopItems) == 0 {
		fmt.Fprintln(w, "No sales in this period.")
	}
	for _, line := range report.TopItems {
		fmt.Fprintf(w, "%s: %d units, Revenue: $%s\n",
			line.ItemName, line.Quantity, line.Revenue.StringFixed(2))
	}

	fmt.Fprintln(w, "\nTotal Sales Summary:")
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Total Items Sold: %d\n", report.TotalQuantity)
	fmt.Fprintf(w, "Total Revenue: $%s\n", report.TotalRevenue.StringFixed(2))
}
