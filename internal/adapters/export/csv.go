// internal/adapters/export/csv.go
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
)

// TimestampFormat is how LastUpdated is rendered in exports.
const TimestampFormat = "2006-01-02 15:04:05"

// csvHeader is the fixed export header. Column order is part of the file
// contract consumed downstream.
const csvHeader = "Name,Quantity,Price,Category,Last Updated,Total Sold,Total Sales"

// CSVExporter writes catalog snapshots as CSV. Fields are not quoted or
// escaped, so item names containing commas will corrupt the row layout —
// a known limitation of the report format, kept as-is rather than fixed.
type CSVExporter struct {
	logger *slog.Logger
}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter(logger *slog.Logger) *CSVExporter {
	return &CSVExporter{
		logger: logger.With(slog.String("exporter", "csv")),
	}
}

// Write renders the snapshot to w, one row per item, money with two decimals.
func (e *CSVExporter) Write(w io.Writer, items []domain.StockItem) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, item := range items {
		_, err := fmt.Fprintf(w, "%s,%d,%s,%s,%s,%d,%s\n",
			item.Name,
			item.Quantity,
			item.Price.StringFixed(2),
			item.Category,
			item.LastUpdated.Format(TimestampFormat),
			item.TotalSold(),
			item.TotalRevenue().StringFixed(2),
		)
		if err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", item.Name, err)
		}
	}
	return nil
}

// WriteFile renders the snapshot to a file at path, truncating any previous
// export.
func (e *CSVExporter) WriteFile(path string, items []domain.StockItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := e.Write(f, items); err != nil {
		return err
	}

	e.logger.Info("exported stock data",
		slog.String("path", path),
		slog.Int("items", len(items)))
	return nil
}
