// internal/adapters/export/xlsx.go
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
)

// XLSXExporter writes catalog snapshots as an Excel workbook with the same
// columns as the CSV export.
type XLSXExporter struct {
	logger *slog.Logger
}

// NewXLSXExporter creates an Excel exporter.
func NewXLSXExporter(logger *slog.Logger) *XLSXExporter {
	return &XLSXExporter{
		logger: logger.With(slog.String("exporter", "xlsx")),
	}
}

// Write renders the snapshot as a single "Stock" worksheet.
func (e *XLSXExporter) Write(w io.Writer, items []domain.StockItem) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Stock")
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{"Name", "Quantity", "Price", "Category", "Last Updated", "Total Sold", "Total Sales"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, item := range items {
		row := sheet.AddRow()
		for _, value := range []string{
			item.Name,
			strconv.Itoa(item.Quantity),
			item.Price.StringFixed(2),
			string(item.Category),
			item.LastUpdated.Format(TimestampFormat),
			strconv.Itoa(item.TotalSold()),
			item.TotalRevenue().StringFixed(2),
		} {
			row.AddCell().Value = value
		}
	}

	for i := range headers {
		sheet.SetColWidth(i, i, 15)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteFile renders the snapshot to a workbook file at path.
func (e *XLSXExporter) WriteFile(path string, items []domain.StockItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := e.Write(f, items); err != nil {
		return err
	}

	e.logger.Info("exported stock workbook",
		slog.String("path", path),
		slog.Int("items", len(items)))
	return nil
}
