// internal/console/commands.go
package console

// Command tags one menu operation. The menu is built from a fixed order and
// dispatched through a lookup table, keeping rendering decoupled from the
// ledger's operation set.
type Command int

const (
	CommandViewStock Command = iota
	CommandSearchStock
	CommandRecordSale
	CommandBestSellers
	CommandAddItem
	CommandRemoveItem
	CommandRestock
	CommandSetQuantity
	CommandEditPrice
	CommandEditMinimumStock
	CommandEditCategory
	CommandSalesReport
	CommandExportCSV
	CommandExportXLSX
	CommandLogout
)

var commandLabels = map[Command]string{
	CommandViewStock:        "View Stock",
	CommandSearchStock:      "Search / Filter Stock",
	CommandRecordSale:       "Record Sale",
	CommandBestSellers:      "Best Sellers Report",
	CommandAddItem:          "Add Item",
	CommandRemoveItem:       "Remove Item",
	CommandRestock:          "Restock Item",
	CommandSetQuantity:      "Set Quantity",
	CommandEditPrice:        "Edit Price",
	CommandEditMinimumStock: "Edit Minimum Stock",
	CommandEditCategory:     "Edit Category",
	CommandSalesReport:      "Sales Report",
	CommandExportCSV:        "Export Data (CSV)",
	CommandExportXLSX:       "Export Data (Excel)",
	CommandLogout:           "Logout",
}

// menuOrder fixes the display order before role filtering.
var menuOrder = []Command{
	CommandViewStock,
	CommandSearchStock,
	CommandRecordSale,
	CommandBestSellers,
	CommandAddItem,
	CommandRemoveItem,
	CommandRestock,
	CommandSetQuantity,
	CommandEditPrice,
	CommandEditMinimumStock,
	CommandEditCategory,
	CommandSalesReport,
	CommandExportCSV,
	CommandExportXLSX,
	CommandLogout,
}

// Label returns the menu text for the command.
func (c Command) Label() string {
	return commandLabels[c]
}
