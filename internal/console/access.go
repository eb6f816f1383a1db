// internal/console/access.go
package console

import "github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"

// managerOnly gates catalog mutation, reporting and export to managers.
// The ledger itself never checks roles; this table is the single place the
// presentation layer consults before invoking any ledger operation.
var managerOnly = map[Command]bool{
	CommandAddItem:          true,
	CommandRemoveItem:       true,
	CommandRestock:          true,
	CommandSetQuantity:      true,
	CommandEditPrice:        true,
	CommandEditMinimumStock: true,
	CommandEditCategory:     true,
	CommandSalesReport:      true,
	CommandExportCSV:        true,
	CommandExportXLSX:       true,
}

// Allowed reports whether the role may run the command.
func Allowed(role domain.Role, cmd Command) bool {
	if role == domain.RoleManager {
		return true
	}
	return !managerOnly[cmd]
}

// MenuFor returns the commands visible to the role, in display order.
func MenuFor(role domain.Role) []Command {
	var commands []Command
	for _, cmd := range menuOrder {
		if Allowed(role, cmd) {
			commands = append(commands, cmd)
		}
	}
	return commands
}
