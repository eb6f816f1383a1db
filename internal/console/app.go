// internal/console/app.go
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/adapters/export"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/domain"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/core/ports"
	"github.com/obreramit/2425-2nd-cc3-1b-project-OFFA/internal/pkg/config"
)

// errInputClosed signals that the input stream ended and the app should exit.
var errInputClosed = errors.New("input closed")

// App is the console front-end. It owns no catalog state; every operation
// goes through the ledger port and renders its return values.
type App struct {
	in        *bufio.Scanner
	out       io.Writer
	ledger    ports.Ledger
	directory ports.Directory
	csv       *export.CSVExporter
	xlsx      *export.XLSXExporter
	cfg       *config.Config
	logger    *slog.Logger

	user     domain.User
	handlers map[Command]func(context.Context) error
}

// NewApp wires the console against the ledger and directory ports.
func NewApp(in io.Reader, out io.Writer, ledger ports.Ledger, directory ports.Directory,
	csv *export.CSVExporter, xlsx *export.XLSXExporter, cfg *config.Config, logger *slog.Logger) *App {
	a := &App{
		in:        bufio.NewScanner(in),
		out:       out,
		ledger:    ledger,
		directory: directory,
		csv:       csv,
		xlsx:      xlsx,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "console")),
	}
	a.handlers = map[Command]func(context.Context) error{
		CommandViewStock:        a.handleViewStock,
		CommandSearchStock:      a.handleSearchStock,
		CommandRecordSale:       a.handleRecordSale,
		CommandBestSellers:      a.handleBestSellers,
		CommandAddItem:          a.handleAddItem,
		CommandRemoveItem:       a.handleRemoveItem,
		CommandRestock:          a.handleRestock,
		CommandSetQuantity:      a.handleSetQuantity,
		CommandEditPrice:        a.handleEditPrice,
		CommandEditMinimumStock: a.handleEditMinimumStock,
		CommandEditCategory:     a.handleEditCategory,
		CommandSalesReport:      a.handleSalesReport,
		CommandExportCSV:        a.handleExportCSV,
		CommandExportXLSX:       a.handleExportXLSX,
	}
	return a
}

// Run drives the login/menu loop until the input stream closes.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== Stock Management System ===")

	for {
		user, err := a.login(ctx)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(a.out, "Invalid login. Try again.")
			continue
		}
		a.user = user
		fmt.Fprintf(a.out, "Login successful! Role: %s\n", user.Role)

		if err := a.menuLoop(ctx); errors.Is(err, errInputClosed) {
			return nil
		}
		fmt.Fprintln(a.out, "Logging out...")
	}
}

func (a *App) login(ctx context.Context) (domain.User, error) {
	username, err := a.prompt("Username: ")
	if err != nil {
		return domain.User{}, err
	}
	password, err := a.prompt("Password: ")
	if err != nil {
		return domain.User{}, err
	}
	return a.directory.Authenticate(ctx, strings.TrimSpace(username), password)
}

// menuLoop runs until logout or end of input.
func (a *App) menuLoop(ctx context.Context) error {
	for {
		commands := MenuFor(a.user.Role)

		fmt.Fprintln(a.out, "\nAvailable Options:")
		for i, cmd := range commands {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, cmd.Label())
		}

		choice, err := a.promptInt("Choose an option: ")
		if errors.Is(err, errInputClosed) {
			return err
		}
		if err != nil || choice < 1 || choice > len(commands) {
			fmt.Fprintln(a.out, "Invalid choice! Try again.")
			continue
		}

		cmd := commands[choice-1]
		if cmd == CommandLogout {
			return nil
		}
		if !Allowed(a.user.Role, cmd) {
			fmt.Fprintln(a.out, "You are not allowed to do that.")
			continue
		}

		if err := a.handlers[cmd](ctx); err != nil {
			if errors.Is(err, errInputClosed) {
				return err
			}
			fmt.Fprintln(a.out, userMessage(err))
		}
	}
}

// Command handlers

func (a *App) handleViewStock(ctx context.Context) error {
	items, err := a.ledger.Query(ctx, ports.QueryParams{})
	if err != nil {
		return err
	}
	renderStockTable(a.out, items)
	return nil
}

func (a *App) handleSearchStock(ctx context.Context) error {
	search, err := a.prompt("Search text (blank for all): ")
	if err != nil {
		return err
	}
	category, err := a.promptCategory(true)
	if err != nil {
		return err
	}
	items, err := a.ledger.Query(ctx, ports.QueryParams{Search: search, Category: category})
	if err != nil {
		return err
	}
	renderStockTable(a.out, items)
	return nil
}

func (a *App) handleRecordSale(ctx context.Context) error {
	items, err := a.ledger.Query(ctx, ports.QueryParams{})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items available for sale.")
		return nil
	}

	fmt.Fprintln(a.out, "Available items:")
	for i, item := range items {
		fmt.Fprintf(a.out, "%d. %s - Quantity: %d, Price: $%s\n",
			i+1, item.Name, item.Quantity, item.Price.StringFixed(2))
	}

	choice, err := a.promptInt("Enter the item number to record sale: ")
	if err != nil {
		return err
	}
	if choice < 1 || choice > len(items) {
		fmt.Fprintln(a.out, "Invalid choice.")
		return nil
	}
	item := items[choice-1]

	amount, err := a.promptInt("Enter quantity sold: ")
	if err != nil {
		return err
	}

	record, err := a.ledger.Sell(ctx, item.Name, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Successfully sold %d units of %s for $%s\n",
		record.Quantity, record.ItemName, record.Total().StringFixed(2))
	return nil
}

func (a *App) handleBestSellers(ctx context.Context) error {
	items, err := a.ledger.BestSellers(ctx, a.cfg.Ledger.BestSellersLimit)
	if err != nil {
		return err
	}
	renderBestSellers(a.out, items)
	return nil
}

func (a *App) handleAddItem(ctx context.Context) error {
	name, err := a.prompt("Enter item name: ")
	if err != nil {
		return err
	}
	quantity, err := a.promptInt("Enter quantity: ")
	if err != nil {
		return err
	}
	price, err := a.promptDecimal("Enter price: ")
	if err != nil {
		return err
	}
	minimumStock, err := a.promptInt("Enter minimum stock: ")
	if err != nil {
		return err
	}
	category, err := a.promptCategory(false)
	if err != nil {
		return err
	}

	item, err := a.ledger.AddItem(ctx, ports.AddItemParams{
		Name:         name,
		Quantity:     quantity,
		Price:        price,
		MinimumStock: minimumStock,
		Category:     domain.ItemCategory(category),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item %s added.\n", item.Name)
	return nil
}

func (a *App) handleRemoveItem(ctx context.Context) error {
	name, err := a.prompt("Enter item name to remove: ")
	if err != nil {
		return err
	}
	if err := a.ledger.RemoveItem(ctx, name); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Item removed.")
	return nil
}

func (a *App) handleRestock(ctx context.Context) error {
	name, err := a.prompt("Enter item name to restock: ")
	if err != nil {
		return err
	}
	amount, err := a.promptInt("Enter amount to add: ")
	if err != nil {
		return err
	}
	if err := a.ledger.AddStock(ctx, name, amount); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Stock added.")
	return nil
}

func (a *App) handleSetQuantity(ctx context.Context) error {
	name, err := a.prompt("Enter item name to edit: ")
	if err != nil {
		return err
	}
	quantity, err := a.promptInt("Enter new quantity: ")
	if err != nil {
		return err
	}
	if err := a.ledger.SetQuantity(ctx, name, quantity); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Stock updated.")
	return nil
}

func (a *App) handleEditPrice(ctx context.Context) error {
	name, err := a.prompt("Enter item name to edit: ")
	if err != nil {
		return err
	}
	price, err := a.promptDecimal("Enter new price: ")
	if err != nil {
		return err
	}
	if err := a.ledger.SetPrice(ctx, name, price); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Price updated.")
	return nil
}

func (a *App) handleEditMinimumStock(ctx context.Context) error {
	name, err := a.prompt("Enter item name to edit: ")
	if err != nil {
		return err
	}
	value, err := a.promptInt("Enter new minimum stock: ")
	if err != nil {
		return err
	}
	if err := a.ledger.SetMinimumStock(ctx, name, value); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Minimum stock updated.")
	return nil
}

func (a *App) handleEditCategory(ctx context.Context) error {
	name, err := a.prompt("Enter item name to edit: ")
	if err != nil {
		return err
	}
	category, err := a.promptCategory(false)
	if err != nil {
		return err
	}
	if err := a.ledger.SetCategory(ctx, name, domain.ItemCategory(category)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Category updated.")
	return nil
}

func (a *App) handleSalesReport(ctx context.Context) error {
	defaultStart, defaultEnd := defaultReportWindow(time.Now())

	start, err := a.prompt(fmt.Sprintf("Start date yyyy-MM-dd (blank for %s): ", defaultStart))
	if err != nil {
		return err
	}
	if start == "" {
		start = defaultStart
	}
	end, err := a.prompt(fmt.Sprintf("End date yyyy-MM-dd (blank for %s): ", defaultEnd))
	if err != nil {
		return err
	}
	if end == "" {
		end = defaultEnd
	}

	report, err := a.ledger.SalesReport(ctx, start, end)
	if err != nil {
		return err
	}
	renderSalesReport(a.out, report)
	return nil
}

func (a *App) handleExportCSV(ctx context.Context) error {
	path := a.cfg.CSVPath()
	if err := a.csv.WriteFile(path, a.ledger.Items(ctx)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Stock data exported to %s\n", path)
	return nil
}

func (a *App) handleExportXLSX(ctx context.Context) error {
	path := a.cfg.XLSXPath()
	if err := a.xlsx.WriteFile(path, a.ledger.Items(ctx)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Stock data exported to %s\n", path)
	return nil
}

// Input helpers

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func (a *App) promptInt(label string) (int, error) {
	text, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidArgument, text)
	}
	return value, nil
}

func (a *App) promptDecimal(label string) (decimal.Decimal, error) {
	text, err := a.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidArgument, text)
	}
	return value, nil
}

// promptCategory shows the fixed category set, optionally with the "All"
// filter entry, and accepts a number or blank for the first option.
func (a *App) promptCategory(includeAll bool) (string, error) {
	var options []string
	if includeAll {
		options = append(options, domain.CategoryFilterAll)
	}
	for _, category := range domain.Categories() {
		options = append(options, string(category))
	}

	fmt.Fprintf(a.out, "Categories: ")
	for i, option := range options {
		if i > 0 {
			fmt.Fprint(a.out, ", ")
		}
		fmt.Fprintf(a.out, "%d=%s", i+1, option)
	}
	fmt.Fprintln(a.out)

	text, err := a.prompt("Choose category: ")
	if err != nil {
		return "", err
	}
	if text == "" {
		return options[0], nil
	}
	choice, err := strconv.Atoi(text)
	if err != nil || choice < 1 || choice > len(options) {
		return "", fmt.Errorf("%w: %q is not a listed category", domain.ErrInvalidArgument, text)
	}
	return options[choice-1], nil
}

// defaultReportWindow is tomorrow back through the preceding 30 days, so a
// blank entry always covers today's sales.
func defaultReportWindow(now time.Time) (start, end string) {
	tomorrow := now.AddDate(0, 0, 1)
	return tomorrow.AddDate(0, 0, -30).Format("2006-01-02"), tomorrow.Format("2006-01-02")
}

// userMessage translates ledger errors into the messages shown on screen.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Not enough stock available."
	case errors.Is(err, domain.ErrNotFound):
		return "Item not found."
	case errors.Is(err, domain.ErrDuplicateItem):
		return "An item with this name already exists."
	case errors.Is(err, domain.ErrInvalidArgument):
		return fmt.Sprintf("Invalid input: %v", err)
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}
