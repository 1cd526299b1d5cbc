package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/dashboard"
	"inventory-requisition-client/internal/models"
)

func (a *App) runDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "keep refreshing on the configured interval")
	if err := fs.Parse(args); err != nil {
		return err
	}

	poller := dashboard.NewPoller(a.services, a.cfg.Dashboard.RefreshInterval)
	snap, err := poller.Refresh(ctx)
	if err != nil {
		fmt.Println("Error loading dashboard data")
		return nil
	}
	printSnapshot(snap)

	if !*watch {
		return nil
	}
	go poller.Run(ctx)
	ticker := time.NewTicker(a.cfg.Dashboard.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if snap, ok := poller.Latest(); ok {
				printSnapshot(snap)
			}
		}
	}
}

func printSnapshot(snap dashboard.Snapshot) {
	fmt.Printf("Items: %d  Categories: %d  Low stock: %d  Transactions: %d  (as of %s)\n",
		snap.TotalItems, snap.TotalCategories, snap.LowStockCount, snap.TotalTransactions,
		snap.RefreshedAt.Format("15:04:05"))
	if len(snap.LowStockItems) > 0 {
		fmt.Println("Low stock items:")
		for _, item := range snap.LowStockItems {
			fmt.Printf("  %s (%s): %d %s, minimum %d\n", item.Name, item.SKU, item.Quantity, item.Unit, item.MinStockLevel)
		}
	}
}

func (a *App) runItems(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: items list|get|low-stock|create|update|delete ...")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("items list", flag.ContinueOnError)
		search := fs.String("search", "", "name or SKU search")
		category := fs.String("category", "", "category id")
		lowStock := fs.Bool("low-stock", false, "only low stock items")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		items, count, err := a.services.Items.List(ctx, api.ItemFilters{
			Search:   *search,
			Category: *category,
			LowStock: *lowStock,
		})
		if err != nil {
			fmt.Println("Error fetching items:", err)
			return nil
		}
		printItems(items, count)
		return nil

	case "low-stock":
		items, count, err := a.services.Items.LowStock(ctx)
		if err != nil {
			fmt.Println("Error fetching items:", err)
			return nil
		}
		printItems(items, count)
		return nil

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: items get <id>")
		}
		item, err := a.services.Items.Get(ctx, rest[0])
		if err != nil {
			fmt.Println("Error fetching item:", err)
			return nil
		}
		printItems([]models.Item{item}, 1)
		return nil

	case "create", "update":
		if !a.requireAdmin() {
			return nil
		}
		return a.runItemUpsert(ctx, sub, rest)

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: items delete <id>")
		}
		if !a.requireAdmin() {
			return nil
		}
		if !confirm(fmt.Sprintf("Delete item %s?", rest[0])) {
			return nil
		}
		if err := a.services.Items.Delete(ctx, rest[0]); err != nil {
			fmt.Println("Error deleting item:", err)
			return nil
		}
		fmt.Println("Item deleted.")
		return nil
	}
	return fmt.Errorf("unknown items subcommand %q", sub)
}

func (a *App) runItemUpsert(ctx context.Context, sub string, args []string) error {
	fs := flag.NewFlagSet("items "+sub, flag.ContinueOnError)
	id := fs.String("id", "", "item id (update only)")
	name := fs.String("name", "", "item name")
	sku := fs.String("sku", "", "stock keeping unit")
	category := fs.String("category", "", "category id")
	quantity := fs.Int("quantity", 0, "quantity on hand")
	unit := fs.String("unit", "pcs", "unit of measure")
	minStock := fs.Int("min-stock", 0, "minimum stock level")
	description := fs.String("description", "", "description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	payload := api.ItemPayload{
		Name:          *name,
		SKU:           *sku,
		Category:      *category,
		Quantity:      *quantity,
		Unit:          *unit,
		MinStockLevel: *minStock,
		Description:   *description,
	}

	var (
		item models.Item
		err  error
	)
	if sub == "update" {
		if *id == "" {
			return fmt.Errorf("items update requires --id")
		}
		item, err = a.services.Items.Update(ctx, *id, payload)
	} else {
		item, err = a.services.Items.Create(ctx, payload)
	}
	if err != nil {
		fmt.Println("Error saving item:", err)
		return nil
	}
	fmt.Printf("Saved item %s (%s)\n", item.Name, item.ID)
	return nil
}

func printItems(items []models.Item, count int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKU\tQTY\tUNIT\tMIN\tLOW")
	for _, item := range items {
		low := ""
		if item.LowStock() {
			low = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
			item.ID, item.Name, item.SKU, item.Quantity, item.Unit, item.MinStockLevel, low)
	}
	w.Flush()
	fmt.Printf("%d item(s)\n", count)
}

func (a *App) runCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		categories, count, err := a.services.Categories.List(ctx)
		if err != nil {
			fmt.Println("Error fetching categories:", err)
			return nil
		}
		for _, category := range categories {
			fmt.Printf("%s\t%s\t%s\n", category.ID, category.Name, category.Description)
		}
		fmt.Printf("%d categories\n", count)
		return nil

	case "create":
		if len(rest) < 1 {
			return fmt.Errorf("usage: categories create <name> [description]")
		}
		if !a.requireAdmin() {
			return nil
		}
		payload := api.CategoryPayload{Name: rest[0]}
		if len(rest) > 1 {
			payload.Description = rest[1]
		}
		category, err := a.services.Categories.Create(ctx, payload)
		if err != nil {
			fmt.Println("Error saving category:", err)
			return nil
		}
		fmt.Printf("Saved category %s (%s)\n", category.Name, category.ID)
		return nil

	case "update":
		if len(rest) < 2 {
			return fmt.Errorf("usage: categories update <id> <name> [description]")
		}
		if !a.requireAdmin() {
			return nil
		}
		payload := api.CategoryPayload{Name: rest[1]}
		if len(rest) > 2 {
			payload.Description = rest[2]
		}
		category, err := a.services.Categories.Update(ctx, rest[0], payload)
		if err != nil {
			fmt.Println("Error saving category:", err)
			return nil
		}
		fmt.Printf("Saved category %s (%s)\n", category.Name, category.ID)
		return nil

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: categories delete <id>")
		}
		if !a.requireAdmin() {
			return nil
		}
		if !confirm(fmt.Sprintf("Delete category %s?", rest[0])) {
			return nil
		}
		if err := a.services.Categories.Delete(ctx, rest[0]); err != nil {
			fmt.Println("Error deleting category:", err)
			return nil
		}
		fmt.Println("Category deleted.")
		return nil
	}
	return fmt.Errorf("unknown categories subcommand %q", sub)
}

func (a *App) runTransactions(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("transactions list", flag.ContinueOnError)
		txType := fs.String("type", "", "in or out")
		from := fs.String("from", "", "start date (YYYY-MM-DD)")
		to := fs.String("to", "", "end date (YYYY-MM-DD)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		transactions, count, err := a.services.Transactions.List(ctx, api.TransactionFilters{
			Type: *txType, From: *from, To: *to,
		})
		if err != nil {
			fmt.Println("Error fetching transactions:", err)
			return nil
		}
		printTransactions(transactions, count)
		return nil

	case "by-item":
		if len(rest) != 1 {
			return fmt.Errorf("usage: transactions by-item <item-id>")
		}
		transactions, count, err := a.services.Transactions.ByItem(ctx, rest[0])
		if err != nil {
			fmt.Println("Error fetching transactions:", err)
			return nil
		}
		printTransactions(transactions, count)
		return nil

	case "create":
		if len(rest) < 3 {
			return fmt.Errorf("usage: transactions create <item-id> <in|out> <quantity> [notes]")
		}
		quantity, err := strconv.Atoi(rest[2])
		if err != nil || quantity <= 0 {
			return fmt.Errorf("quantity must be a positive integer")
		}
		payload := api.TransactionPayload{Item: rest[0], Type: rest[1], Quantity: quantity}
		if len(rest) > 3 {
			payload.Notes = rest[3]
		}
		if _, err := a.services.Transactions.Create(ctx, payload); err != nil {
			fmt.Println("Error recording transaction:", err)
			return nil
		}
		fmt.Println("Transaction recorded.")
		return nil
	}
	return fmt.Errorf("unknown transactions subcommand %q", sub)
}

func printTransactions(transactions []models.Transaction, count int) {
	for _, tx := range transactions {
		fmt.Printf("%s\t%s\t%s x%d\t%s\n",
			tx.CreatedAt.Format("2006-01-02 15:04"), tx.Type, tx.Item.Name, tx.Quantity, tx.Notes)
	}
	fmt.Printf("%d transaction(s)\n", count)
}

func (a *App) runExport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: export inventory|low-stock|transactions|item-label|excel-inventory|excel-low-stock|excel-transactions|excel-full ...")
	}
	sub, rest := args[0], args[1:]

	fs := flag.NewFlagSet("export "+sub, flag.ContinueOnError)
	category := fs.String("category", "", "category filter")
	lowStockOnly := fs.Bool("low-stock-only", false, "restrict to low stock items")
	from := fs.String("from", "", "start date")
	to := fs.String("to", "", "end date")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	filters := api.ReportFilters{Category: *category, LowStockOnly: *lowStockOnly}

	var (
		blob []byte
		name string
		err  error
	)
	switch sub {
	case "inventory":
		blob, err = a.services.Reports.InventoryReport(ctx, filters)
		name = fmt.Sprintf("inventory-report-%d.pdf", timestamp())
	case "low-stock":
		blob, err = a.services.Reports.LowStockAlert(ctx)
		name = fmt.Sprintf("low-stock-alert-%d.pdf", timestamp())
	case "transactions":
		blob, err = a.services.Reports.TransactionReport(ctx, *from, *to)
		name = fmt.Sprintf("transaction-report-%d.pdf", timestamp())
	case "item-label":
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: export item-label <item-id>")
		}
		blob, err = a.services.Reports.ItemLabel(ctx, fs.Arg(0))
		name = fmt.Sprintf("item-label-%s-%d.pdf", fs.Arg(0), timestamp())
	case "excel-inventory":
		blob, err = a.services.Reports.ExcelInventoryReport(ctx, filters)
		name = fmt.Sprintf("inventory-report-%d.xlsx", timestamp())
	case "excel-low-stock":
		blob, err = a.services.Reports.ExcelLowStockAlert(ctx)
		name = fmt.Sprintf("low-stock-alert-%d.xlsx", timestamp())
	case "excel-transactions":
		blob, err = a.services.Reports.ExcelTransactionReport(ctx, *from, *to)
		name = fmt.Sprintf("transaction-report-%d.xlsx", timestamp())
	case "excel-full":
		blob, err = a.services.Reports.ExcelFullExport(ctx)
		name = fmt.Sprintf("full-export-%d.xlsx", timestamp())
	default:
		return fmt.Errorf("unknown export %q", sub)
	}
	if err != nil {
		fmt.Println("Error generating export:", err)
		return nil
	}
	return saveBlob(name, blob)
}
