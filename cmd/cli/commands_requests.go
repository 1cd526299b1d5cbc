package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/models"
	"inventory-requisition-client/internal/workflow"
)

func (a *App) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		lines := a.cart.Lines()
		if len(lines) == 0 {
			fmt.Println("Your cart is empty. Add items with: cart add <item-id> <quantity>")
			return nil
		}
		for _, line := range lines {
			fmt.Printf("%s\t%s\t%d %s\n", line.Item.ID, line.Item.Name, line.Quantity, line.Unit)
		}
		fmt.Printf("%d line(s), %d unit(s) total\n", len(lines), a.cart.Total())
		return nil

	case "add":
		if len(rest) != 2 {
			return fmt.Errorf("usage: cart add <item-id> <quantity>")
		}
		quantity, err := strconv.Atoi(rest[1])
		if err != nil || quantity <= 0 {
			return fmt.Errorf("quantity must be a positive integer")
		}
		// Snapshot the item now; stock is only re-validated by the
		// backend at submission time.
		item, err := a.services.Items.Get(ctx, rest[0])
		if err != nil {
			fmt.Println("Error fetching item:", err)
			return nil
		}
		if quantity > item.Quantity {
			fmt.Printf("Cannot exceed available stock (%d)\n", item.Quantity)
			return nil
		}
		a.cart.Add(ctx, item.Ref(), quantity, item.Unit)
		fmt.Printf("Added %d x %s. Cart total: %d\n", quantity, item.Name, a.cart.Total())
		return nil

	case "remove":
		if len(rest) != 1 {
			return fmt.Errorf("usage: cart remove <item-id>")
		}
		a.cart.Remove(ctx, rest[0])
		fmt.Println("Removed.")
		return nil

	case "update":
		if len(rest) != 2 {
			return fmt.Errorf("usage: cart update <item-id> <quantity>")
		}
		quantity, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("quantity must be an integer")
		}
		for _, line := range a.cart.Lines() {
			if line.Item.ID == rest[0] && quantity > line.Item.Quantity {
				fmt.Printf("Cannot exceed available stock (%d)\n", line.Item.Quantity)
				return nil
			}
		}
		a.cart.UpdateQuantity(ctx, rest[0], quantity)
		fmt.Printf("Cart total: %d\n", a.cart.Total())
		return nil

	case "clear":
		a.cart.Clear(ctx)
		fmt.Println("Cart cleared.")
		return nil
	}
	return fmt.Errorf("unknown cart subcommand %q", sub)
}

func (a *App) runCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	purpose := fs.String("purpose", "", "purpose of the requisition")
	notes := fs.String("notes", "", "optional notes")
	requestedBy := fs.String("requested-by", "", "requested by (name)")
	requestedByRole := fs.String("requested-by-designation", "", "requester designation/position")
	receivedBy := fs.String("received-by", "", "received by (name)")
	receivedByRole := fs.String("received-by-designation", "", "receiver designation/position")
	if err := fs.Parse(args); err != nil {
		return err
	}

	outcome := a.flow.Checkout(ctx, workflow.CheckoutForm{
		Purpose:                *purpose,
		Notes:                  *notes,
		RequestedByName:        *requestedBy,
		RequestedByDesignation: *requestedByRole,
		ReceivedByName:         *receivedBy,
		ReceivedByDesignation:  *receivedByRole,
	})
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Printf("Request %s submitted. See it with: requests get %s\n", outcome.RequestID, outcome.RequestID)
	return nil
}

func (a *App) runRequests(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("requests list", flag.ContinueOnError)
		status := fs.String("status", "", "pending, approved or rejected")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		requests, count, err := a.services.Requests.List(ctx, api.RequestFilters{Status: *status})
		if err != nil {
			fmt.Println("Error fetching requests:", err)
			return nil
		}
		for _, request := range requests {
			fmt.Printf("%s\t%s\t%s\t%d item(s)\n", request.ID, request.Status, request.Purpose, len(request.Items))
		}
		fmt.Printf("%d request(s)\n", count)
		return nil

	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("usage: requests get <id>")
		}
		request, err := a.services.Requests.Get(ctx, rest[0])
		if err != nil {
			fmt.Println("Error fetching request:", err)
			return nil
		}
		printRequest(request)
		return nil

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: requests delete <id>")
		}
		request, err := a.services.Requests.Get(ctx, rest[0])
		if err != nil {
			fmt.Println("Error fetching request:", err)
			return nil
		}
		if !confirm(fmt.Sprintf("Delete request %s?", request.ID)) {
			return nil
		}
		profile, _ := a.session.Current()
		outcome := a.flow.Cancel(ctx, request, profile.ID)
		fmt.Println(outcomeMessage(outcome, "Request deleted."))
		return nil
	}
	return fmt.Errorf("unknown requests subcommand %q", sub)
}

func (a *App) runApproval(ctx context.Context, command string, args []string) error {
	switch command {
	case "approve":
		if len(args) != 1 {
			return fmt.Errorf("usage: approve <request-id>")
		}
		outcome := a.flow.Approve(ctx, args[0])
		fmt.Println(outcomeMessage(outcome, "Request approved."))
		return nil

	case "reject":
		if len(args) < 2 {
			return fmt.Errorf("usage: reject <request-id> <reason>")
		}
		outcome := a.flow.Reject(ctx, args[0], strings.Join(args[1:], " "))
		fmt.Println(outcomeMessage(outcome, "Request rejected."))
		return nil

	case "approve-item":
		if len(args) != 2 {
			return fmt.Errorf("usage: approve-item <request-id> <item-id>")
		}
		updated, outcome := a.flow.ApproveItem(ctx, args[0], args[1])
		if !outcome.Success {
			fmt.Println(outcome.Message)
			return nil
		}
		printRequest(updated)
		return nil

	case "reject-item":
		if len(args) < 3 {
			return fmt.Errorf("usage: reject-item <request-id> <item-id> <reason>")
		}
		updated, outcome := a.flow.RejectItem(ctx, args[0], args[1], strings.Join(args[2:], " "))
		if !outcome.Success {
			fmt.Println(outcome.Message)
			return nil
		}
		printRequest(updated)
		return nil
	}
	return fmt.Errorf("unknown command %q", command)
}

func (a *App) runRIS(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ris <request-id> | ris batch <id> <id> [...] | ris custom [flags] | ris preview")
	}

	if args[0] == "preview" {
		blob, err := a.services.Reports.PreviewRISTemplate(ctx)
		if err != nil {
			fmt.Println("Error fetching RIS template:", err)
			return nil
		}
		return saveBlob(fmt.Sprintf("RIS-Template-%d.xlsx", timestamp()), blob)
	}

	if args[0] == "custom" {
		fs := flag.NewFlagSet("ris custom", flag.ContinueOnError)
		purpose := fs.String("purpose", "", "purpose of the slip")
		requestedBy := fs.String("requested-by", "", "requested by (name)")
		requestedByRole := fs.String("requested-by-designation", "", "requester designation/position")
		receivedBy := fs.String("received-by", "", "received by (name)")
		receivedByRole := fs.String("received-by-designation", "", "receiver designation/position")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		data := map[string]interface{}{}
		for key, value := range map[string]string{
			"purpose":                *purpose,
			"requestedByName":        *requestedBy,
			"requestedByDesignation": *requestedByRole,
			"receivedByName":         *receivedBy,
			"receivedByDesignation":  *receivedByRole,
		} {
			if value != "" {
				data[key] = value
			}
		}
		blob, err := a.services.Reports.GenerateCustomRIS(ctx, data)
		if err != nil {
			fmt.Println("Error generating RIS:", err)
			return nil
		}
		return saveBlob(fmt.Sprintf("RIS-Custom-%d.xlsx", timestamp()), blob)
	}

	if args[0] == "batch" {
		selection := &workflow.BatchSelection{}
		for _, id := range args[1:] {
			request, err := a.services.Requests.Get(ctx, id)
			if err != nil {
				fmt.Println("Error fetching request:", err)
				return nil
			}
			if !models.TerminalStatus(request.Status) {
				fmt.Printf("Request %s is still pending and cannot be included.\n", id)
				continue
			}
			selection.Toggle(request)
		}
		blob, outcome := a.flow.GenerateBatchRIS(ctx, selection)
		if !outcome.Success {
			fmt.Println(outcome.Message)
			return nil
		}
		return saveBlob(fmt.Sprintf("RIS-Batch-%d.xlsx", timestamp()), blob)
	}

	blob, err := a.services.Reports.GenerateRIS(ctx, args[0])
	if err != nil {
		fmt.Println("Error generating RIS:", err)
		return nil
	}
	return saveBlob(fmt.Sprintf("RIS-%s-%d.xlsx", args[0], timestamp()), blob)
}

func (a *App) runUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		users, count, err := a.services.Users.List(ctx)
		if err != nil {
			fmt.Println("Error fetching users:", err)
			return nil
		}
		for _, user := range users {
			fmt.Printf("%s\t%s\t%s\t%s\n", user.ID, user.Username, user.Email, user.Role)
		}
		fmt.Printf("%d user(s)\n", count)
		return nil

	case "update":
		fs := flag.NewFlagSet("users update", flag.ContinueOnError)
		id := fs.String("id", "", "user id")
		name := fs.String("name", "", "display name")
		role := fs.String("role", "", "user or admin")
		designation := fs.String("designation", "", "designation/position")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("users update requires --id")
		}
		user, err := a.services.Users.Update(ctx, *id, api.UserPayload{
			Name: *name, Role: *role, Designation: *designation,
		})
		if err != nil {
			fmt.Println("Error updating user:", err)
			return nil
		}
		fmt.Printf("Saved user %s (%s)\n", user.Username, user.Role)
		return nil

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: users delete <id>")
		}
		if !confirm(fmt.Sprintf("Delete user %s?", rest[0])) {
			return nil
		}
		if err := a.services.Users.Delete(ctx, rest[0]); err != nil {
			fmt.Println("Error deleting user:", err)
			return nil
		}
		fmt.Println("User deleted.")
		return nil
	}
	return fmt.Errorf("unknown users subcommand %q", sub)
}

func (a *App) runLogs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	user := fs.String("user", "", "filter by user")
	action := fs.String("action", "", "filter by action")
	from := fs.String("from", "", "start date")
	to := fs.String("to", "", "end date")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logs, count, err := a.services.Logs.List(ctx, api.LogFilters{
		User: *user, Action: *action, From: *from, To: *to,
	})
	if err != nil {
		fmt.Println("Error fetching activity logs:", err)
		return nil
	}
	for _, entry := range logs {
		fmt.Printf("%s\t%s\t%s\t%s\n",
			entry.CreatedAt.Format("2006-01-02 15:04"), entry.User, entry.Action, entry.Details)
	}
	fmt.Printf("%d entries\n", count)
	return nil
}

func printRequest(request models.Request) {
	fmt.Printf("Request %s: %s\n", request.ID, request.Status)
	fmt.Printf("Purpose: %s\n", request.Purpose)
	if request.RequestedByName != "" {
		fmt.Printf("Requested by: %s (%s)\n", request.RequestedByName, request.RequestedByDesignation)
	}
	if request.ReceivedByName != "" {
		fmt.Printf("Received by: %s (%s)\n", request.ReceivedByName, request.ReceivedByDesignation)
	}
	if request.RejectionReason != "" {
		fmt.Printf("Rejection reason: %s\n", request.RejectionReason)
	}
	for _, item := range request.Items {
		line := fmt.Sprintf("  %s x%d %s: %s", item.Item.Name, item.Quantity, item.Unit, item.Status)
		if item.RejectionReason != "" {
			line += " (" + item.RejectionReason + ")"
		}
		fmt.Println(line)
	}
}

func outcomeMessage(outcome workflow.Outcome, success string) string {
	if outcome.Success {
		return success
	}
	return outcome.Message
}

// confirm asks before a destructive action.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
