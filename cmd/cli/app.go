package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"inventory-requisition-client/config"
	"inventory-requisition-client/internal/access"
	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/auth"
	"inventory-requisition-client/internal/cart"
	"inventory-requisition-client/internal/theme"
	"inventory-requisition-client/internal/workflow"
)

// App holds the wired components and dispatches commands. Each command
// plays the role of one page navigation: the access gate is consulted
// first with the command's role requirement, then the handler runs.
type App struct {
	cfg      config.Config
	services *api.Services
	session  *auth.Session
	cart     *cart.Cart
	flow     *workflow.Workflow
	theme    *theme.Preference
}

// anonymousCommands need no session at all (the public routes).
var anonymousCommands = map[string]bool{
	"login":               true,
	"admin-login":         true,
	"register":            true,
	"verify-email":        true,
	"resend-verification": true,
	"forgot-password":     true,
	"verify-reset-code":   true,
	"reset-password":      true,
	"theme":               true,
	"help":                true,
}

// adminCommands mirror the admin-only pages.
var adminCommands = map[string]bool{
	"approve":      true,
	"reject":       true,
	"approve-item": true,
	"reject-item":  true,
	"users":        true,
	"logs":         true,
	"export":       true,
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}
	command, rest := args[0], args[1:]

	if !anonymousCommands[command] {
		required := access.RoleNone
		if adminCommands[command] {
			required = access.RoleAdmin
		}
		state := access.State{
			Loading:       a.session.Loading(),
			Authenticated: a.session.IsAuthenticated(),
			Admin:         a.session.IsAdmin(),
		}
		switch access.Decide(state, required) {
		case access.RedirectLanding:
			fmt.Println("You are not logged in. Run: login <username> <password>")
			return nil
		case access.RedirectDashboard:
			// Never an error page; fall back to the authenticated default.
			fmt.Println("This command requires the admin role. Showing the dashboard instead.")
			return a.runDashboard(ctx, nil)
		case access.Wait:
			return fmt.Errorf("session not resolved yet")
		}
	}

	switch command {
	case "help":
		usage()
		return nil
	case "login":
		return a.runLogin(ctx, rest)
	case "admin-login":
		return a.runAdminLogin(ctx, rest)
	case "logout":
		a.session.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	case "register":
		return a.runRegister(ctx, rest)
	case "verify-email":
		return a.runVerifyEmail(ctx, rest)
	case "resend-verification":
		return a.runResendVerification(ctx, rest)
	case "forgot-password":
		return a.runForgotPassword(ctx, rest)
	case "verify-reset-code":
		return a.runVerifyResetCode(ctx, rest)
	case "reset-password":
		return a.runResetPassword(ctx, rest)
	case "whoami":
		return a.runWhoami()
	case "theme":
		return a.runTheme(ctx, rest)
	case "dashboard":
		return a.runDashboard(ctx, rest)
	case "items":
		return a.runItems(ctx, rest)
	case "categories":
		return a.runCategories(ctx, rest)
	case "transactions":
		return a.runTransactions(ctx, rest)
	case "cart":
		return a.runCart(ctx, rest)
	case "checkout":
		return a.runCheckout(ctx, rest)
	case "requests":
		return a.runRequests(ctx, rest)
	case "approve", "reject", "approve-item", "reject-item":
		return a.runApproval(ctx, command, rest)
	case "ris":
		return a.runRIS(ctx, rest)
	case "export":
		return a.runExport(ctx, rest)
	case "users":
		return a.runUsers(ctx, rest)
	case "logs":
		return a.runLogs(ctx, rest)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// requireAdmin gates the mutating inventory subcommands that share a
// top-level command with read-only ones, so a non-admin never reaches
// the backend with a doomed write.
func (a *App) requireAdmin() bool {
	state := access.State{
		Loading:       a.session.Loading(),
		Authenticated: a.session.IsAuthenticated(),
		Admin:         a.session.IsAdmin(),
	}
	if access.Decide(state, access.RoleAdmin) == access.Render {
		return true
	}
	fmt.Println("This action requires the admin role.")
	return false
}

func usage() {
	fmt.Println(`Inventory requisition client

Session:
  login <username> <password>        admin-login <password>
  logout                             whoami
  register <username> <name> <email> <password>
  verify-email <email> <code>        resend-verification <email>
  forgot-password <email>            verify-reset-code <email> <code>
  reset-password <email> <code> <new-password>

Browsing:
  dashboard [--watch]                items list|get|low-stock ...
  categories list ...                transactions list|by-item ...

Requisition:
  cart show|add|remove|update|clear  checkout --purpose ... (see checkout -h)
  requests list|get|delete           ris <id> | batch <id>... | custom | preview

Admin:
  items create|update|delete         categories create|update|delete
  approve <id>                       reject <id> <reason>
  approve-item <id> <item-id>        reject-item <id> <item-id> <reason>
  users list|update|delete           logs
  export <report> [flags]

Other:
  theme [toggle]`)
}

// saveBlob writes a generated document next to the working directory,
// the CLI's stand-in for a browser download.
func saveBlob(name string, blob []byte) error {
	if err := os.WriteFile(name, blob, 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	fmt.Printf("Saved %s (%d bytes)\n", name, len(blob))
	return nil
}

func timestamp() int64 {
	return time.Now().UnixMilli()
}
