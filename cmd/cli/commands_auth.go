package main

import (
	"context"
	"fmt"

	"inventory-requisition-client/internal/api"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <username> <password>")
	}
	outcome := a.session.Login(ctx, args[0], args[1])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	profile, _ := a.session.Current()
	fmt.Printf("Logged in as %s (%s)\n", profile.Username, profile.Role)
	return nil
}

func (a *App) runAdminLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: admin-login <password>")
	}
	outcome := a.session.AdminLogin(ctx, args[0])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Println("Admin session established.")
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: register <username> <name> <email> <password>")
	}
	outcome := a.session.Register(ctx, api.RegisterPayload{
		Username: args[0],
		Name:     args[1],
		Email:    args[2],
		Password: args[3],
	})
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Printf("Registered. A verification code was sent to %s.\n", outcome.Email)
	fmt.Println("Complete with: verify-email <email> <code>")
	return nil
}

func (a *App) runVerifyEmail(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: verify-email <email> <code>")
	}
	outcome := a.session.VerifyEmail(ctx, args[0], args[1])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	profile, _ := a.session.Current()
	fmt.Printf("Email verified. Logged in as %s.\n", profile.Username)
	return nil
}

func (a *App) runResendVerification(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: resend-verification <email>")
	}
	outcome := a.session.ResendVerification(ctx, args[0])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Println("Verification code resent.")
	return nil
}

func (a *App) runForgotPassword(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: forgot-password <email>")
	}
	outcome := a.session.ForgotPassword(ctx, args[0])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Println("Reset code sent.")
	return nil
}

func (a *App) runVerifyResetCode(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: verify-reset-code <email> <code>")
	}
	outcome := a.session.VerifyResetCode(ctx, args[0], args[1])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Println("Code accepted. Set a new password with: reset-password <email> <code> <new-password>")
	return nil
}

func (a *App) runResetPassword(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: reset-password <email> <code> <new-password>")
	}
	outcome := a.session.ResetPassword(ctx, args[0], args[1], args[2])
	if !outcome.Success {
		fmt.Println(outcome.Message)
		return nil
	}
	fmt.Println("Password reset. You can log in now.")
	return nil
}

func (a *App) runWhoami() error {
	profile, ok := a.session.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", profile.Name, profile.Email, profile.Role)
	return nil
}

func (a *App) runTheme(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "toggle" {
		fmt.Printf("Theme set to %s.\n", a.theme.Toggle(ctx))
		return nil
	}
	fmt.Printf("Theme: %s\n", a.theme.Mode())
	return nil
}
