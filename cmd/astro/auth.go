package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"astro-observer/internal/client/forms"
	"astro-observer/internal/client/guard"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := promptLine("Username: ")
			if err != nil {
				return err
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			form := forms.LoginForm{Username: username, Password: password}
			if err := form.Validate(); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			user, err := a.session.Login(ctx, form.Username, form.Password)
			if err != nil {
				return err
			}
			successText.Printf("Welcome back, %s!\n", user.Nickname)
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new observer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := promptLine("Username: ")
			if err != nil {
				return err
			}
			email, err := promptLine("Email: ")
			if err != nil {
				return err
			}
			nickname, err := promptLine("Nickname (optional): ")
			if err != nil {
				return err
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}

			form := forms.RegisterForm{
				Username:        username,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
				Nickname:        nickname,
			}
			// Invalid input never leaves the machine.
			if err := form.Validate(); err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			user, err := a.session.Register(ctx, form.Username, form.Email, form.Password, form.Nickname)
			if err != nil {
				return err
			}
			successText.Printf("Account created for %s. You can log in now.\n", user.Username)
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored access token",
		Run: func(cmd *cobra.Command, args []string) {
			a.session.Logout()
			infoText.Println("Logged out.")
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard.RequireAuth(a.session); err != nil {
				return err
			}
			user := a.session.User()
			printKeyValue("Username", user.Username)
			printKeyValue("Nickname", user.Nickname)
			printKeyValue("Email", user.Email)
			printKeyValue("Member since", user.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
