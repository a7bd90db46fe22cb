package main

import (
	"errors"
	"fmt"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/session"

	"github.com/spf13/cobra"
)

func newLoginCmd(get func() *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your campus email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			var err error
			if email == "" {
				if email, err = a.prompt("Email: "); err != nil {
					return err
				}
			}
			password, err := a.readPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			sess, err := a.auth.Login(cmd.Context(), email, password)
			if err != nil {
				return a.alert(err, "Login failed")
			}
			u := sess.User()
			fmt.Fprintf(a.out, "Welcome back, %s!\n", u.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "campus email address")
	return cmd
}

func newRegisterCmd(get func() *app) *cobra.Command {
	var email, name, phone string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (.edu email required)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			var err error
			if email == "" {
				if email, err = a.prompt("Email (.edu): "); err != nil {
					return err
				}
			}
			if name == "" {
				if name, err = a.prompt("Full name: "); err != nil {
					return err
				}
			}
			password, err := a.readPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			reg := domain.Registration{Email: email, Password: password, FullName: name}
			if phone != "" {
				reg.Phone = &phone
			}
			sess, err := a.auth.Register(cmd.Context(), reg)
			if err != nil {
				return a.alert(err, "Registration failed")
			}
			u := sess.User()
			fmt.Fprintf(a.out, "Welcome to TigerRentals, %s!\n", u.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "campus email address")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (optional)")
	return cmd
}

func newLogoutCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			sess, err := a.auth.Current()
			if errors.Is(err, session.ErrNoSession) {
				fmt.Fprintln(a.out, "Not signed in.")
				return nil
			}
			if err != nil {
				return err
			}
			u := sess.User()
			fmt.Fprintf(a.out, "%s <%s>  rating %.1f (%d reviews)\n", u.FullName, u.Email, u.Rating, u.TotalRatings)
			if exp := sess.ExpiresAt(); !exp.IsZero() {
				fmt.Fprintf(a.out, "session expires %s\n", exp.Local().Format("Jan 2, 2006 3:04PM"))
			}
			return nil
		},
	}
}
