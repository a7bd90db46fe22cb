package main

import (
	"context"
	"fmt"

	"tigerrentals-client/internal/service"
	"tigerrentals-client/internal/view"

	"github.com/spf13/cobra"
)

func newRentalsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rentals",
		Short: "Request, approve and track rentals",
	}
	cmd.AddCommand(
		newRentalsQuoteCmd(get),
		newRentalsRequestCmd(get),
		newRentalsListCmd(get),
		newTransitionCmd(get, "approve", "Approve a pending request for your item",
			func(a *app) func(context.Context, int64) error { return a.rentals.Approve },
			"Rental approved.", "Failed to approve rental"),
		newTransitionCmd(get, "pickup", "Confirm the item was picked up",
			func(a *app) func(context.Context, int64) error { return a.rentals.VerifyPickup },
			"Pickup verified.", "Failed to verify pickup"),
		newTransitionCmd(get, "return", "Confirm the item was returned",
			func(a *app) func(context.Context, int64) error { return a.rentals.VerifyReturn },
			"Return verified.", "Failed to verify return"),
	)
	return cmd
}

func newRentalsQuoteCmd(get func() *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "quote ITEM_ID",
		Short: "Show what renting an item would cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, e, err := parseRange(start, end)
			if err != nil {
				return err
			}
			d, err := a.items.Detail(cmd.Context(), id)
			if err != nil {
				return a.loadFailed("item", err)
			}
			view.Quote(a.out, a.rentals.Quote(d.Item, s, e))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&end, "end", "", "end date (yyyy-mm-dd)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newRentalsRequestCmd(get func() *app) *cobra.Command {
	var start, end, message string
	cmd := &cobra.Command{
		Use:   "request ITEM_ID",
		Short: "Ask the owner to rent an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, e, err := parseRange(start, end)
			if err != nil {
				return err
			}
			d, err := a.items.Detail(cmd.Context(), id)
			if err != nil {
				return a.loadFailed("item", err)
			}

			res, err := a.rentals.Request(cmd.Context(), d.Item, s, e, message)
			if err != nil {
				return a.alert(err, "Failed to create rental request")
			}
			view.Quote(a.out, res.Quote)
			fmt.Fprintf(a.out, "\nRequest %d sent. You won't be charged until the owner approves.\n", res.Created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&end, "end", "", "end date (yyyy-mm-dd)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "note to the owner")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newRentalsListCmd(get func() *app) *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your rentals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			mine, err := a.rentals.Mine(cmd.Context())
			if err != nil {
				return a.loadFailed("rentals", err)
			}
			if role != string(service.RoleLending) {
				fmt.Fprintln(a.out, "RENTING")
				view.Rentals(a.out, mine.AsRenter, service.RoleRenting)
			}
			if role == "" {
				fmt.Fprintln(a.out)
			}
			if role != string(service.RoleRenting) {
				fmt.Fprintln(a.out, "LENDING")
				view.Rentals(a.out, mine.AsOwner, service.RoleLending)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "renting or lending (default both)")
	return cmd
}

func newTransitionCmd(get func() *app, use, short string, action func(*app) func(context.Context, int64) error, done, fallback string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " RENTAL_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := action(a)(cmd.Context(), id); err != nil {
				return a.alert(err, fallback)
			}
			fmt.Fprintln(a.out, done)
			return nil
		},
	}
}
