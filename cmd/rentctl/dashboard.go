package main

import (
	"fmt"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/service"
	"tigerrentals-client/internal/view"

	"github.com/spf13/cobra"
)

func newDashboardCmd(get func() *app) *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Your rentals at a glance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			role := service.Role(tab)
			if role != service.RoleRenting && role != service.RoleLending {
				return fmt.Errorf("unknown tab %q, expected renting or lending", tab)
			}
			d, err := a.dashboard.Dashboard(cmd.Context())
			if err != nil {
				return a.loadFailed("dashboard", err)
			}
			view.Dashboard(a.out, d, role)
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(service.RoleRenting), "renting or lending")
	return cmd
}

func newEarningsCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "earnings",
		Short: "Lending income and projections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			e, err := a.dashboard.Earnings(cmd.Context())
			if err != nil {
				return a.loadFailed("earnings", err)
			}
			view.Earnings(a.out, e)
			return nil
		},
	}
}

func newReviewCmd(get func() *app) *cobra.Command {
	var (
		review  domain.NewReview
		comment string
	)
	cmd := &cobra.Command{
		Use:   "review RENTAL_ID",
		Short: "Rate the other party of a rental",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			review.RentalID = id
			if comment != "" {
				review.Comment = &comment
			}
			if err := a.reviews.Submit(cmd.Context(), review); err != nil {
				return a.alert(err, "Failed to submit review")
			}
			fmt.Fprintln(a.out, "Thanks for your review.")
			return nil
		},
	}
	cmd.Flags().Int64Var(&review.RevieweeID, "reviewee", 0, "user id of the person reviewed")
	cmd.Flags().IntVar(&review.Rating, "rating", 0, "1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "optional comment")
	_ = cmd.MarkFlagRequired("reviewee")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}
