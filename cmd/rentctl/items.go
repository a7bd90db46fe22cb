package main

import (
	"fmt"
	"strings"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/view"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List item categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			cats, err := a.items.Categories(cmd.Context())
			if err != nil {
				return a.loadFailed("categories", err)
			}
			view.Categories(a.out, cats)
			return nil
		},
	}
}

func newItemsCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Browse and list items",
	}
	cmd.AddCommand(
		newItemsListCmd(get),
		newItemsShowCmd(get),
		newItemsCreateCmd(get),
		newItemsMineCmd(get),
		newItemsSuggestCmd(get),
	)
	return cmd
}

func newItemsListCmd(get func() *app) *cobra.Command {
	var filter domain.ItemFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the marketplace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if filter.Near {
				m := a.cfg.Marketplace
				filter.Latitude, filter.Longitude = m.Latitude, m.Longitude
				if filter.MaxDistance == 0 {
					filter.MaxDistance = m.MaxDistance
				}
			}
			items, err := a.items.Browse(cmd.Context(), filter)
			if err != nil {
				return a.loadFailed("items", err)
			}
			view.Marketplace(a.out, items)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&filter.Search, "search", "s", "", "search titles and descriptions")
	f.Int64Var(&filter.CategoryID, "category", 0, "category id")
	f.Float64Var(&filter.MinPrice, "min", 0, "minimum daily rate")
	f.Float64Var(&filter.MaxPrice, "max", 0, "maximum daily rate")
	f.BoolVar(&filter.Near, "near", false, "only items near the configured campus location")
	f.Float64Var(&filter.MaxDistance, "distance", 0, "maximum distance in miles (with --near)")
	return cmd
}

func newItemsShowCmd(get func() *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "show ITEM_ID",
		Short: "Show an item, with a cost quote when dates are given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := a.items.Detail(cmd.Context(), id)
			if err != nil {
				return a.loadFailed("item", err)
			}
			view.ItemDetail(a.out, d)

			if start != "" && end != "" {
				s, e, err := parseRange(start, end)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out)
				view.Quote(a.out, a.rentals.Quote(d.Item, s, e))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&end, "end", "", "end date (yyyy-mm-dd)")
	return cmd
}

func newItemsCreateCmd(get func() *app) *cobra.Command {
	var (
		item      domain.NewItem
		weekly    float64
		condition string
		category  string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "List an item for rent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			item.Condition = parseCondition(condition)

			// pre-fill prices from the category band when not given
			if category != "" {
				if s, ok := a.items.Suggest(category); ok {
					if item.DailyRate == 0 {
						item.DailyRate = s.DailyRate
					}
					if weekly == 0 {
						weekly = s.WeeklyRate
					}
					if !cmd.Flags().Changed("deposit") {
						item.Deposit = s.Deposit
					}
				}
			}
			if weekly > 0 {
				item.WeeklyRate = &weekly
			}

			created, err := a.items.Create(cmd.Context(), item)
			if err != nil {
				return a.alert(err, "Failed to create item")
			}
			fmt.Fprintf(a.out, "Listed item %d.\n", created.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&item.Title, "title", "", "title")
	f.StringVar(&item.Description, "description", "", "description")
	f.Float64Var(&item.DailyRate, "daily", 0, "daily rate")
	f.Float64Var(&weekly, "weekly", 0, "weekly rate (optional)")
	f.Float64Var(&item.Deposit, "deposit", 0, "security deposit")
	f.Int64SliceVar(&item.CategoryIDs, "category-id", nil, "category id (repeatable)")
	f.StringVar(&category, "suggest-from", "", "category name to pre-fill prices from")
	f.StringVar(&condition, "condition", string(domain.ConditionGood), "Excellent, Good or Fair")
	f.StringVar(&item.Location.Name, "location", "", "pickup location name")
	f.Float64Var(&item.Location.Latitude, "lat", 0, "pickup latitude")
	f.Float64Var(&item.Location.Longitude, "lon", 0, "pickup longitude")
	f.StringSliceVar(&item.Images, "image", nil, "image URL (repeatable)")
	return cmd
}

func newItemsMineCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			items, err := a.items.Mine(cmd.Context())
			if err != nil {
				return a.loadFailed("your items", err)
			}
			view.Marketplace(a.out, items)
			return nil
		},
	}
}

func newItemsSuggestCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest CATEGORY",
		Short: "Suggested pricing for a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			name := strings.Join(args, " ")
			s, ok := a.items.Suggest(name)
			if !ok {
				fmt.Fprintf(a.out, "No pricing suggestion for %q.\n", name)
				return nil
			}
			view.Suggestion(a.out, s)
			return nil
		},
	}
}
