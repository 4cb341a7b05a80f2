package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMenuCmd(app *App) *cobra.Command {
	var (
		categoryID int
		search     string
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if search != "" {
				items, err := app.Client.SearchMenuItems(ctx, search)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Results for %q", search)))
				fmt.Fprint(out, renderMenuItems(items))
				return nil
			}

			if categoryID > 0 {
				items, err := app.Client.MenuItemsByCategory(ctx, categoryID)
				if err != nil {
					return err
				}
				fmt.Fprint(out, renderMenuItems(items))
				return nil
			}

			categories, err := app.Client.Categories(ctx)
			if err != nil {
				return err
			}
			items, err := app.Client.MenuItems(ctx)
			if err != nil {
				return err
			}

			for _, category := range categories {
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s %s", category.Icon, category.Name)))
				var inCategory []int
				for i, item := range items {
					if item.CategoryID == category.ID {
						inCategory = append(inCategory, i)
					}
				}
				if len(inCategory) == 0 {
					fmt.Fprintln(out, dimStyle.Render("  Nothing available right now."))
					continue
				}
				for _, i := range inCategory {
					item := items[i]
					fmt.Fprintf(out, "  %3d  %-28s %s\n", item.ID, item.Name, priceStyle.Render(fmt.Sprintf("₹%.2f", item.Price)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&categoryID, "category", 0, "show only this category ID")
	cmd.Flags().StringVar(&search, "search", "", "search items by name or description")

	return cmd
}
