package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/tui"
)

// parseOrderLine parses an --item value of the form "<itemID>:<quantity>".
// A bare "<itemID>" means quantity 1.
func parseOrderLine(raw string) (service.SubmitOrderItem, error) {
	idPart, qtyPart, hasQty := strings.Cut(raw, ":")

	id, err := strconv.Atoi(strings.TrimSpace(idPart))
	if err != nil {
		return service.SubmitOrderItem{}, fmt.Errorf("invalid item %q: expected <itemID> or <itemID>:<quantity>", raw)
	}

	quantity := 1
	if hasQty {
		quantity, err = strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil || quantity <= 0 {
			return service.SubmitOrderItem{}, fmt.Errorf("invalid quantity in %q", raw)
		}
	}

	return service.SubmitOrderItem{MenuItemID: id, Quantity: quantity}, nil
}

func newOrderCmd(app *App) *cobra.Command {
	var (
		items      []string
		screenshot string
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order",
		Long: `Place an order. With no flags an interactive picker opens; with
--item flags the order is submitted directly, e.g.

  canteen order --item 1:2 --item 7 --screenshot upi-842317.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Sessions.Current()
			if err != nil {
				return fmt.Errorf("log in before ordering: %w", err)
			}

			if len(items) == 0 {
				model := tui.NewOrderModel(app.Client, current.Name)
				program := tea.NewProgram(model)
				final, err := program.Run()
				if err != nil {
					return err
				}
				if result, ok := final.(tui.OrderModel); ok && result.PlacedOrder() != nil {
					fmt.Fprint(cmd.OutOrStdout(), renderOrder(result.PlacedOrder()))
				}
				return nil
			}

			req := service.SubmitOrderRequest{
				StudentName:       current.Name,
				PaymentScreenshot: screenshot,
			}
			for _, raw := range items {
				line, err := parseOrderLine(raw)
				if err != nil {
					return err
				}
				req.Items = append(req.Items, line)
			}

			order, err := app.Client.SubmitOrder(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderOrder(order))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "item to order as <itemID>:<quantity>, repeatable")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "payment screenshot reference")

	return cmd
}

func newOrdersCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "orders [orderID]",
		Short: "List your orders or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				order, err := app.Client.Order(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, renderOrder(order))
				return nil
			}

			student := ""
			if !all {
				current, err := app.Sessions.Current()
				if err != nil {
					return fmt.Errorf("log in or pass --all: %w", err)
				}
				student = current.Name
			}

			orders, err := app.Client.Orders(ctx, student)
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(out, dimStyle.Render("No orders yet."))
				return nil
			}

			for _, order := range orders {
				payment := " "
				if order.PaymentVerified {
					payment = "✓"
				}
				fmt.Fprintf(out, "  %s  %-10s %s %s  %s\n",
					shortID(order.ID),
					renderStatus(order.Status),
					payment,
					priceStyle.Render(fmt.Sprintf("₹%7.2f", order.Total)),
					dimStyle.Render(order.OrderTime.Local().Format("2 Jan 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every order, not just yours")

	return cmd
}
