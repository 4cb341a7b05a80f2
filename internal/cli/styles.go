package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyles = map[models.OrderStatus]lipgloss.Style{
		models.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StatusPreparing: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.StatusReady:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// shortID abbreviates a UUID order ID for list output. IDs shorter
// than 8 characters pass through untouched.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func renderStatus(status models.OrderStatus) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(string(status))
	}
	return string(status)
}

func renderMenuItems(items []*models.MenuItem) string {
	if len(items) == 0 {
		return dimStyle.Render("No items found.")
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "  %3d  %-28s %s\n", item.ID, item.Name, priceStyle.Render(fmt.Sprintf("₹%.2f", item.Price)))
		if item.Description != "" {
			fmt.Fprintf(&b, "       %s\n", dimStyle.Render(item.Description))
		}
	}
	return b.String()
}

func renderOrder(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", headerStyle.Render("Order"), order.ID)
	fmt.Fprintf(&b, "  Student:  %s\n", order.StudentName)
	fmt.Fprintf(&b, "  Status:   %s\n", renderStatus(order.Status))
	fmt.Fprintf(&b, "  Placed:   %s\n", order.OrderTime.Local().Format("2 Jan 2006 15:04"))
	payment := "pending verification"
	if order.PaymentVerified {
		payment = "verified"
	}
	fmt.Fprintf(&b, "  Payment:  %s\n", payment)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "    %dx %-26s %s\n", item.Quantity, item.Name, priceStyle.Render(fmt.Sprintf("₹%.2f", item.Price*float64(item.Quantity))))
	}
	fmt.Fprintf(&b, "  Total:    %s\n", priceStyle.Render(fmt.Sprintf("₹%.2f", order.Total)))
	return b.String()
}
