// Package tui implements the interactive ordering flow. It follows The
// Elm Architecture as bubbletea programs do: one model, an Update that
// reacts to messages, and a View that renders the current state.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/cart"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/client"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

// orderState represents which screen the flow is on.
type orderState int

const (
	stateLoading    orderState = iota
	stateCategories            // pick a category
	stateItems                 // pick an item within the category
	stateQuantity              // type a quantity
	stateCart                  // review the cart
	stateScreenshot            // attach the payment reference
	stateDone                  // order placed
	stateFailed                // fatal error, flow aborted
)

const requestTimeout = 10 * time.Second

var (
	tuiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tuiDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	tuiOkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type categoriesLoadedMsg struct {
	categories []*models.Category
	err        error
}

type itemsLoadedMsg struct {
	items []*models.MenuItem
	err   error
}

type cartResolvedMsg struct {
	lines []cart.Line
	total float64
	err   error
}

type orderPlacedMsg struct {
	order *models.Order
	err   error
}

type categoryItem struct {
	category *models.Category
}

func (c categoryItem) Title() string       { return c.category.Icon + " " + c.category.Name }
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.category.Name }

type menuItem struct {
	item *models.MenuItem
}

func (m menuItem) Title() string {
	return fmt.Sprintf("%s  ₹%.2f", m.item.Name, m.item.Price)
}
func (m menuItem) Description() string { return m.item.Description }
func (m menuItem) FilterValue() string { return m.item.Name }

// OrderModel is the state of the ordering flow.
type OrderModel struct {
	state       orderState
	api         *client.Client
	studentName string

	categoryList list.Model
	itemList     list.Model
	quantity     textinput.Model
	screenshot   textinput.Model

	basket      *cart.Cart
	lines       []cart.Line
	total       float64
	pickedItem  *models.MenuItem
	placedOrder *models.Order

	notice string
	err    error
}

// NewOrderModel creates the flow for one student.
func NewOrderModel(api *client.Client, studentName string) OrderModel {
	categoryList := list.New(nil, list.NewDefaultDelegate(), 48, 14)
	categoryList.Title = "Pick a category"
	categoryList.SetShowStatusBar(false)
	categoryList.SetFilteringEnabled(false)

	itemList := list.New(nil, list.NewDefaultDelegate(), 48, 14)
	itemList.Title = "Pick an item"
	itemList.SetShowStatusBar(false)

	quantity := textinput.New()
	quantity.Placeholder = "1"
	quantity.CharLimit = 2
	quantity.Width = 4

	screenshot := textinput.New()
	screenshot.Placeholder = "upi-842317.png"
	screenshot.Width = 32

	return OrderModel{
		state:        stateLoading,
		api:          api,
		studentName:  studentName,
		categoryList: categoryList,
		itemList:     itemList,
		quantity:     quantity,
		screenshot:   screenshot,
		basket:       cart.New(),
	}
}

// PlacedOrder returns the submitted order, or nil if the flow was
// cancelled.
func (m OrderModel) PlacedOrder() *models.Order { return m.placedOrder }

func (m OrderModel) Init() tea.Cmd {
	return m.loadCategories()
}

func (m OrderModel) loadCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		categories, err := m.api.Categories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m OrderModel) loadItems(categoryID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := m.api.MenuItemsByCategory(ctx, categoryID)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m OrderModel) resolveCart() tea.Cmd {
	basket := m.basket
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		lines, err := basket.Lines(ctx, api)
		if err != nil {
			return cartResolvedMsg{err: err}
		}
		total, err := basket.Total(ctx, api)
		return cartResolvedMsg{lines: lines, total: total, err: err}
	}
}

func (m OrderModel) submitOrder(screenshotRef string) tea.Cmd {
	basket := m.basket
	api := m.api
	student := m.studentName
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		lines, err := basket.Lines(ctx, api)
		if err != nil {
			return orderPlacedMsg{err: err}
		}

		req := service.SubmitOrderRequest{
			StudentName:       student,
			PaymentScreenshot: screenshotRef,
		}
		for _, line := range lines {
			if line.Stale {
				continue
			}
			req.Items = append(req.Items, service.SubmitOrderItem{
				MenuItemID: line.ItemID,
				Quantity:   line.Quantity,
			})
		}

		order, err := api.SubmitOrder(ctx, req)
		return orderPlacedMsg{order: order, err: err}
	}
}

func (m OrderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateFailed
			return m, tea.Quit
		}
		items := make([]list.Item, 0, len(msg.categories))
		for _, category := range msg.categories {
			items = append(items, categoryItem{category: category})
		}
		m.categoryList.SetItems(items)
		m.state = stateCategories
		return m, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.state = stateCategories
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, item := range msg.items {
			items = append(items, menuItem{item: item})
		}
		m.itemList.SetItems(items)
		m.state = stateItems
		return m, nil

	case cartResolvedMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
		}
		m.lines = msg.lines
		m.total = msg.total
		m.state = stateCart
		return m, nil

	case orderPlacedMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.state = stateScreenshot
			return m, nil
		}
		m.placedOrder = msg.order
		m.basket.Clear()
		m.state = stateDone
		return m, tea.Quit

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m OrderModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateCategories:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "c":
			if m.basket.Len() > 0 {
				m.state = stateLoading
				return m, m.resolveCart()
			}
		case "enter":
			if selected, ok := m.categoryList.SelectedItem().(categoryItem); ok {
				m.state = stateLoading
				return m, m.loadItems(selected.category.ID)
			}
		}
		var cmd tea.Cmd
		m.categoryList, cmd = m.categoryList.Update(msg)
		return m, cmd

	case stateItems:
		switch msg.String() {
		case "esc":
			m.state = stateCategories
			return m, nil
		case "enter":
			if selected, ok := m.itemList.SelectedItem().(menuItem); ok {
				m.pickedItem = selected.item
				m.quantity.SetValue("")
				m.quantity.Focus()
				m.state = stateQuantity
				return m, textinput.Blink
			}
		}
		var cmd tea.Cmd
		m.itemList, cmd = m.itemList.Update(msg)
		return m, cmd

	case stateQuantity:
		switch msg.String() {
		case "esc":
			m.state = stateItems
			return m, nil
		case "enter":
			raw := strings.TrimSpace(m.quantity.Value())
			if raw == "" {
				raw = "1"
			}
			quantity, err := strconv.Atoi(raw)
			if err != nil || quantity <= 0 {
				m.notice = "quantity must be a positive number"
				return m, nil
			}
			m.basket.Add(m.pickedItem, quantity)
			m.notice = fmt.Sprintf("Added %dx %s", quantity, m.pickedItem.Name)
			m.state = stateCategories
			return m, nil
		}
		var cmd tea.Cmd
		m.quantity, cmd = m.quantity.Update(msg)
		return m, cmd

	case stateCart:
		switch msg.String() {
		case "esc", "a":
			m.state = stateCategories
			return m, nil
		case "x":
			m.basket.Clear()
			m.state = stateCategories
			m.notice = "Cart cleared"
			return m, nil
		case "enter", "s":
			if m.basket.Len() == 0 {
				m.notice = "cart is empty"
				return m, nil
			}
			m.screenshot.SetValue("")
			m.screenshot.Focus()
			m.state = stateScreenshot
			return m, textinput.Blink
		}
		return m, nil

	case stateScreenshot:
		switch msg.String() {
		case "esc":
			m.state = stateCart
			return m, nil
		case "enter":
			ref := strings.TrimSpace(m.screenshot.Value())
			if ref == "" {
				m.notice = "a payment screenshot reference is required"
				return m, nil
			}
			m.state = stateLoading
			return m, m.submitOrder(ref)
		}
		var cmd tea.Cmd
		m.screenshot, cmd = m.screenshot.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m OrderModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateLoading:
		b.WriteString(tuiDimStyle.Render("Loading..."))

	case stateCategories:
		b.WriteString(m.categoryList.View())
		b.WriteString("\n")
		b.WriteString(tuiDimStyle.Render("enter: open  c: cart  q: quit"))

	case stateItems:
		b.WriteString(m.itemList.View())
		b.WriteString("\n")
		b.WriteString(tuiDimStyle.Render("enter: add  esc: back"))

	case stateQuantity:
		b.WriteString(tuiTitleStyle.Render("How many "+m.pickedItem.Name+"?") + "\n\n")
		b.WriteString(m.quantity.View())
		b.WriteString("\n\n")
		b.WriteString(tuiDimStyle.Render("enter: confirm  esc: back"))

	case stateCart:
		b.WriteString(tuiTitleStyle.Render("Your cart") + "\n\n")
		for _, line := range m.lines {
			if line.Stale {
				b.WriteString(tuiErrStyle.Render(fmt.Sprintf("  %dx %s (no longer available)\n", line.Quantity, line.Name)))
				continue
			}
			b.WriteString(fmt.Sprintf("  %dx %-26s ₹%.2f\n", line.Quantity, line.Name, line.Subtotal))
		}
		b.WriteString(fmt.Sprintf("\n  Total: ₹%.2f\n\n", m.total))
		b.WriteString(tuiDimStyle.Render("s: submit  a: add more  x: clear  esc: back"))

	case stateScreenshot:
		b.WriteString(tuiTitleStyle.Render("Payment screenshot") + "\n\n")
		b.WriteString(tuiDimStyle.Render("Pay via UPI and enter the screenshot file name as proof.") + "\n\n")
		b.WriteString(m.screenshot.View())
		b.WriteString("\n\n")
		b.WriteString(tuiDimStyle.Render("enter: place order  esc: back"))

	case stateDone:
		b.WriteString(tuiOkStyle.Render("Order placed!") + "\n")

	case stateFailed:
		b.WriteString(tuiErrStyle.Render("Could not reach the canteen server."))
		if m.err != nil {
			b.WriteString("\n" + tuiDimStyle.Render(m.err.Error()))
		}
	}

	if m.notice != "" && m.state != stateDone && m.state != stateFailed {
		b.WriteString("\n\n" + tuiDimStyle.Render(m.notice))
	}

	return b.String() + "\n"
}
