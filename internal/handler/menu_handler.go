package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/apperrors"
	"github.com/SIDDHI-1105/canteen-connect-now-09/internal/service"
	"github.com/SIDDHI-1105/canteen-connect-now-09/pkg/logger"
)

// MenuHandler serves the catalog read/search endpoints and the admin
// availability toggle.
type MenuHandler struct {
	catalogService service.CatalogServiceInterface
	logger         *logger.Logger
}

func NewMenuHandler(catalogService service.CatalogServiceInterface, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		catalogService: catalogService,
		logger:         logger.WithComponent("menu_handler"),
	}
}

// GetCategories handles GET /menu/categories
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		h.logger.Error("Failed to list categories", "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, categories)
}

// GetMenuItems handles GET /menu/items
func (h *MenuHandler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListAvailableItems()
	if err != nil {
		h.logger.Error("Failed to list available items", "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, items)
}

// GetMenuItemsByCategory handles GET /menu/category/{categoryId}/items
func (h *MenuHandler) GetMenuItemsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("categoryId"))
	if err != nil {
		h.logger.Warn("Invalid category id", "value", r.PathValue("categoryId"))
		writeErrorResponse(w, h.logger, fmt.Errorf("category id must be an integer: %w", apperrors.ErrValidation))
		return
	}

	items, err := h.catalogService.ListAvailableItemsByCategory(categoryID)
	if err != nil {
		h.logger.Error("Failed to list items by category", "category_id", categoryID, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, items)
}

// SearchMenuItems handles GET /menu/search?query=
func (h *MenuHandler) SearchMenuItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	items, err := h.catalogService.SearchItems(query)
	if err != nil {
		h.logger.Error("Search failed", "query", query, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}
	writeJSONResponse(w, h.logger, http.StatusOK, items)
}

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetItemAvailability handles PATCH /menu/items/{id}/availability
func (h *MenuHandler) SetItemAvailability(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeErrorResponse(w, h.logger, fmt.Errorf("item id must be an integer: %w", apperrors.ErrValidation))
		return
	}

	var req setAvailabilityRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for availability", "error", err)
		writeErrorResponse(w, h.logger, fmt.Errorf("invalid request body: %w", apperrors.ErrValidation))
		return
	}

	item, err := h.catalogService.SetItemAvailability(actorRole(r), itemID, req.Available)
	if err != nil {
		h.logger.Warn("Failed to set availability", "item_id", itemID, "error", err)
		writeErrorResponse(w, h.logger, err)
		return
	}

	writeJSONResponse(w, h.logger, http.StatusOK, item)
}
