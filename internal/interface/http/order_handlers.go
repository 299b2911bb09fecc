package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	domorder "example.com/grubhouse/internal/domain/order"
)

// Quantity stays raw so a wrong-typed value fails the positional quantity
// check instead of aborting the decode.
type lineItemPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       int64           `json:"price"`
	Quantity    json.RawMessage `json:"quantity"`
}

// Dishes stays raw so an absent, null, or non-array value all surface as a
// "dish" validation failure instead of a decode error.
type orderPayload struct {
	ID           string          `json:"id"`
	DeliverTo    string          `json:"deliverTo" validate:"required"`
	MobileNumber string          `json:"mobileNumber" validate:"required"`
	Status       string          `json:"status"`
	Dishes       json.RawMessage `json:"dishes"`
}

type orderRequest struct {
	Data orderPayload `json:"data"`
}

// validateOrderPayload checks the top-level shape first, short-circuiting
// before any line-item inspection, then checks each quantity by position.
func (a *API) validateOrderPayload(p orderPayload) ([]domorder.LineItem, error) {
	var problems []string
	if err := a.validator.Struct(p); err != nil {
		fields, ok := problemFields(err)
		if !ok {
			return nil, err
		}
		problems = fields
	}

	var rawItems []json.RawMessage
	switch {
	case len(p.Dishes) == 0 || bytes.Equal(p.Dishes, []byte("null")):
		problems = append(problems, "dish")
	case json.Unmarshal(p.Dishes, &rawItems) != nil || len(rawItems) == 0:
		problems = append(problems, "dish")
	}

	if len(problems) > 0 {
		return nil, checkInputsError(problems)
	}

	// Items decode one at a time so an element-level type failure keeps
	// its position and fails as that item's quantity check.
	out := make([]domorder.LineItem, 0, len(rawItems))
	for i, raw := range rawItems {
		var it lineItemPayload
		if err := json.Unmarshal(raw, &it); err != nil {
			return nil, &domorder.QuantityError{Index: i}
		}
		quantity, ok := parseSafeInt(it.Quantity)
		if !ok || quantity < 1 {
			return nil, &domorder.QuantityError{Index: i}
		}
		out = append(out, domorder.LineItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			Price:       it.Price,
			Quantity:    quantity,
		})
	}
	return out, nil
}

func (p orderPayload) toDomain(items []domorder.LineItem) *domorder.Order {
	return &domorder.Order{
		ID:           p.ID,
		DeliverTo:    p.DeliverTo,
		MobileNumber: p.MobileNumber,
		Status:       domorder.Status(p.Status),
		Dishes:       items,
	}
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orderSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}

	items, err := a.validateOrderPayload(req.Data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.orderSvc.Create(r.Context(), req.Data.toDomain(items))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": mapOrder(created)})
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := a.orderSvc.GetByID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapOrder(o)})
}

func (a *API) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}

	// Lookup runs before field validation so unknown ids fail 404 even
	// with an invalid payload.
	if _, err := a.orderSvc.GetByID(r.Context(), orderID); err != nil {
		handleDomainError(w, err)
		return
	}
	items, err := a.validateOrderPayload(req.Data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.orderSvc.Update(r.Context(), orderID, req.Data.toDomain(items))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapOrder(updated)})
}

func (a *API) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := a.orderSvc.Delete(r.Context(), chi.URLParam(r, "orderId")); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
