package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	domdish "example.com/grubhouse/internal/domain/dish"
)

// Price stays raw so an absent, null, or wrong-typed value all surface as
// a "price" validation failure instead of a decode error.
type dishPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"required"`
	Price       json.RawMessage `json:"price"`
}

type dishRequest struct {
	Data dishPayload `json:"data"`
}

func (p dishPayload) toDomain(price int64) *domdish.Dish {
	return &domdish.Dish{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       price,
	}
}

// validateDishPayload accumulates every failing field name and, on
// success, returns the parsed price.
func (a *API) validateDishPayload(p dishPayload) (int64, error) {
	var problems []string
	if err := a.validator.Struct(p); err != nil {
		fields, ok := problemFields(err)
		if !ok {
			return 0, err
		}
		problems = fields
	}

	price, ok := parseSafeInt(p.Price)
	if !ok || price < 1 {
		problems = append(problems, "price")
	}

	if len(problems) > 0 {
		return 0, checkInputsError(problems)
	}
	return price, nil
}

func (a *API) handleListDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := a.dishSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(dishes))
	for _, d := range dishes {
		resp = append(resp, mapDish(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleCreateDish(w http.ResponseWriter, r *http.Request) {
	var req dishRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}
	price, err := a.validateDishPayload(req.Data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	created, err := a.dishSvc.Create(r.Context(), req.Data.toDomain(price))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": mapDish(created)})
}

func (a *API) handleGetDish(w http.ResponseWriter, r *http.Request) {
	d, err := a.dishSvc.GetByID(r.Context(), chi.URLParam(r, "dishId"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapDish(d)})
}

func (a *API) handleUpdateDish(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "dishId")

	var req dishRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidJSON)
		return
	}

	// Lookup runs before field validation so unknown ids fail 404 even
	// with an invalid payload.
	if _, err := a.dishSvc.GetByID(r.Context(), dishID); err != nil {
		handleDomainError(w, err)
		return
	}
	price, err := a.validateDishPayload(req.Data)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.dishSvc.Update(r.Context(), dishID, req.Data.toDomain(price))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": mapDish(updated)})
}
