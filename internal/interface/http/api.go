package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domdish "example.com/grubhouse/internal/domain/dish"
	domorder "example.com/grubhouse/internal/domain/order"
	dishuc "example.com/grubhouse/internal/usecase/dish"
	orderuc "example.com/grubhouse/internal/usecase/order"
)

type API struct {
	dishSvc   *dishuc.Service
	orderSvc  *orderuc.Service
	validator *validator.Validate
	metrics   *metrics
}

type Dependencies struct {
	DishService      *dishuc.Service
	OrderService     *orderuc.Service
	MetricsNamespace string
}

func NewAPI(deps Dependencies) *API {
	ns := deps.MetricsNamespace
	if ns == "" {
		ns = "grubhouse"
	}
	return &API{
		dishSvc:   deps.DishService,
		orderSvc:  deps.OrderService,
		validator: newValidator(),
		metrics:   newMetrics(ns),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json"))
	r.Use(a.metrics.instrument)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/dishes", func(r chi.Router) {
		r.Get("/", a.handleListDishes)
		r.Post("/", a.handleCreateDish)
		r.Get("/{dishId}", a.handleGetDish)
		r.Put("/{dishId}", a.handleUpdateDish)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", a.handleListOrders)
		r.Post("/", a.handleCreateOrder)
		r.Get("/{orderId}", a.handleGetOrder)
		r.Put("/{orderId}", a.handleUpdateOrder)
		r.Delete("/{orderId}", a.handleDeleteOrder)
	})

	return r
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type messageResponse struct {
	Message string `json:"message"`
}

// errInvalidJSON masks decoder errors so response bodies never carry Go
// type internals.
var errInvalidJSON = errors.New("request body must be valid JSON")

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, messageResponse{Message: err.Error()})
}

func mapDish(d *domdish.Dish) map[string]any {
	return map[string]any{
		"id":          d.ID,
		"name":        d.Name,
		"description": d.Description,
		"image_url":   d.ImageURL,
		"price":       d.Price,
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Dishes))
	for _, item := range o.Dishes {
		items = append(items, map[string]any{
			"id":          item.ID,
			"name":        item.Name,
			"description": item.Description,
			"image_url":   item.ImageURL,
			"price":       item.Price,
			"quantity":    item.Quantity,
		})
	}

	return map[string]any{
		"id":           o.ID,
		"deliverTo":    o.DeliverTo,
		"mobileNumber": o.MobileNumber,
		"status":       o.Status,
		"dishes":       items,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	var (
		dishNotFound  *domdish.NotFoundError
		orderNotFound *domorder.NotFoundError
		dishMismatch  *domdish.IDMismatchError
		orderMismatch *domorder.IDMismatchError
		badQuantity   *domorder.QuantityError
	)

	switch {
	case errors.As(err, &dishNotFound),
		errors.As(err, &orderNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.As(err, &dishMismatch),
		errors.As(err, &orderMismatch),
		errors.As(err, &badQuantity),
		errors.Is(err, domorder.ErrInvalidStatus),
		errors.Is(err, domorder.ErrDeliveredLocked),
		errors.Is(err, domorder.ErrDeleteNotPending):
		respondError(w, http.StatusBadRequest, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
