package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nieomylnieja/jsonview/pkg/jsonview"
)

// Handler serves projections of the catalog over HTTP.
type Handler struct {
	store    *Store
	logger   *zap.Logger
	defaults View
}

// NewHandler creates a [Handler]; defaults are applied to every view before query parameters.
func NewHandler(store *Store, logger *zap.Logger, defaults View) *Handler {
	return &Handler{store: store, logger: logger, defaults: defaults}
}

// Routes returns the service router:
//
//	GET  /products
//	GET  /products/{id}
//	GET  /orders
//	GET  /orders/{id}
//	POST /orders
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, h.logger, http.StatusNotFound, errors.Errorf("no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, h.logger, http.StatusMethodNotAllowed,
			errors.Errorf("method %s is not allowed for %s", r.Method, r.URL.Path))
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/{id}", h.getProduct)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.placeOrder)
		r.Get("/{id}", h.getOrder)
	})
	return r
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.store.Products())
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	product, err := h.store.Product(id)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, r, http.StatusOK, product)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.store.Orders())
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	order, err := h.store.Order(id)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render(w, r, http.StatusOK, order)
}

// placeOrderParams are the members of the POST /orders body, bound to [Store.PlaceOrder].
var placeOrderParams = []string{"customer", "items", "notes"}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	params, err := jsonview.ParametersOf(h.store.PlaceOrder, placeOrderParams...)
	if err != nil {
		h.fail(w, err)
		return
	}
	values, err := jsonview.Deserialize(r.Body, params...)
	if err != nil {
		h.fail(w, err)
		return
	}
	customer, _ := values[0].(*Customer)
	items, _ := values[1].([]OrderItem)
	notes, _ := values[2].(map[string]string)

	order, err := h.store.PlaceOrder(customer, items, notes)
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Location", "/orders/"+strconv.FormatInt(order.ID, 10))
	h.render(w, r, http.StatusCreated, order)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, value any) {
	view, err := ParseView(r.URL.Query(), h.defaults)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	respond(w, h.logger, status, view.Serialization(value))
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, errors.Errorf("invalid id: %q", raw))
		return 0, false
	}
	return id, true
}

// fail maps domain errors to response statuses.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	var (
		deserializationErr *jsonview.DeserializationError
		invalidOrderErr    *InvalidOrderError
	)
	switch {
	case errors.As(err, &deserializationErr), errors.As(err, &invalidOrderErr):
		respondError(w, h.logger, http.StatusBadRequest, err)
	case errors.Is(err, ErrNotFound):
		respondError(w, h.logger, http.StatusNotFound, err)
	default:
		respondError(w, h.logger, http.StatusInternalServerError, err)
	}
}
