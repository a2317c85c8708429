package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"menulink/identity"
	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/domain"
	"menulink/order-svc/internal/service"

	"github.com/gorilla/mux"
)

const cartPath = "/api/carts/{cartId}"

type Handler struct {
	Carts  service.CartServiceInterface
	Orders service.OrderServiceInterface
}

func NewHandler(carts service.CartServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Carts: carts, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/carts", h.createCart).Methods("POST")
	r.HandleFunc(cartPath, h.getCart).Methods("GET")
	r.HandleFunc(cartPath+"/items", h.addItem).Methods("POST")
	r.HandleFunc(cartPath+"/items", h.removeItem).Methods("DELETE")
	r.HandleFunc(cartPath+"/branch", h.selectBranch).Methods("PUT")
	r.HandleFunc(cartPath+"/area", h.selectArea).Methods("PUT")
	r.HandleFunc(cartPath+"/customer", h.setCustomer).Methods("PUT")
	r.HandleFunc(cartPath+"/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/restaurants/{username}/orders", identity.RequireSession(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/restaurants/{username}/orders/stats", identity.RequireSession(h.orderStats)).Methods("GET")
	r.HandleFunc("/api/restaurants/{username}/orders/{id}/status", identity.RequireSession(h.updateOrderStatus)).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail maps service errors onto responses. notFound is the message used when
// the addressed resource does not exist.
func fail(w http.ResponseWriter, err error, notFound, generic string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, service.MsgForbidden)
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
	case errors.Is(err, service.ErrItemUnavailable):
		writeError(w, http.StatusConflict, service.MsgItemUnavailable)
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, service.MsgCartBusy)
	case isCartError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[order-svc] %v", err)
		writeError(w, http.StatusInternalServerError, generic)
	}
}

func isCartError(err error) bool {
	for _, target := range []error{
		cart.ErrEmptyCart, cart.ErrMissingName, cart.ErrMissingAddress, cart.ErrMissingPhone,
		cart.ErrBranchRequired, cart.ErrAreaRequired, cart.ErrSizeRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil && n >= 0
}
