package httpapi

import (
	"net/http"
	"strconv"

	"menulink/identity"
	"menulink/order-svc/internal/domain"
	"menulink/order-svc/internal/service"

	"github.com/gorilla/mux"
)

// owned resolves {username} and checks the session user owns it. Routes are
// wrapped in RequireSession, so a session is always present here.
func (h *Handler) owned(w http.ResponseWriter, r *http.Request) (*domain.Restaurant, bool) {
	session, _ := identity.FromContext(r.Context())
	rest, err := h.Orders.Owned(r.Context(), mux.Vars(r)["username"], session.User.ID)
	if err != nil {
		fail(w, err, service.MsgRestaurantNotFound, service.MsgLoadFailed)
		return nil, false
	}
	return rest, true
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	orders, err := h.Orders.List(r.Context(), rest)
	if err != nil {
		fail(w, err, service.MsgNotFound, service.MsgOrdersLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	var update domain.StatusUpdate
	if !decode(w, r, &update) {
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), rest, id, update)
	if err != nil {
		fail(w, err, service.MsgNotFound, service.MsgOrderUpdateFailed)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	stats, err := h.Orders.Stats(r.Context(), rest)
	if err != nil {
		fail(w, err, service.MsgNotFound, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
