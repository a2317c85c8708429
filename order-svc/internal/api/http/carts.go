package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"menulink/order-svc/internal/cart"
	"menulink/order-svc/internal/service"

	"github.com/gorilla/mux"
)

func cartID(r *http.Request) string {
	return mux.Vars(r)["cartId"]
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Carts.Create(r.Context(), req.Username)
	if err != nil {
		fail(w, err, service.MsgRestaurantNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Get(r.Context(), cartID(r))
	if err != nil {
		fail(w, err, service.MsgCartNotFound, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req service.AddItemRequest
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Carts.AddItem(r.Context(), cartID(r), req)
	if err != nil {
		fail(w, err, service.MsgNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// removeItem takes one unit off the line named by item_id, size_id and
// extras (comma separated extra IDs).
func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID, validItem := queryInt(r, "item_id")
	sizeID, validSize := queryInt(r, "size_id")
	extraIDs, validExtras := parseIDs(r.URL.Query().Get("extras"))
	if !validItem || !validSize || !validExtras || itemID == 0 {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}

	view, err := h.Carts.RemoveItem(r.Context(), cartID(r), cart.KeyFor(itemID, sizeID, extraIDs))
	if err != nil {
		fail(w, err, service.MsgCartNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) selectBranch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BranchID int `json:"branch_id"`
	}
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Carts.SelectBranch(r.Context(), cartID(r), req.BranchID)
	if err != nil {
		fail(w, err, service.MsgCartNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) selectArea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AreaID int `json:"area_id"`
	}
	if !decode(w, r, &req) {
		return
	}
	view, err := h.Carts.SelectArea(r.Context(), cartID(r), req.AreaID)
	if err != nil {
		fail(w, err, service.MsgCartNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) setCustomer(w http.ResponseWriter, r *http.Request) {
	var customer cart.Customer
	if !decode(w, r, &customer) {
		return
	}
	view, err := h.Carts.SetCustomer(r.Context(), cartID(r), customer)
	if err != nil {
		fail(w, err, service.MsgCartNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.Carts.Checkout(r.Context(), cartID(r))
	if err != nil {
		fail(w, err, service.MsgCartNotFound, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func parseIDs(raw string) ([]int, bool) {
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
