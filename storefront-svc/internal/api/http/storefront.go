package httpapi

import (
	"errors"
	"net/http"

	"menulink/deeplink"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) getStorefront(w http.ResponseWriter, r *http.Request) {
	storefront, err := h.Storefront.Get(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, service.MsgRestaurantNotFound)
			return
		}
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, storefront)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	png, err := h.Storefront.QRCode(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, service.MsgRestaurantNotFound)
			return
		}
		h.fail(w, err, service.MsgLoadFailed)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+username+`-qrcode.png"`)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getShareLinks(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, service.MsgRestaurantNotFound)
			return
		}
		h.fail(w, err, service.MsgLoadFailed)
		return
	}

	text := "تفضل بزيارة مطعم " + rest.Name
	writeJSON(w, http.StatusOK, deeplink.Share(h.Storefront.PageURL(rest.Username), text))
}
