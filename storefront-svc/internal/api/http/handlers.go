package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"menulink/identity"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/media"
	"menulink/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

const restaurantPath = "/api/restaurants/{username}"

type Handler struct {
	Auth        identity.Provider
	Bootstrap   service.BootstrapServiceInterface
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Branches    service.BranchServiceInterface
	Storefront  service.StorefrontServiceInterface
	Images      service.ImageServiceInterface

	// AuthRedirectURL is where confirmation e-mails send the owner back to.
	AuthRedirectURL string
	MaxUploadBytes  int64
}

func NewHandler(
	auth identity.Provider,
	bootstrap service.BootstrapServiceInterface,
	restaurants service.RestaurantServiceInterface,
	menu service.MenuServiceInterface,
	branches service.BranchServiceInterface,
	storefront service.StorefrontServiceInterface,
	images service.ImageServiceInterface,
) *Handler {
	return &Handler{
		Auth:           auth,
		Bootstrap:      bootstrap,
		Restaurants:    restaurants,
		Menu:           menu,
		Branches:       branches,
		Storefront:     storefront,
		Images:         images,
		MaxUploadBytes: media.DefaultMaxBytes,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signIn).Methods("POST")
	r.HandleFunc("/api/auth/signout", h.signOut).Methods("POST")
	r.HandleFunc("/api/auth/session", identity.RequireSession(h.session)).Methods("GET")
	r.HandleFunc("/api/auth/bootstrap", identity.RequireSession(h.bootstrap)).Methods("POST")

	r.HandleFunc("/api/storefront/{username}", h.getStorefront).Methods("GET")
	r.HandleFunc("/api/storefront/{username}/qrcode", h.getQRCode).Methods("GET")
	r.HandleFunc("/api/storefront/{username}/share", h.getShareLinks).Methods("GET")

	r.HandleFunc("/api/restaurants", identity.RequireSession(h.createRestaurant)).Methods("POST")
	r.HandleFunc(restaurantPath, h.getRestaurant).Methods("GET")
	r.HandleFunc(restaurantPath, h.updateRestaurant).Methods("PUT")
	r.HandleFunc(restaurantPath+"/footer", h.updateFooter).Methods("PUT")
	r.HandleFunc(restaurantPath+"/images/{purpose}", h.uploadRestaurantImage).Methods("POST")

	r.HandleFunc(restaurantPath+"/categories", h.listCategories).Methods("GET")
	r.HandleFunc(restaurantPath+"/categories", h.saveCategory).Methods("POST")
	r.HandleFunc(restaurantPath+"/categories/{id}", h.saveCategory).Methods("PUT")
	r.HandleFunc(restaurantPath+"/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc(restaurantPath+"/items", h.listItems).Methods("GET")
	r.HandleFunc(restaurantPath+"/items", h.saveItem).Methods("POST")
	r.HandleFunc(restaurantPath+"/items/{id}", h.saveItem).Methods("PUT")
	r.HandleFunc(restaurantPath+"/items/{id}", h.deleteItem).Methods("DELETE")
	r.HandleFunc(restaurantPath+"/items/{id}/image", h.uploadItemImage).Methods("POST")
	r.HandleFunc(restaurantPath+"/items/{id}/sizes", h.listSizes).Methods("GET")
	r.HandleFunc(restaurantPath+"/items/{id}/sizes", h.saveSize).Methods("POST")
	r.HandleFunc(restaurantPath+"/items/{id}/sizes/{sizeId}", h.saveSize).Methods("PUT")
	r.HandleFunc(restaurantPath+"/items/{id}/sizes/{sizeId}", h.deleteSize).Methods("DELETE")

	r.HandleFunc(restaurantPath+"/extras", h.listExtras).Methods("GET")
	r.HandleFunc(restaurantPath+"/extras", h.saveExtra).Methods("POST")
	r.HandleFunc(restaurantPath+"/extras/{id}", h.saveExtra).Methods("PUT")
	r.HandleFunc(restaurantPath+"/extras/{id}", h.deleteExtra).Methods("DELETE")

	r.HandleFunc(restaurantPath+"/branches", h.listBranches).Methods("GET")
	r.HandleFunc(restaurantPath+"/branches", h.saveBranch).Methods("POST")
	r.HandleFunc(restaurantPath+"/branches/{id}", h.saveBranch).Methods("PUT")
	r.HandleFunc(restaurantPath+"/branches/{id}", h.deleteBranch).Methods("DELETE")
	r.HandleFunc(restaurantPath+"/branches/{id}/toggle", h.toggleBranch).Methods("POST")
	r.HandleFunc(restaurantPath+"/branches/{id}/areas", h.listAreas).Methods("GET")
	r.HandleFunc(restaurantPath+"/branches/{id}/areas", h.saveArea).Methods("POST")
	r.HandleFunc(restaurantPath+"/branches/{id}/areas/{areaId}", h.saveArea).Methods("PUT")
	r.HandleFunc(restaurantPath+"/branches/{id}/areas/{areaId}", h.deleteArea).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// owned resolves {username} to a restaurant the caller owns, answering the
// request itself when that fails.
func (h *Handler) owned(w http.ResponseWriter, r *http.Request) (*domain.Restaurant, bool) {
	session, ok := identity.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, identity.SessionError(r.Context()).Error())
		return nil, false
	}

	rest, err := h.Restaurants.Owned(r.Context(), mux.Vars(r)["username"], session.User.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, service.MsgRestaurantNotFound)
			return nil, false
		}
		h.fail(w, err, service.MsgLoadFailed)
		return nil, false
	}
	return rest, true
}

// fail maps service errors to statuses; anything unexpected is logged and
// answered with the generic message.
func (h *Handler) fail(w http.ResponseWriter, err error, generic string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, service.MsgNotFound)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, service.MsgForbidden)
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
	case errors.Is(err, domain.ErrUsernameTaken):
		writeError(w, http.StatusConflict, service.MsgUsernameTaken)
	case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrTooLarge):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[storefront-svc] %v", err)
		writeError(w, http.StatusInternalServerError, generic)
	}
}

func pathID(r *http.Request, name string) (int, bool) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	return id, err == nil && id > 0
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

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
