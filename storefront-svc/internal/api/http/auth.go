package httpapi

import (
	"errors"
	"log"
	"net/http"

	"menulink/identity"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/service"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	*identity.Tokens
	Username          string `json:"username"`
	RestaurantCreated bool   `json:"restaurant_created"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req identity.SignUpRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Auth.SignUp(r.Context(), req.Email, req.Password, h.AuthRedirectURL)
	if err != nil {
		log.Printf("[storefront-svc] sign-up failed for %s: %v", req.Email, err)
		writeError(w, http.StatusBadRequest, identity.MapAuthError(identity.OpSignUp, err))
		return
	}

	pending := domain.PendingRestaurant{Username: req.Username, RestaurantName: req.RestaurantName}
	if err := h.Bootstrap.Stage(r.Context(), result.User.ID, pending); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}

	if result.NeedsEmailConfirmation {
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"needs_email_confirmation": true,
			"email":                    req.Email,
		})
		return
	}

	resp := sessionResponse{Tokens: result.Tokens}
	resp.Username, resp.RestaurantCreated, err = h.Bootstrap.EnsureRestaurant(r.Context(), result.User)
	if err != nil {
		log.Printf("[storefront-svc] bootstrap after sign-up failed for %s: %v", result.User.ID, err)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decode(w, r, &req) {
		return
	}

	tokens, err := h.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, identity.MapAuthError(identity.OpSignIn, err))
		return
	}

	resp := sessionResponse{Tokens: tokens}
	resp.Username, resp.RestaurantCreated, err = h.Bootstrap.EnsureRestaurant(r.Context(), tokens.User)
	if err != nil && !errors.Is(err, service.ErrNoPendingRestaurant) {
		log.Printf("[storefront-svc] bootstrap after sign-in failed for %s: %v", tokens.User.ID, err)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	token := identity.BearerToken(r)
	if token == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.Auth.SignOut(r.Context(), token); err != nil {
		log.Printf("[storefront-svc] sign-out failed: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, _ := identity.FromContext(r.Context())
	username, err := session.Username(r.Context())
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":     session.User,
		"username": username,
	})
}

// bootstrap creates the caller's restaurant from the details staged at sign-up.
func (h *Handler) bootstrap(w http.ResponseWriter, r *http.Request) {
	session, _ := identity.FromContext(r.Context())
	username, created, err := h.Bootstrap.EnsureRestaurant(r.Context(), session.User)
	if errors.Is(err, service.ErrNoPendingRestaurant) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"username": "", "created": false})
		return
	}
	if err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]interface{}{"username": username, "created": created})
}
