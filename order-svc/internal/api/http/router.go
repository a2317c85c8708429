package httpapi

import (
	"log"
	"net/http"

	"menulink/identity"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter serves carts anonymously; the owner's order routes need a
// verified session.
func NewRouter(handler *Handler, verifier identity.TokenVerifier, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(identity.Middleware(verifier, nil)(r))
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Order Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
