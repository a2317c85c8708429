package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	StorefrontSvcURL string
	OrderSvcURL      string
	FrontendDir      string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		writeError(w, http.StatusBadGateway, "service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// RouteHandler sends /api traffic to the owning service. Carts and the
// owner's orders screen live in order-svc, everything else in storefront-svc.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	switch {
	case path == "/api/carts" || strings.HasPrefix(path, "/api/carts/"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	case isOrdersPath(path):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	case strings.HasPrefix(path, "/api/auth/"),
		strings.HasPrefix(path, "/api/storefront/"),
		path == "/api/restaurants" || strings.HasPrefix(path, "/api/restaurants/"):
		g.ProxyRequest(w, r, g.config.StorefrontSvcURL)
	default:
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		writeError(w, http.StatusNotFound, "API route not found")
	}
}

// isOrdersPath matches /api/restaurants/{username}/orders and below.
func isOrdersPath(path string) bool {
	parts := strings.Split(strings.TrimPrefix(path, "/api/restaurants/"), "/")
	return strings.HasPrefix(path, "/api/restaurants/") && len(parts) >= 2 && parts[0] != "" && parts[1] == "orders"
}

// Page serves the single-page app shell for a known page route.
func (g *Gateway) Page(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, g.indexPath())
}

// NotFound serves the app shell with a 404 status so the client renders its
// not-found page.
func (g *Gateway) NotFound(w http.ResponseWriter, r *http.Request) {
	shell, err := os.ReadFile(g.indexPath())
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(shell)
}

func (g *Gateway) indexPath() string {
	return filepath.Join(g.config.FrontendDir, "index.html")
}

const username = "{username:[a-zA-Z0-9_-]+}"

var ownerPages = []string{
	"dashboard",
	"menu-management",
	"footer-management",
	"branches-management",
	"orders",
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))

	r.HandleFunc("/", g.Page).Methods("GET")
	r.HandleFunc("/auth", g.Page).Methods("GET")
	r.HandleFunc("/"+username, g.Page).Methods("GET")
	for _, page := range ownerPages {
		r.HandleFunc("/"+username+"/"+page, g.Page).Methods("GET")
	}
	r.NotFoundHandler = http.HandlerFunc(g.NotFound)
	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
