package main

import (
	"log"
	"net/http"
	"os"

	"menulink/api-gateway/internal/gateway"
	"menulink/config"

	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gw := gateway.NewGateway(gateway.Config{
		StorefrontSvcURL: cfg.Services.StorefrontURL,
		OrderSvcURL:      cfg.Services.OrderURL,
		FrontendDir:      cfg.FrontendDir,
	}, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := cfg.ListenAddr(":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
