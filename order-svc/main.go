package main

import (
	"log"
	"os"

	"menulink/config"
	"menulink/identity"
	httpapi "menulink/order-svc/internal/api/http"
	"menulink/order-svc/internal/service"
	"menulink/order-svc/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	defer kafkaWriter.Close()

	carts := service.NewCartService(repo, storage.NewCartStore(rdb, cfg.CartTTL), storage.NewKafkaPublisher(kafkaWriter))
	orders := service.NewOrderService(repo, repo, storage.NewStatsReader(rdb))

	handler := httpapi.NewHandler(carts, orders)
	router := httpapi.NewRouter(handler, identity.NewVerifier(cfg.Identity.JWTSecret), cfg.AllowedOrigins)
	httpapi.StartServer(cfg.ListenAddr(":8082"), router)
}
