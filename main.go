package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"foodcourt/config"
	httpapi "foodcourt/internal/api/http"
	"foodcourt/internal/catalog"
	"foodcourt/internal/domain"
	"foodcourt/internal/service"
	"foodcourt/internal/storage"
)

func buildCatalog(db *sql.DB) *catalog.Catalog {
	if db == nil {
		return catalog.NewSeed()
	}
	repo := storage.NewPostgresRepository(db)
	hotels, err := repo.ListHotels()
	if err != nil || len(hotels) == 0 {
		if err != nil {
			log.Printf("WARNING: failed to load hotels from database: %v", err)
		}
		return catalog.NewSeed()
	}
	menus := make(map[string][]domain.FoodItem, len(hotels))
	for _, h := range hotels {
		menu, err := repo.ListMenu(h.Title)
		if err != nil {
			log.Printf("WARNING: failed to load menu for %s: %v", h.Title, err)
			continue
		}
		menus[h.Title] = menu
	}
	return catalog.New(hotels, menus)
}

func main() {
	db, err := config.InitPostgres()
	if err != nil {
		log.Printf("WARNING: running without database: %v", err)
		db = nil
	} else {
		defer db.Close()
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	if db != nil {
		if err := storage.NewPostgresRepository(db).EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
	}

	cat := buildCatalog(db)

	kv := storage.NewRedisKV(rdb)
	writes := storage.NewWriteQueue(kv)
	defer writes.Close()

	cache := storage.NewRedisCache(rdb, 5*time.Minute)

	var orders service.OrderRepository
	var menu service.MenuRepository
	if db != nil {
		repo := storage.NewPostgresRepository(db)
		orders = repo
		menu = repo
	}

	var publisher service.OrderPublisher
	if config.KafkaBroker() != "" {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter("orders"))

		consumer := service.NewRevenueConsumer(config.NewKafkaReader("orders", "foodcourt-revenue"), cache)
		go consumer.Start(context.Background())
	}

	cartSvc := service.NewCartService(kv, writes, cat)
	paySvc := service.NewPaymentService(
		&service.SimulatedGateway{Delay: 2 * time.Second},
		orders,
		publisher,
		&service.DefaultQRGenerator{BaseURL: "http://localhost:8080"},
	)
	authSvc := service.NewAuthService(cache, cache, service.MockSMSSender{})
	dashSvc := service.NewDashboardService(orders, menu, cat, cache)

	handler := httpapi.NewHandler(cartSvc, paySvc, authSvc, dashSvc, cat)
	httpapi.StartServer(config.Port(), httpapi.NewRouter(handler))
}
