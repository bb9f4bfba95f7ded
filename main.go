package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/SineMag/Eatery/configs"
	"github.com/SineMag/Eatery/middlewares"
	"github.com/SineMag/Eatery/repository"
	"github.com/SineMag/Eatery/routes"
	"github.com/SineMag/Eatery/services"
	"github.com/SineMag/Eatery/ws"
)

func main() {
	cfg := configs.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB (accounts + the sqlite flavor of the blob store)
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// app-state store
	var store repository.KVStore
	switch cfg.StoreDriver {
	case "redis":
		store = repository.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	default:
		store = repository.NewSQLiteStore(db)
	}

	// Services
	menuSvc := services.NewMenuService(store, configs.DefaultMenuItems(), configs.DefaultCategories(), logger)
	cartSvc := services.NewCartService(store, logger)
	orderSvc := services.NewOrderService(store, cfg.ShowDeletedOrders, logger)

	// admin edits to the menu reprice in-progress carts; the boot pass covers
	// carts persisted before a catalog change that happened while it was down
	menuSvc.OnChange(cartSvc.Reconcile)
	cartSvc.Reconcile(menuSvc.Items())

	// live dashboard feed
	hub := ws.NewOrderHub(logger)
	go hub.Run()
	orderSvc.SetNotify(hub.Broadcast)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, menuSvc, cartSvc, orderSvc, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
