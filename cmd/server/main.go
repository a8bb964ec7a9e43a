package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cafe-commerce/internal/handler"
	"cafe-commerce/internal/model"
	"cafe-commerce/internal/seed"
	"cafe-commerce/internal/service"
	"cafe-commerce/pkg/config"
	"cafe-commerce/pkg/database"
	"cafe-commerce/pkg/jwt"
	"cafe-commerce/pkg/tracer"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	seedDB := flag.Bool("seed", false, "seed initial catalog data and exit")
	flag.Parse()

	// Money fields serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	c, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Environment overrides for containerized deployments.
	if v := os.Getenv("MYSQL_HOST"); v != "" {
		c.Mysql.Host = v
	}
	if v := os.Getenv("MYSQL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Mysql.Port = p
		}
	}
	if v := os.Getenv("MYSQL_USER"); v != "" {
		c.Mysql.User = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.Mysql.Password = v
	}
	if v := os.Getenv("MYSQL_DBNAME"); v != "" {
		c.Mysql.DbName = v
	}
	if v := os.Getenv("REDIS_ADDRESS"); v != "" {
		c.Redis.Address = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}

	jwt.Init(c.Jwt.Secret, c.Jwt.ExpireHours)
	gin.SetMode(c.Server.Mode)

	if endpoint := os.Getenv("OTEL_EXPORTER_ENDPOINT"); endpoint != "" {
		tp, err := tracer.InitTracer("cafe-commerce", endpoint)
		if err != nil {
			log.Printf("Init tracer failed: %v", err)
		} else {
			defer func() { _ = tp.Shutdown(context.Background()) }()
		}
	}

	db, err := database.InitMySQL(c.Mysql)
	if err != nil {
		log.Fatalf("Failed to init mysql: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.Review{},
		&model.RewardTransaction{},
		&model.Admin{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if *seedDB {
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		return
	}

	rdb, err := database.InitRedis(c.Redis)
	if err != nil {
		log.Fatalf("Failed to init redis: %v", err)
	}

	authH := handler.NewAuthHandler(service.NewAuthService(db))
	catalogH := handler.NewCatalogHandler(service.NewCatalogService(db))
	orderH := handler.NewOrderHandler(service.NewOrderService(db))
	reviewH := handler.NewReviewHandler(service.NewReviewService(db))
	cartH := handler.NewCartHandler(service.NewCartService(rdb, db))
	rewardsH := handler.NewRewardsHandler(service.NewRewardsService(db))

	r := handler.NewRouter(authH, catalogH, orderH, reviewH, cartH, rewardsH)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", c.Server.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown: %v", err)
	}
}
