package main

import (
	"context"
	"log"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/config"
	apphttp "github.com/arjunmnath/probidder-backend/internal/controllers/http"
	"github.com/arjunmnath/probidder-backend/internal/infra/mysql"
	"github.com/arjunmnath/probidder-backend/internal/infra/rabbitmq"
	mysqlrepo "github.com/arjunmnath/probidder-backend/internal/repository/mysql"
	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mysql.Open(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	var publisher rabbitmq.PublisherInterface
	if cfg.AMQPURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	svcs := apphttp.Services{
		Auth:       services.NewAuthService(mysqlrepo.NewUserRepository(db)),
		Products:   services.NewProductService(mysqlrepo.NewProductRepository(db)),
		Categories: services.NewCategoryService(mysqlrepo.NewCategoryRepository(db)),
		Bids:       services.NewBidService(mysqlrepo.NewBidRepository(db), publisher),
		Orders:     services.NewOrderService(mysqlrepo.NewOrderRepository(db), publisher),
		Shipments:  services.NewShipmentService(mysqlrepo.NewShipmentRepository(db)),
		Reviews:    services.NewReviewService(mysqlrepo.NewReviewRepository(db)),
		Messages:   services.NewMessageService(mysqlrepo.NewMessageRepository(db)),
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           cfg.RedisDB,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		redisClient = nil
	}

	handler := apphttp.NewHandler(svcs, redisClient, cfg.ListingCacheTTL)

	go func() {
		if err := handler.WarmupCache(context.Background()); err != nil {
			log.Printf("cache warmup failed: %v", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting probidder backend on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
