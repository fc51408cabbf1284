package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arjunmnath/probidder-backend/internal/domain"
	"github.com/arjunmnath/probidder-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	auth       *services.AuthService
	products   *services.ProductService
	categories *services.CategoryService
	bids       *services.BidService
	orders     *services.OrderService
	shipments  *services.ShipmentService
	reviews    *services.ReviewService
	messages   *services.MessageService

	rdb      *redis.Client
	cacheTTL time.Duration
}

type Services struct {
	Auth       *services.AuthService
	Products   *services.ProductService
	Categories *services.CategoryService
	Bids       *services.BidService
	Orders     *services.OrderService
	Shipments  *services.ShipmentService
	Reviews    *services.ReviewService
	Messages   *services.MessageService
}

func NewHandler(s Services, rdb *redis.Client, cacheTTL time.Duration) *Handler {
	return &Handler{
		auth:       s.Auth,
		products:   s.Products,
		categories: s.Categories,
		bids:       s.Bids,
		orders:     s.Orders,
		shipments:  s.Shipments,
		reviews:    s.Reviews,
		messages:   s.Messages,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/users", h.Register)
	r.POST("/sessions", h.Login)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)

	r.GET("/products", h.ListProducts)
	r.GET("/products/trending", h.TrendingProducts)
	r.POST("/products", h.CreateProduct)
	r.GET("/products/:id", h.GetProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	r.GET("/categories", h.ListCategories)
	r.POST("/categories", h.CreateCategory)
	r.GET("/categories/:id", h.GetCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)
	r.GET("/categories/:id/products", h.ListCategoryProducts)

	r.POST("/bids", h.PlaceBid)
	r.GET("/bids/:id", h.GetBid)
	r.DELETE("/bids/:id", h.DeleteBid)
	r.GET("/products/:id/bids", h.ListProductBids)
	r.GET("/products/:id/highest-bid", h.HighestBid)
	r.GET("/users/:id/bids", h.ListUserBids)

	r.GET("/users/:id/orders", h.ListUserOrders)
	r.POST("/users/:id/orders", h.CreateOrder)
	r.PUT("/users/:id/orders/:orderId", h.UpdateOrder)
	r.DELETE("/users/:id/orders/:orderId", h.DeleteOrder)

	r.GET("/shipments", h.ListShipments)
	r.POST("/shipments", h.CreateShipment)
	r.GET("/shipments/:id", h.GetShipment)
	r.PUT("/shipments/:id", h.UpdateShipment)
	r.DELETE("/shipments/:id", h.DeleteShipment)

	r.POST("/reviews", h.CreateReview)
	r.PUT("/reviews/:id", h.UpdateReview)
	r.DELETE("/reviews/:id", h.DeleteReview)
	r.GET("/products/:id/reviews", h.ListProductReviews)

	r.POST("/messages", h.SendMessage)
	r.GET("/messages/:id", h.GetMessage)
	r.PUT("/messages/:id", h.UpdateMessage)
	r.DELETE("/messages/:id", h.DeleteMessage)
	r.GET("/users/:id/messages", h.ListUserMessages)
}

// writeError maps the domain taxonomy onto HTTP statuses. Nothing bubbles out
// of a handler unmapped.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// Redis is optional; every cache helper degrades to a miss or a no-op when no
// client is wired.
func (h *Handler) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if h.rdb == nil {
		return nil, false
	}
	b, err := h.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (h *Handler) cacheSet(ctx context.Context, key string, value interface{}) {
	if h.rdb == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		h.rdb.Set(ctx, key, data, h.cacheTTL)
	}
}

func (h *Handler) cacheDel(ctx context.Context, keys ...string) {
	if h.rdb == nil {
		return
	}
	h.rdb.Del(ctx, keys...)
}

// cacheDelPattern drops every key matching the pattern, so trending entries
// cached under any limit are invalidated together.
func (h *Handler) cacheDelPattern(ctx context.Context, pattern string) {
	if h.rdb == nil {
		return
	}
	iter := h.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		h.rdb.Del(ctx, iter.Val())
	}
}

const (
	categoriesCacheKey = "categories:all"
	trendingCachePfx   = "products:trending:"
)

func trendingCacheKey(limit int) string {
	return trendingCachePfx + strconv.Itoa(limit)
}

// WarmupCache primes the read-heavy endpoints so the first requests after a
// restart do not all hit MySQL at once.
func (h *Handler) WarmupCache(ctx context.Context) error {
	if h.rdb == nil {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trending, err := h.products.Trending(services.DefaultTrendingLimit)
		if err != nil {
			return err
		}
		h.cacheSet(ctx, trendingCacheKey(services.DefaultTrendingLimit), trending)
		return nil
	})
	g.Go(func() error {
		categories, err := h.categories.List()
		if err != nil {
			return err
		}
		h.cacheSet(ctx, categoriesCacheKey, categories)
		return nil
	})
	return g.Wait()
}
