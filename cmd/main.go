package main

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/api"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/config"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/events"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/metrics"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/repository"
	"github.com/COMS4153EcommerceProject/Order-Service/internal/service"
)

func main() {
	var rdb *redis.Client
	if addr := config.RedisAddr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}

	var publisher events.Publisher = events.Noop{}
	if brokers := config.KafkaBrokerURLs(); len(brokers) > 0 {
		publisher = events.NewKafkaPublisher(config.NewKafkaWriter(brokers, "order-topic"))
	}

	orderRepo := repository.NewOrderRepository()
	paymentRepo := repository.NewPaymentRepository()
	detailRepo := repository.NewOrderDetailRepository()

	orderService := service.NewOrderService(orderRepo, publisher, rdb)
	paymentService := service.NewPaymentService(paymentRepo)
	detailService := service.NewOrderDetailService(detailRepo)
	taskService := service.NewTaskService(orderService, config.TaskWorkers(), config.TaskStepDelay())

	orderHandler := api.NewOrderHandler(orderService, taskService)
	paymentHandler := api.NewPaymentHandler(paymentService)
	detailHandler := api.NewOrderDetailHandler(detailService)
	taskHandler := api.NewTaskHandler(taskService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	m := metrics.NewServerMetrics("order_management")
	e.Use(m.Middleware())

	if secret := config.JWTSecret(); secret != "" {
		e.Use(echojwt.WithConfig(echojwt.Config{
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(api.JwtCustomClaims)
			},
			SigningKey: []byte(secret),
			Skipper: func(c echo.Context) bool {
				switch c.Path() {
				case "/", "/health", "/metrics":
					return true
				}
				return false
			},
		}))
	}

	e.POST("/orders", orderHandler.CreateOrder)
	e.GET("/orders", orderHandler.ListOrders)
	e.POST("/orders/process", orderHandler.ProcessOrder)
	e.GET("/orders/:id", orderHandler.GetOrder)
	e.PUT("/orders/:id", orderHandler.UpdateOrder)
	e.DELETE("/orders/:id", orderHandler.DeleteOrder)

	e.POST("/payments", paymentHandler.CreatePayment)
	e.GET("/payments", paymentHandler.ListPayments)
	e.GET("/payments/:id", paymentHandler.GetPayment)
	e.PUT("/payments/:id", paymentHandler.UpdatePayment)
	e.DELETE("/payments/:id", paymentHandler.DeletePayment)

	e.POST("/order-details", detailHandler.CreateOrderDetail)
	e.GET("/order-details", detailHandler.ListOrderDetails)
	e.GET("/order-details/:order_id/:prod_id", detailHandler.GetOrderDetail)
	e.PUT("/order-details/:order_id/:prod_id", detailHandler.UpdateOrderDetail)
	e.DELETE("/order-details/:order_id/:prod_id", detailHandler.DeleteOrderDetail)

	e.GET("/tasks/:id/status", taskHandler.GetTaskStatus)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"message":  "Welcome to the Order Management API.",
			"version":  "0.1.0",
			"entities": []string{"orders", "payments", "order-details"},
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "order-management-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.GET("/metrics", metrics.Handler())

	e.Logger.Fatal(e.Start(":" + config.Port()))
}
