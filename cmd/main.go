package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"restman/config"
	httpapi "restman/internal/api/http"
	"restman/internal/domain"
	"restman/internal/payment"
	"restman/internal/service"
	"restman/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	writer := config.NewKafkaWriter("restman.events")
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	users := storage.NewUserRepo(db)
	menu := storage.NewMenuRepo(db)
	tables := storage.NewTableRepo(db)
	bookings := storage.NewBookingRepo(db)
	orders := storage.NewOrderRepo(db)
	reviews := storage.NewReviewRepo(db)
	stats := storage.NewStatsRepo(db)

	sessions := storage.NewRedisSessionStore(redisClient)
	cache := storage.NewRedisCache(redisClient)
	analytics := storage.NewRedisAnalytics(redisClient)

	gateways := map[domain.PaymentMethod]service.PaymentGateway{
		domain.PayVNPay: payment.NewVNPay(payment.VNPayConfig{
			TmnCode:    cfg.VNPayTmnCode,
			HashSecret: cfg.VNPaySecret,
			Endpoint:   cfg.VNPayEndpoint,
			ReturnURL:  cfg.VNPayReturn,
		}),
		domain.PayMoMo: payment.NewMoMo(payment.MoMoConfig{
			PartnerCode: cfg.MoMoPartner,
			AccessKey:   cfg.MoMoAccessKey,
			SecretKey:   cfg.MoMoSecretKey,
			Endpoint:    cfg.MoMoEndpoint,
			RedirectURL: cfg.MoMoRedirect,
			IPNURL:      cfg.MoMoIPN,
		}, &http.Client{Timeout: 10 * time.Second}),
	}

	authService := service.NewAuthService(users, cache)
	menuService := service.NewMenuService(menu, cache)
	sessionService := service.NewSessionService(sessions, menu)
	orderService := service.NewOrderService(orders, menu, gateways, publisher)
	checkoutService := service.NewCheckoutService(sessionService, orderService)
	bookingService := service.NewBookingService(bookings, publisher)
	tableService := service.NewTableService(tables, cfg.MenuURL)
	reviewService := service.NewReviewService(reviews, cache, publisher)
	statsService := service.NewStatsService(stats, analytics)

	reader := config.NewKafkaReader("restman.events", "restman-analytics")
	defer reader.Close()
	consumer := service.NewConsumer(reader, analytics)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(
		authService,
		menuService,
		sessionService,
		checkoutService,
		orderService,
		bookingService,
		tableService,
		reviewService,
		statsService,
	)

	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}
