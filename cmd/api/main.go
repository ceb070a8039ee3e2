package main

import (
	"context"
	"log"
	"time"

	"canteen-api/internal/core/cache"
	"canteen-api/internal/core/config"
	"canteen-api/internal/core/logger"
	"canteen-api/internal/core/server"
	cartadapter "canteen-api/internal/features/cart/adapters"
	carthandler "canteen-api/internal/features/cart/handler"
	cartservice "canteen-api/internal/features/cart/service"
	couponadapter "canteen-api/internal/features/coupons/adapters"
	couponhandler "canteen-api/internal/features/coupons/handler"
	couponservice "canteen-api/internal/features/coupons/service"
	maintenanceadapter "canteen-api/internal/features/maintenance/adapters"
	maintenancehandler "canteen-api/internal/features/maintenance/handler"
	maintenanceservice "canteen-api/internal/features/maintenance/service"
	mediaadapter "canteen-api/internal/features/media/adapters"
	mediadomain "canteen-api/internal/features/media/domain"
	mediahandler "canteen-api/internal/features/media/handler"
	mediaservice "canteen-api/internal/features/media/service"
	menuadapter "canteen-api/internal/features/menu/adapters"
	menuhandler "canteen-api/internal/features/menu/handler"
	menuservice "canteen-api/internal/features/menu/service"
	orderadapter "canteen-api/internal/features/orders/adapters"
	orderhandler "canteen-api/internal/features/orders/handler"
	orderservice "canteen-api/internal/features/orders/service"
	paymentadapter "canteen-api/internal/features/payments/adapters"
	pushadapter "canteen-api/internal/features/push/adapters"
	pushhandler "canteen-api/internal/features/push/handler"
	pushservice "canteen-api/internal/features/push/service"
	reporthandler "canteen-api/internal/features/reports/handler"
	reportservice "canteen-api/internal/features/reports/service"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// @title Canteen API
// @version 1.0
// @description Backend for the canteen ordering PWA: menu, cart, checkout and storefront signage.
// @contact.name API Support
// @contact.email support@canteen-api.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the Redis store and verify connectivity
	store, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	clock := clockwork.NewRealClock()

	// Media: banner storage and carousel signage
	bannerRepo := mediaadapter.NewRedisBannerRepository(store)
	mediaSvc := mediaservice.NewMediaService(bannerRepo, clock,
		time.Duration(cfg.Carousel.AutoAdvanceMS)*time.Millisecond,
		mediadomain.CarouselConfig{
			SlideWidth:       float64(cfg.Carousel.SlideWidthPX),
			ReleaseThreshold: float64(cfg.Carousel.ReleaseThresholdPX),
			Damping:          cfg.Carousel.Damping,
		})
	if err := mediaSvc.Start(context.Background()); err != nil {
		l.Fatal("Failed to start media service", zap.Error(err))
	}
	defer mediaSvc.Stop()
	mediaHdl := mediahandler.NewMediaHandler(mediaSvc)

	// Menu
	menuRepo := menuadapter.NewRedisMenuRepository(store)
	menuSvc := menuservice.NewMenuService(menuRepo)
	menuHdl := menuhandler.NewMenuHandler(menuSvc)

	// Cart, priced against the menu
	cartRepo := cartadapter.NewRedisCartRepository(store)
	cartSvc := cartservice.NewCartService(cartRepo, cartadapter.NewMenuProviderAdapter(menuSvc))
	cartHdl := carthandler.NewCartHandler(cartSvc)

	// Coupons
	couponRepo := couponadapter.NewRedisCouponRepository(store)
	couponSvc := couponservice.NewCouponService(couponRepo, clock)
	couponHdl := couponhandler.NewCouponHandler(couponSvc)

	// Payments
	tokenSource := paymentadapter.NewOAuthTokenSource(cfg.Payment, clock)
	gateway := paymentadapter.NewGatewayClient(cfg.Payment, tokenSource)

	// Orders and checkout
	orderRepo := orderadapter.NewRedisOrderRepository(store)
	orderSvc := orderservice.NewOrderService(orderRepo,
		orderadapter.NewCartProviderAdapter(cartSvc), couponSvc, gateway, clock)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Push subscriptions
	pushRepo := pushadapter.NewRedisSubscriptionRepository(store)
	pushSvc := pushservice.NewPushService(pushRepo, clock)
	pushHdl := pushhandler.NewPushHandler(pushSvc)

	// Sales reports
	reportSvc := reportservice.NewReportService(orderSvc)
	reportHdl := reporthandler.NewReportHandler(reportSvc, clock)

	// Maintenance switch
	maintenanceRepo := maintenanceadapter.NewRedisStatusRepository(store)
	maintenanceSvc := maintenanceservice.NewMaintenanceService(maintenanceRepo, clock)
	maintenanceHdl := maintenancehandler.NewMaintenanceHandler(maintenanceSvc)

	srv := server.New(cfg, store)

	// Customer routes are gated while maintenance mode is on. Admin routes
	// and the status endpoint stay reachable.
	gate := maintenanceHdl.Middleware()

	media := srv.App.Group("/media", gate)
	media.Get("/banners", mediaHdl.ListBanners)
	media.Get("/carousel", mediaHdl.GetCarousel)
	media.Post("/carousel/gesture", mediaHdl.ApplyGesture)
	media.Post("/carousel/complete", mediaHdl.CompleteTransition)
	media.Post("/banners/:id/load-error", mediaHdl.ReportLoadError)

	menu := srv.App.Group("/menu", gate)
	menu.Get("/", menuHdl.ListItems)
	menu.Get("/:id", menuHdl.GetItem)

	cart := srv.App.Group("/cart", gate)
	cart.Get("/", cartHdl.GetCart)
	cart.Delete("/", cartHdl.ClearCart)
	cart.Post("/items", cartHdl.AddItem)
	cart.Put("/items/:itemID", cartHdl.UpdateQuantity)
	cart.Delete("/items/:itemID", cartHdl.RemoveItem)

	srv.App.Post("/coupons/validate", gate, couponHdl.ValidateCoupon)

	srv.App.Post("/checkout", gate, orderHdl.Checkout)

	orders := srv.App.Group("/orders", gate)
	orders.Get("/", orderHdl.ListOrders)
	orders.Get("/:id", orderHdl.GetOrder)

	push := srv.App.Group("/push", gate)
	push.Post("/subscriptions", pushHdl.Subscribe)
	push.Delete("/subscriptions", pushHdl.Unsubscribe)

	// The status endpoint itself stays reachable during maintenance.
	srv.App.Get("/maintenance", maintenanceHdl.GetStatus)

	// Admin routes bypass the maintenance gate.
	admin := srv.App.Group("/admin")

	admin.Post("/banners", mediaHdl.UpsertBanner)
	admin.Delete("/banners/:id", mediaHdl.DeleteBanner)

	admin.Post("/menu", menuHdl.UpsertItem)
	admin.Delete("/menu/:id", menuHdl.DeleteItem)
	admin.Patch("/menu/:id/availability", menuHdl.SetAvailability)

	admin.Get("/coupons", couponHdl.ListCoupons)
	admin.Post("/coupons", couponHdl.UpsertCoupon)
	admin.Delete("/coupons/:code", couponHdl.DeleteCoupon)

	admin.Get("/orders", orderHdl.ListAllOrders)
	admin.Patch("/orders/:id/status", orderHdl.UpdateStatus)

	admin.Get("/push/subscriptions", pushHdl.ListSubscriptions)

	admin.Get("/reports/daily", reportHdl.DailyReport)

	admin.Post("/maintenance", maintenanceHdl.Enable)
	admin.Delete("/maintenance", maintenanceHdl.Disable)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
