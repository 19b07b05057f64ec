package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nahidraz23/bistro-bliss-server/internal/handlers"
	"github.com/nahidraz23/bistro-bliss-server/internal/middlewares"
	"github.com/nahidraz23/bistro-bliss-server/internal/payment"
	"github.com/nahidraz23/bistro-bliss-server/internal/repository"
	"github.com/nahidraz23/bistro-bliss-server/internal/service"
	"github.com/nahidraz23/bistro-bliss-server/pkg/config"
	"github.com/nahidraz23/bistro-bliss-server/pkg/db"
	"github.com/nahidraz23/bistro-bliss-server/pkg/mq"
	"github.com/nahidraz23/bistro-bliss-server/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load(".env")
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("bistro-api")
	defer func() { _ = shutdownTracer(context.Background()) }()

	client := must(db.Connect(context.Background(), cfg.MongoURI))
	defer func() { _ = client.Disconnect(context.Background()) }()

	usersCol := db.OpenCollection(client, cfg.MongoDB, "users")
	foodCol := db.OpenCollection(client, cfg.MongoDB, "foodItems")
	reviewsCol := db.OpenCollection(client, cfg.MongoDB, "reviews")
	cartCol := db.OpenCollection(client, cfg.MongoDB, "cart")
	paymentsCol := db.OpenCollection(client, cfg.MongoDB, "payments")

	// events are optional: no broker URL, no publisher
	var pub service.EventPublisher
	if cfg.RabbitURL != "" {
		p := must(mq.NewPublisher(cfg.RabbitURL, cfg.PaymentExchange))
		defer p.Close()
		pub = p
	}

	provider := must(payment.NewProvider(cfg.OmisePublicKey, cfg.OmiseSecretKey))

	userSvc := service.NewUserSvc(repository.NewUserRepo(usersCol))
	menuSvc := service.NewMenuSvc(repository.NewMenuRepo(foodCol))
	reviewSvc := service.NewReviewSvc(repository.NewReviewRepo(reviewsCol))
	cartRepo := repository.NewCartRepo(cartCol)
	cartSvc := service.NewCartSvc(cartRepo)
	paymentSvc := service.NewPaymentSvc(repository.NewPaymentRepo(paymentsCol), cartRepo, provider, pub)
	statsSvc := service.NewStatsSvc(repository.NewStatsRepo(usersCol, foodCol, paymentsCol))

	secret := []byte(cfg.JWTSecret)
	ttl := time.Duration(cfg.JWTExpireMin) * time.Minute

	r := gin.Default()
	registerRoutes(r, secret, ttl, userSvc, menuSvc, reviewSvc, cartSvc, paymentSvc, statsSvc)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: otelhttp.NewHandler(r, "bistro-api"),
	}
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
	log.Println("[api] stopped")
}

func registerRoutes(
	r *gin.Engine,
	secret []byte,
	ttl time.Duration,
	userSvc *service.UserSvc,
	menuSvc *service.MenuSvc,
	reviewSvc *service.ReviewSvc,
	cartSvc *service.CartSvc,
	paymentSvc *service.PaymentSvc,
	statsSvc *service.StatsSvc,
) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro Boss server is running")
	})

	ah := handlers.NewAuthHandler(secret, ttl)
	r.POST("/jwt", ah.IssueToken)

	authed := middlewares.JWTAuth(secret)
	admin := middlewares.RequireAdmin(userSvc)

	uh := handlers.NewUserHandler(userSvc)
	r.GET("/allUsers", authed, admin, uh.List)
	r.GET("/allUsers/:email", authed, uh.AdminStatus)
	r.POST("/users", uh.Create)
	r.PATCH("/users/:id", authed, admin, uh.Promote)
	r.DELETE("/users/:id", authed, admin, uh.Delete)

	mh := handlers.NewMenuHandler(menuSvc)
	r.GET("/menu", mh.List)
	r.GET("/menu/:id", mh.Get)
	r.POST("/menu", authed, admin, mh.Create)
	r.PATCH("/menu/:id", authed, admin, mh.Update)
	r.DELETE("/menu/:id", authed, admin, mh.Delete)

	rh := handlers.NewReviewHandler(reviewSvc)
	r.GET("/reviews", rh.List)

	ch := handlers.NewCartHandler(cartSvc)
	r.GET("/carts", ch.List)
	// both aliases survive from successive frontend snapshots
	r.POST("/cart", ch.Create)
	r.POST("/carts", ch.Create)
	r.DELETE("/mycart/:id", ch.Delete)

	ph := handlers.NewPaymentHandler(paymentSvc)
	r.POST("/create-payment-intent", ph.CreateIntent)
	r.POST("/payments", ph.Record)
	r.GET("/payments/:email", authed, ph.ListByEmail)

	sh := handlers.NewStatsHandler(statsSvc)
	r.GET("/admin-stats", authed, admin, sh.AdminStats)
	r.GET("/order-stats", authed, admin, sh.OrderStats)
}
