package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"example.com/gallery-storefront/internal/infra/config"
	"example.com/gallery-storefront/internal/infra/mail"
	"example.com/gallery-storefront/internal/infra/persistence/mysql"
	"example.com/gallery-storefront/internal/infra/security"
	"example.com/gallery-storefront/internal/infra/storage/postgres"
	httpapi "example.com/gallery-storefront/internal/interface/http"
	authuc "example.com/gallery-storefront/internal/usecase/auth"
	cartuc "example.com/gallery-storefront/internal/usecase/cart"
	cataloguc "example.com/gallery-storefront/internal/usecase/catalog"
	checkoutuc "example.com/gallery-storefront/internal/usecase/checkout"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to open mysql")
	}
	defer db.Close()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.WithError(err).Fatal("mysql unreachable")
		}
		cancel()
	}

	pool, err := pgxpool.New(context.Background(), cfg.ImageDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to open image store")
	}
	defer pool.Close()

	artworkRepo := mysql.NewArtworkRepository(db)
	userRepo := mysql.NewUserRepository(db)
	imageStore := postgres.NewImageStore(pool)

	carts := cartuc.NewRegistry()
	snapshotter := authuc.NewCartSnapshotter(carts, userRepo)

	tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := security.NewBcryptService(0)

	var mailer checkoutuc.ConfirmationMailer
	if cfg.SMTPAddr != "" {
		mailer = mail.NewSender(cfg.SMTPAddr, cfg.MailFrom)
	}

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:     authuc.NewService(userRepo, hasher, tokenSvc, snapshotter),
		CatalogService:  cataloguc.NewService(artworkRepo, imageStore),
		CheckoutService: checkoutuc.NewService(cfg.CheckoutDelay, mailer),
		Carts:           carts,
		Images:          imageStore,
		TokenService:    tokenSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.Router(),
	}

	go func() {
		log.WithField("port", cfg.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}
