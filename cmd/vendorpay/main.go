package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vendorpay/vendorpay/internal/app"
	"github.com/vendorpay/vendorpay/internal/invoices"
	"github.com/vendorpay/vendorpay/internal/payments"
	"github.com/vendorpay/vendorpay/internal/platform/db"
	"github.com/vendorpay/vendorpay/internal/purchaseorders"
	"github.com/vendorpay/vendorpay/internal/vendors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	vendorRepo := vendors.NewRepository(pool)
	vendorService := vendors.NewService(vendorRepo)
	vendorHandler := vendors.NewHandler(logger, vendorService)

	orderRepo := purchaseorders.NewRepository(pool)
	orderService := purchaseorders.NewService(orderRepo)
	orderHandler := purchaseorders.NewHandler(logger, orderService)

	invoiceRepo := invoices.NewRepository(pool)
	invoiceService := invoices.NewService(invoiceRepo)
	invoiceHandler := invoices.NewHandler(logger, invoiceService)

	paymentRepo := payments.NewRepository(pool)
	paymentService := payments.NewService(paymentRepo)
	paymentHandler := payments.NewHandler(logger, paymentService)

	router := app.NewRouter(app.RouterParams{
		Logger:               logger,
		Config:               cfg,
		VendorHandler:        vendorHandler,
		PurchaseOrderHandler: orderHandler,
		InvoiceHandler:       invoiceHandler,
		PaymentHandler:       paymentHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}
