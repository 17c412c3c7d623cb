package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/finmock/finmock/cmd/routes"
	"github.com/finmock/finmock/internal/generator"
	"github.com/finmock/finmock/pkg/config"
	"github.com/finmock/finmock/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	gen := generator.New(cfg.Seed)
	cols := routes.NewCollections()

	// seed the in-memory store once; everything lives until process exit
	customers, wallets, transactions := gen.Dataset(cfg.SeedCustomers)
	cols.Customers.Replace(customers)
	cols.Wallets.Replace(wallets)
	cols.Transactions.Replace(transactions)

	logger.Info("Store seeded", logger.Fields{
		"customers":    cols.Customers.Len(),
		"wallets":      cols.Wallets.Len(),
		"transactions": cols.Transactions.Len(),
	})

	r := mux.NewRouter()
	handler := routes.RegisterRoutes(r, cfg, gen, cols)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("Server starting", logger.Fields{"port": cfg.Port, "env": cfg.Env})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Could not listen", logger.Fields{"port": cfg.Port, "error": err.Error()})
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	server.Shutdown(ctx)
	logger.Info("Server gracefully shut down")
}
