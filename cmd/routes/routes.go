package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/finmock/finmock/internal/customer"
	"github.com/finmock/finmock/internal/generator"
	"github.com/finmock/finmock/internal/middleware"
	"github.com/finmock/finmock/internal/transaction"
	"github.com/finmock/finmock/internal/wallet"
	"github.com/finmock/finmock/pkg/config"
	"github.com/finmock/finmock/pkg/logger"
	"github.com/finmock/finmock/pkg/store"
	"github.com/finmock/finmock/pkg/utils"
)

// Collections groups the three record collections the mock serves from.
type Collections struct {
	Customers    *store.Collection[customer.Customer]
	Wallets      *store.Collection[wallet.Wallet]
	Transactions *store.Collection[transaction.Transaction]
}

func NewCollections() Collections {
	return Collections{
		Customers:    store.NewCollection[customer.Customer](),
		Wallets:      store.NewCollection[wallet.Wallet](),
		Transactions: store.NewCollection[transaction.Transaction](),
	}
}

func RegisterRoutes(r *mux.Router, cfg config.Config, gen *generator.Generator, cols Collections) http.Handler {
	customerRepo := customer.NewRepository(cols.Customers, cols.Wallets, cols.Transactions)
	walletRepo := wallet.NewRepository(cols.Wallets)
	transactionRepo := transaction.NewRepository(cols.Transactions)

	customerHandler := customer.NewHandler(customerRepo, gen)
	walletHandler := wallet.NewHandler(walletRepo)
	transactionHandler := transaction.NewHandler(transactionRepo)

	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	rl := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	api.Use(rl.Limit)

	customersR := api.PathPrefix("/customers").Subrouter()
	customersR.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersR.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersR.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersR.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersR.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	walletsR := api.PathPrefix("/wallets").Subrouter()
	walletsR.HandleFunc("/{customerId}", walletHandler.GetWallet).Methods("GET")
	walletsR.HandleFunc("/{customerId}", walletHandler.UpdateLimits).Methods("PATCH")

	api.HandleFunc("/transactions/{customerId}", transactionHandler.ListTransactions).Methods("GET")

	if cfg.Env != "production" {

		// reseed the whole store with fresh synthetic data
		api.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) {
			customers, wallets, transactions := gen.Dataset(cfg.SeedCustomers)
			customerRepo.ReplaceAll(customers)
			walletRepo.ReplaceAll(wallets)
			transactionRepo.ReplaceAll(transactions)

			utils.WriteJSON(w, http.StatusOK, map[string]any{
				"message": "Database Reset",
				"stats": map[string]int{
					"customers":    customerRepo.Count(),
					"wallets":      walletRepo.Count(),
					"transactions": transactionRepo.Count(),
				},
			})
		}).Methods("POST")

		r.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
			content, err := os.ReadFile("docs/swagger.yaml")
			if err != nil {
				logger.Error("Failed to read swagger.yaml", logger.Fields{"error": err.Error()})
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			baseURL := "/"
			modifiedContent := strings.Replace(string(content), "{{BASE_URL}}", baseURL, -1)

			w.Header().Set("Content-Type", "application/yaml")
			w.Write([]byte(modifiedContent))
		})

		r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
			httpSwagger.URL("/swagger.yaml"),
		))
		logger.Info("Swagger documentation enabled at /swagger/index.html")
	}

	corsObj := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-Id"}),
	)

	return corsObj(r)
}
