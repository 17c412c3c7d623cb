// Package generator produces the randomized records that seed the store and
// accompany customer creation. All randomness flows through one seeded faker
// so a fixed SEED reproduces the same dataset.
package generator

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/finmock/finmock/internal/customer"
	"github.com/finmock/finmock/internal/transaction"
	"github.com/finmock/finmock/internal/wallet"
)

var (
	currencies  = []string{"TRY", "USD", "EUR"}
	kycStatuses = []string{"UNKNOWN", "UNVERIFIED", "VERIFIED", "CONTRACTED"}
)

const (
	minTransactionsPerCustomer = 20
	maxTransactionsPerCustomer = 30
)

type Generator struct {
	faker *gofakeit.Faker
}

// New returns a generator seeded with the given value; a zero seed falls
// back to non-deterministic seeding.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func (g *Generator) Customers(n int) []customer.Customer {
	now := time.Now().UTC()
	customers := make([]customer.Customer, n)

	for i := range customers {
		created := g.faker.DateRange(now.AddDate(-1, 0, 0), now)
		updated := g.faker.DateRange(now.AddDate(0, 0, -30), now)
		dob := g.faker.DateRange(now.AddDate(-100, 0, 0), now.AddDate(-18, 0, 0))

		customers[i] = customer.Customer{
			ID:         g.faker.UUID(),
			Name:       g.faker.Name(),
			Email:      g.faker.Email(),
			Phone:      g.faker.PhoneFormatted(),
			NationalID: g.nationalID(),
			Address: customer.Address{
				Country:    g.faker.Country(),
				City:       g.faker.City(),
				PostalCode: g.faker.Zip(),
				Line1:      g.faker.Street(),
			},
			DateOfBirth: dob.Format("2006-01-02"),
			KYCStatus:   customer.KYCStatus(g.faker.RandomString(kycStatuses)),
			IsActive:    g.faker.Bool(),
			CreatedAt:   created,
			UpdatedAt:   updated,
		}
	}

	return customers
}

func (g *Generator) WalletFor(customerID string) wallet.Wallet {
	return wallet.Wallet{
		CustomerID:   customerID,
		Currency:     g.faker.RandomString(currencies),
		Balance:      g.faker.Price(0, 100_000),
		DailyLimit:   float64(g.faker.Number(1_000, 50_000)),
		MonthlyLimit: float64(g.faker.Number(20_000, 500_000)),
	}
}

// TransactionsFor produces between 20 and 30 transactions for the customer.
// Direction follows type; a coin flip decides merchant payment versus, for
// outgoing transfers, a P2P receiver with a wallet number.
func (g *Generator) TransactionsFor(customerID string) []transaction.Transaction {
	now := time.Now().UTC()
	count := g.faker.Number(minTransactionsPerCustomer, maxTransactionsPerCustomer)

	txs := make([]transaction.Transaction, count)
	for i := range txs {
		txType := transaction.TypeDebit
		direction := transaction.DirectionOutgoing
		if g.faker.Bool() {
			txType = transaction.TypeCredit
			direction = transaction.DirectionIncoming
		}

		tx := transaction.Transaction{
			ID:                g.faker.UUID(),
			CustomerID:        customerID,
			Type:              txType,
			Amount:            g.faker.Price(5, 5_000),
			Currency:          g.faker.RandomString(currencies),
			CreatedAt:         g.faker.DateRange(now.AddDate(0, 0, -30), now),
			Description:       g.faker.Sentence(5),
			TransferDirection: direction,
		}

		if g.faker.Bool() {
			tx.MerchantName = g.faker.Company()
		} else if direction == transaction.DirectionOutgoing {
			tx.ReceiverName = g.faker.Name()
			tx.ReceiverWalletNumber = g.faker.DigitN(16)
		}

		txs[i] = tx
	}

	return txs
}

// Dataset builds the startup seed: n customers, one wallet each and a
// transaction history each, in generation order.
func (g *Generator) Dataset(n int) ([]customer.Customer, []wallet.Wallet, []transaction.Transaction) {
	customers := g.Customers(n)

	wallets := make([]wallet.Wallet, 0, len(customers))
	transactions := make([]transaction.Transaction, 0, len(customers)*minTransactionsPerCustomer)
	for _, c := range customers {
		wallets = append(wallets, g.WalletFor(c.ID))
		transactions = append(transactions, g.TransactionsFor(c.ID)...)
	}

	return customers, wallets, transactions
}

// 11-digit national id without a leading zero
func (g *Generator) nationalID() int64 {
	return int64(g.faker.Number(10_000_000_000, 99_999_999_999))
}
