package customer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/finmock/finmock/internal/transaction"
	"github.com/finmock/finmock/internal/wallet"
	"github.com/finmock/finmock/pkg/store"
)

var ErrNotFound = errors.New("customer not found")

// ListFilter AND-combines the optional listing predicates. Search is a
// case-insensitive substring match over name, email, phone and nationalId
// rendered as text; a record matches when any field contains it. Case
// folding is Unicode simple folding via strings.ToLower, not locale-aware
// (Turkish dotless i does not fold onto ASCII i).
type ListFilter struct {
	Search    string
	KYCStatus KYCStatus
	IsActive  *bool
}

type Repository interface {
	List(f ListFilter) ([]Customer, int)
	Get(id string) (*Customer, error)
	Create(c Customer, w wallet.Wallet, txs []transaction.Transaction)
	Replace(c Customer) error
	Delete(id string) error
	ReplaceAll(customers []Customer)
	Count() int
}

// repository owns all three collections so that customer deletion can
// cascade into the dependent wallet and transaction records in one place.
type repository struct {
	customers    *store.Collection[Customer]
	wallets      *store.Collection[wallet.Wallet]
	transactions *store.Collection[transaction.Transaction]
}

func NewRepository(
	customers *store.Collection[Customer],
	wallets *store.Collection[wallet.Wallet],
	transactions *store.Collection[transaction.Transaction],
) Repository {
	return &repository{customers: customers, wallets: wallets, transactions: transactions}
}

// List returns the filtered customers in insertion order plus the
// pre-pagination match count. No sort is applied.
func (r *repository) List(f ListFilter) ([]Customer, int) {
	matched := make([]Customer, 0)
	for _, c := range r.customers.All() {
		if f.matches(c) {
			matched = append(matched, c)
		}
	}
	return matched, len(matched)
}

func (f ListFilter) matches(c Customer) bool {
	if f.Search != "" && !matchesSearch(c, strings.ToLower(f.Search)) {
		return false
	}
	if f.KYCStatus != "" && c.KYCStatus != f.KYCStatus {
		return false
	}
	if f.IsActive != nil && c.IsActive != *f.IsActive {
		return false
	}
	return true
}

func matchesSearch(c Customer, search string) bool {
	return strings.Contains(strings.ToLower(c.Name), search) ||
		strings.Contains(strings.ToLower(c.Email), search) ||
		strings.Contains(strings.ToLower(c.Phone), search) ||
		strings.Contains(strconv.FormatInt(c.NationalID, 10), search)
}

func (r *repository) Get(id string) (*Customer, error) {
	c, found := r.customers.Find(func(c Customer) bool { return c.ID == id })
	if !found {
		return nil, ErrNotFound
	}
	return &c, nil
}

// Create appends the customer together with its companion wallet and
// transaction batch. All three are written before the call returns.
func (r *repository) Create(c Customer, w wallet.Wallet, txs []transaction.Transaction) {
	r.customers.Append(c)
	r.wallets.Append(w)
	r.transactions.Append(txs...)
}

// Replace overwrites the stored customer with the same id, in place.
func (r *repository) Replace(c Customer) error {
	ok := r.customers.Update(
		func(existing Customer) bool { return existing.ID == c.ID },
		func(existing *Customer) { *existing = c },
	)
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete removes the customer and cascades into every wallet and
// transaction referencing it, so no orphaned record survives.
func (r *repository) Delete(id string) error {
	removed := r.customers.Remove(func(c Customer) bool { return c.ID == id })
	if removed == 0 {
		return ErrNotFound
	}

	r.wallets.Remove(func(w wallet.Wallet) bool { return w.CustomerID == id })
	r.transactions.Remove(func(tx transaction.Transaction) bool { return tx.CustomerID == id })
	return nil
}

func (r *repository) ReplaceAll(customers []Customer) {
	r.customers.Replace(customers)
}

func (r *repository) Count() int {
	return r.customers.Len()
}
