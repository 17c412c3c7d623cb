package transaction

import (
	"time"

	"github.com/finmock/finmock/pkg/store"
)

// ListFilter scopes a listing to one customer and AND-combines the optional
// predicates. Zero-valued fields apply no filter; From/To are inclusive
// bounds on CreatedAt.
type ListFilter struct {
	CustomerID        string
	Type              Type
	TransferDirection Direction
	Currency          string
	From              *time.Time
	To                *time.Time
}

type Repository interface {
	List(f ListFilter) ([]Transaction, int)
	CreateBatch(txs []Transaction)
	RemoveByCustomerID(customerID string) int
	ReplaceAll(txs []Transaction)
	Count() int
}

type repository struct {
	transactions *store.Collection[Transaction]
}

func NewRepository(transactions *store.Collection[Transaction]) Repository {
	return &repository{transactions: transactions}
}

// List returns the filtered transactions in insertion order plus the total
// match count. Pagination is sliced by the caller; the total is always the
// pre-pagination count. An unknown customer id simply matches nothing.
func (r *repository) List(f ListFilter) ([]Transaction, int) {
	matched := make([]Transaction, 0)
	for _, tx := range r.transactions.All() {
		if f.matches(tx) {
			matched = append(matched, tx)
		}
	}
	return matched, len(matched)
}

func (f ListFilter) matches(tx Transaction) bool {
	if tx.CustomerID != f.CustomerID {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.TransferDirection != "" && tx.TransferDirection != f.TransferDirection {
		return false
	}
	if f.Currency != "" && tx.Currency != f.Currency {
		return false
	}
	if f.From != nil && tx.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && tx.CreatedAt.After(*f.To) {
		return false
	}
	return true
}

func (r *repository) CreateBatch(txs []Transaction) {
	r.transactions.Append(txs...)
}

func (r *repository) RemoveByCustomerID(customerID string) int {
	return r.transactions.Remove(func(tx Transaction) bool { return tx.CustomerID == customerID })
}

func (r *repository) ReplaceAll(txs []Transaction) {
	r.transactions.Replace(txs)
}

func (r *repository) Count() int {
	return r.transactions.Len()
}
