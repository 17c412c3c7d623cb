package wallet

import (
	"errors"

	"github.com/finmock/finmock/pkg/store"
)

var ErrNotFound = errors.New("wallet not found")

type Repository interface {
	Create(w Wallet)
	GetByCustomerID(customerID string) (*Wallet, error)
	UpdateLimits(customerID string, daily, monthly *float64) (*Wallet, error)
	RemoveByCustomerID(customerID string) int
	ReplaceAll(wallets []Wallet)
	Count() int
}

type repository struct {
	wallets *store.Collection[Wallet]
}

func NewRepository(wallets *store.Collection[Wallet]) Repository {
	return &repository{wallets: wallets}
}

func (r *repository) Create(w Wallet) {
	r.wallets.Append(w)
}

func (r *repository) GetByCustomerID(customerID string) (*Wallet, error) {
	w, found := r.wallets.Find(func(w Wallet) bool { return w.CustomerID == customerID })
	if !found {
		return nil, ErrNotFound
	}
	return &w, nil
}

// UpdateLimits overwrites only the limits that were supplied; every other
// wallet field is untouched.
func (r *repository) UpdateLimits(customerID string, daily, monthly *float64) (*Wallet, error) {
	ok := r.wallets.Update(
		func(w Wallet) bool { return w.CustomerID == customerID },
		func(w *Wallet) {
			if daily != nil {
				w.DailyLimit = *daily
			}
			if monthly != nil {
				w.MonthlyLimit = *monthly
			}
		},
	)
	if !ok {
		return nil, ErrNotFound
	}
	return r.GetByCustomerID(customerID)
}

func (r *repository) RemoveByCustomerID(customerID string) int {
	return r.wallets.Remove(func(w Wallet) bool { return w.CustomerID == customerID })
}

func (r *repository) ReplaceAll(wallets []Wallet) {
	r.wallets.Replace(wallets)
}

func (r *repository) Count() int {
	return r.wallets.Len()
}
