// Package store provides an in-memory record store. It stands in for the
// persistence collaborator: data-entry code mutates it, the projection
// service reads snapshots from it. Snapshots are copies, so engine results
// never alias stored records.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"cashlog/internal/core"
)

type Memory struct {
	mu           sync.Mutex
	wallets      []core.Wallet
	transactions []core.Transaction
	bills        []core.Bill
	categories   []core.Category
}

func New() *Memory {
	return &Memory{}
}

// NewSeeded returns a store preloaded with the default category set and an
// empty cash wallet, matching a fresh installation.
func NewSeeded() *Memory {
	s := New()
	for _, c := range []struct {
		name string
		typ  core.CategoryType
		icon string
		col  string
	}{
		{"Food & Dining", core.CategoryExpense, "utensils", "#ef4444"},
		{"Transportation", core.CategoryExpense, "car", "#f97316"},
		{"Shopping", core.CategoryExpense, "shopping-bag", "#ec4899"},
		{"Housing", core.CategoryExpense, "home", "#8b5cf6"},
		{"Entertainment", core.CategoryExpense, "film", "#3b82f6"},
		{"Health", core.CategoryExpense, "heart", "#10b981"},
		{"Salary", core.CategoryIncome, "briefcase", "#22c55e"},
		{"Freelance", core.CategoryIncome, "laptop", "#06b6d4"},
		{"Investments", core.CategoryIncome, "chart-line", "#eab308"},
	} {
		s.categories = append(s.categories, core.Category{
			ID: uuid.New(), Name: c.name, Type: c.typ, Icon: c.icon, Color: c.col,
		})
	}
	s.wallets = append(s.wallets, core.Wallet{
		ID: uuid.New(), Name: "Main Wallet", Type: core.WalletCash, Currency: "USD",
	})
	return s
}

// AddWallet validates and stores a wallet, assigning it an ID.
func (s *Memory) AddWallet(w core.Wallet) (core.Wallet, error) {
	if err := w.Validate(); err != nil {
		return core.Wallet{}, err
	}
	w.ID = uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets = append(s.wallets, w)
	return w, nil
}

// AddTransaction validates and stores a transaction, assigning it an ID.
// Virtual instances are rejected: expander output must never be written back.
func (s *Memory) AddTransaction(t core.Transaction) (core.Transaction, error) {
	if t.Virtual {
		return core.Transaction{}, core.ErrVirtualWrite
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, t)
	return t, nil
}

// AddBill validates and stores a bill, assigning it an ID.
func (s *Memory) AddBill(b core.Bill) (core.Bill, error) {
	if err := b.Validate(); err != nil {
		return core.Bill{}, err
	}
	b.ID = uuid.New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills = append(s.bills, b)
	return b, nil
}

// Wallets returns a snapshot copy of the stored wallets.
func (s *Memory) Wallets(_ context.Context) ([]core.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Wallet(nil), s.wallets...), nil
}

// Transactions returns a snapshot copy of the stored transactions.
func (s *Memory) Transactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...), nil
}

// Bills returns a snapshot copy of the stored bills.
func (s *Memory) Bills(_ context.Context) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Bill(nil), s.bills...), nil
}

// Categories returns a snapshot copy of the stored categories.
func (s *Memory) Categories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Category(nil), s.categories...), nil
}
