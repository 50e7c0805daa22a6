// Package ledger owns the in-memory player ledger.
//
// All mutation goes through one global mutex. Operations are short and
// cross-player atomicity (transfers) comes for free, so the coarse lock
// is deliberate. Every successful mutation schedules a full-state
// snapshot; the write itself happens on a background goroutine so the
// caller never blocks on disk.
package ledger

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"telegram-economy-bot/internal/model"
)

// Ledger operation errors.
var (
	ErrInvalidAmount       = errors.New("invalid amount: must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSelfTransfer        = errors.New("cannot transfer to self")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
)

// Store is the player ledger: a map of Telegram user ID to player
// record, guarded by a single mutex, snapshotted to a JSON file.
type Store struct {
	mu      sync.Mutex
	players map[int64]*model.Player

	path string
	now  func() time.Time

	snapCh chan chan struct{}
	done   chan struct{}
}

// New creates a ledger store backed by the given snapshot path and
// starts the background snapshot writer. Call Load before serving
// traffic and Close on shutdown.
func New(path string) *Store {
	s := &Store{
		players: make(map[int64]*model.Player),
		path:    path,
		now:     time.Now,
		snapCh:  make(chan chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go s.snapshotLoop()
	return s
}

// getOrCreate returns the player record for id, creating a default one
// if absent, and applies lazy status decay. Caller must hold s.mu.
func (s *Store) getOrCreate(id int64) *model.Player {
	p, ok := s.players[id]
	if !ok {
		p = model.NewPlayer(s.now())
		s.players[id] = p
	}
	ApplyDecay(p, s.now())
	return p
}

// WithPlayer runs fn against the player's record under the global lock.
// Decay is applied before fn sees the record. If fn returns nil the
// in-memory state is already final and a snapshot is scheduled before
// WithPlayer returns; if fn returns an error nothing is persisted and
// fn must not have mutated the record.
func (s *Store) WithPlayer(id int64, fn func(p *model.Player) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(id)
	if err := fn(p); err != nil {
		return err
	}
	s.scheduleSnapshot()
	return nil
}

// ViewPlayer runs fn against a player's record for read-only access.
// Decay is still applied so views are always current, but no snapshot
// is scheduled (decay is idempotent within the day and will be
// recomputed on the next access).
func (s *Store) ViewPlayer(id int64, fn func(p *model.Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.getOrCreate(id))
}

// Balance returns the player's current balance.
func (s *Store) Balance(id int64) decimal.Decimal {
	var b decimal.Decimal
	s.ViewPlayer(id, func(p *model.Player) {
		b = p.Balance
	})
	return b
}

// Transfer moves amount from one player to another as a single atomic
// step under the global lock: funds are verified first, then both
// sides are applied, and no observer can see a half-applied transfer.
func (s *Store) Transfer(from, to int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if from == to {
		return ErrSelfTransfer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender := s.getOrCreate(from)
	receiver := s.getOrCreate(to)

	if sender.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)
	s.scheduleSnapshot()
	return nil
}

// SetBalance overwrites a player's balance (admin operation).
func (s *Store) SetBalance(id int64, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeBalance
	}
	return s.WithPlayer(id, func(p *model.Player) error {
		p.Balance = amount
		return nil
	})
}

// Credit adds amount to a player's balance. Used by game settlement so
// payouts go through the same per-player mutation path as everything
// else.
func (s *Store) Credit(id int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return s.WithPlayer(id, func(p *model.Player) error {
		p.Balance = p.Balance.Add(amount)
		return nil
	})
}

// Debit subtracts amount from a player's balance, failing before any
// mutation if funds are insufficient.
func (s *Store) Debit(id int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return s.WithPlayer(id, func(p *model.Player) error {
		if p.Balance.LessThan(amount) {
			return ErrInsufficientBalance
		}
		p.Balance = p.Balance.Sub(amount)
		return nil
	})
}

// PlayerIDs returns all known player IDs in ascending order.
func (s *Store) PlayerIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
