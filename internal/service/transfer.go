package service

import (
	"github.com/shopspring/decimal"

	"telegram-economy-bot/internal/ledger"
)

// TransferService handles peer-to-peer transfers.
type TransferService struct {
	store *ledger.Store
}

// NewTransferService creates a TransferService.
func NewTransferService(store *ledger.Store) *TransferService {
	return &TransferService{store: store}
}

// Transfer moves amount from one player to another atomically.
// Validation errors surface as the ledger sentinels
// (ErrInvalidAmount, ErrSelfTransfer, ErrInsufficientBalance).
func (s *TransferService) Transfer(from, to int64, amount decimal.Decimal) error {
	return s.store.Transfer(from, to, amount)
}
