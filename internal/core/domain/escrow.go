package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// EscrowStatus is the lifecycle state of a contract's escrow account.
type EscrowStatus string

const (
	EscrowStatusOuvert  EscrowStatus = "ouvert"
	EscrowStatusFinance EscrowStatus = "finance"
	EscrowStatusEnCours EscrowStatus = "en_cours"
	EscrowStatusTermine EscrowStatus = "termine"
	EscrowStatusDispute EscrowStatus = "dispute"
	EscrowStatusCloture EscrowStatus = "cloture"
)

var (
	ErrEscrowReleaseExceedsHeld = errors.New("release exceeds funds held")
	ErrEscrowReversalExceeds    = errors.New("reversal exceeds unconfirmed deposit")
	ErrEscrowConfirmExceeds     = errors.New("confirmation exceeds deposit")
	ErrEscrowClosed             = errors.New("escrow account is closed")
	ErrEscrowNotFunded          = errors.New("escrow account is not funded")
)

// EscrowAccount tracks funds deposited toward a contract before release to the artisan.
// AmountConfirmed is the part of the deposit whose payments the provider has
// settled; only that part can be released.
type EscrowAccount struct {
	ID              uuid.UUID    `json:"id"`
	ContractID      uuid.UUID    `json:"contract_id"`
	TotalAmount     int64        `json:"total_amount"`
	AmountDeposited int64        `json:"amount_deposited"`
	AmountConfirmed int64        `json:"amount_confirmed"`
	AmountReleased  int64        `json:"amount_released"`
	AmountHeld      int64        `json:"amount_held"`
	Status          EscrowStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// IsClosed reports whether the account accepts no more movements.
func (e *EscrowAccount) IsClosed() bool {
	return e.Status == EscrowStatusTermine || e.Status == EscrowStatusCloture
}

// Deposit credits funds and moves ouvert -> finance.
func (e *EscrowAccount) Deposit(amount int64) error {
	if e.IsClosed() {
		return ErrEscrowClosed
	}
	e.AmountDeposited += amount
	e.AmountHeld = e.AmountDeposited - e.AmountReleased
	if e.Status == EscrowStatusOuvert {
		e.Status = EscrowStatusFinance
	}
	return nil
}

// Confirm marks deposited funds as settled by the provider. It never fails on
// a closed account, since the payment it records has already happened.
func (e *EscrowAccount) Confirm(amount int64) error {
	if e.AmountConfirmed+amount > e.AmountDeposited {
		return ErrEscrowConfirmExceeds
	}
	e.AmountConfirmed += amount
	return nil
}

// Releasable is the confirmed share of the funds still held.
func (e *EscrowAccount) Releasable() int64 {
	return e.AmountConfirmed - e.AmountReleased
}

// ReverseDeposit undoes an unconfirmed deposit whose payment later failed.
func (e *EscrowAccount) ReverseDeposit(amount int64) error {
	if e.AmountDeposited-amount < e.AmountConfirmed {
		return ErrEscrowReversalExceeds
	}
	e.AmountDeposited -= amount
	e.AmountHeld = e.AmountDeposited - e.AmountReleased
	if e.AmountDeposited == 0 && e.Status == EscrowStatusFinance {
		e.Status = EscrowStatusOuvert
	}
	return nil
}

// Release pays confirmed funds out to the artisan. Fully releasing the contract total ends the escrow.
func (e *EscrowAccount) Release(amount int64) error {
	if e.IsClosed() {
		return ErrEscrowClosed
	}
	if e.Status == EscrowStatusOuvert {
		return ErrEscrowNotFunded
	}
	if amount > e.Releasable() {
		return ErrEscrowReleaseExceedsHeld
	}
	e.AmountReleased += amount
	e.AmountHeld = e.AmountDeposited - e.AmountReleased
	if e.Status != EscrowStatusDispute {
		e.Status = EscrowStatusEnCours
		if e.TotalAmount > 0 && e.AmountReleased >= e.TotalAmount {
			e.Status = EscrowStatusTermine
		}
	}
	return nil
}

// OpenDispute freezes the account pending resolution.
func (e *EscrowAccount) OpenDispute() error {
	if e.IsClosed() {
		return ErrEscrowClosed
	}
	e.Status = EscrowStatusDispute
	return nil
}

// Close ends the account administratively.
func (e *EscrowAccount) Close() error {
	if e.Status == EscrowStatusCloture {
		return ErrEscrowClosed
	}
	e.Status = EscrowStatusCloture
	return nil
}
