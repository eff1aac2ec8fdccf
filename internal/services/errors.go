package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Souley97/Kalpe-sante/pkg/ticketcode"
)

// Sentinel errors for the service layer. Match with errors.Is; the structured
// types below wrap them and carry the numbers the caller may want to show.
var (
	// ErrValidation is returned for missing or invalid user input.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds is returned when a sponsorship would exceed the
	// sponsor's wallet balance.
	ErrInsufficientFunds = errors.New("insufficient wallet funds")

	// ErrInsufficientBalance is returned when a debit would exceed a
	// ticket's remaining balance.
	ErrInsufficientBalance = errors.New("insufficient ticket balance")

	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExhausted is returned when redeeming against a ticket whose
	// balance already reached zero. Exhausted is terminal.
	ErrAlreadyExhausted = errors.New("ticket already exhausted")

	// ErrConcurrentModification is returned when the compare-and-swap on a
	// sponsorship's version counter loses against another writer.
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InsufficientFundsError carries the wallet shortfall.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient wallet funds: available %s, requested %s",
		e.Available, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// InsufficientBalanceError carries the ticket shortfall.
type InsufficientBalanceError struct {
	SponsorshipID int64
	Remaining     decimal.Decimal
	Requested     decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient ticket balance on sponsorship %d: remaining %s, requested %s",
		e.SponsorshipID, e.Remaining, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// IsClientError reports whether the error is caused by the caller's input or
// by a business-rule rejection, as opposed to an infrastructure failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ticketcode.ErrMalformedCode)
}

// IsConflict reports rejections that describe the record's state rather than
// the request: terminal tickets and lost compare-and-swap races.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExhausted) ||
		errors.Is(err, ErrConcurrentModification)
}
