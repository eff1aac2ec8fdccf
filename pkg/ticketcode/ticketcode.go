// Package ticketcode encodes and decodes KALPÉ-SANTÉ ticket codes.
//
// Two textual forms exist, both human-typeable so an agent can enter a code
// by hand when scanning fails:
//
//	KALPÉ-SANTÉ;<id>;<beneficiary>              lookup code
//	KALPÉ-SANTÉ;<id>;<beneficiary>;<remaining>  QR payload
//
// Decode validates field by field and reports which field was bad. The codes
// carry no checksum or signature: anyone who can read a printed ticket can
// reconstruct a valid lookup string for it.
package ticketcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tag identifies the issuing program. It is the first field of every code.
const Tag = "KALPÉ-SANTÉ"

// TicketPrefix is prepended to the sponsorship id to form the short display
// reference shown on ticket cards (e.g. "SWT-42").
const TicketPrefix = "SWT-"

const sep = ";"

// ErrMalformedCode is the sentinel wrapped by every decode failure.
// Match with errors.Is.
var ErrMalformedCode = errors.New("malformed ticket code")

// DecodeError reports which part of a code failed validation.
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed ticket code: %s %s", e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrMalformedCode }

// Code is the decoded content of a lookup code.
type Code struct {
	SponsorshipID   int64
	BeneficiaryName string
}

// Encode builds the lookup form of a ticket code.
func Encode(id int64, beneficiaryName string) string {
	return strings.Join([]string{Tag, strconv.FormatInt(id, 10), beneficiaryName}, sep)
}

// EncodeQR builds the scannable QR payload, which additionally carries the
// current remaining balance. The balance is informational only; redemption
// always re-reads it from the ledger.
func EncodeQR(id int64, beneficiaryName string, remaining decimal.Decimal) string {
	return strings.Join([]string{Tag, strconv.FormatInt(id, 10), beneficiaryName, remaining.String()}, sep)
}

// TicketCode returns the short display reference for a sponsorship id.
func TicketCode(id int64) string {
	return TicketPrefix + strconv.FormatInt(id, 10)
}

// Decode parses either form of a ticket code. Fields beyond the third are
// ignored, so a scanned QR payload decodes the same as its lookup code.
func Decode(s string) (Code, error) {
	fields := strings.Split(strings.TrimSpace(s), sep)
	if len(fields) < 3 {
		return Code{}, &DecodeError{Field: "code", Reason: "wants at least 3 fields"}
	}
	if fields[0] != Tag {
		return Code{}, &DecodeError{Field: "tag", Reason: fmt.Sprintf("is %q, want %q", fields[0], Tag)}
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || id <= 0 {
		return Code{}, &DecodeError{Field: "id", Reason: "is not a positive integer"}
	}

	name := strings.TrimSpace(fields[2])
	if name == "" {
		return Code{}, &DecodeError{Field: "beneficiary", Reason: "is empty"}
	}

	return Code{SponsorshipID: id, BeneficiaryName: name}, nil
}
