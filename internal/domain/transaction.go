package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxCommentLength is the maximum number of characters of a transaction comment.
const MaxCommentLength = 30

// TransactionKind is the closed set of ledger movements.
type TransactionKind uint8

// Transaction kinds.
const (
	KindDeposit TransactionKind = iota + 1
	KindWithdraw
	KindTransfer
	KindServiceCharge
	KindBillPay
)

var kindCodes = map[TransactionKind]string{
	KindDeposit:       "D",
	KindWithdraw:      "W",
	KindTransfer:      "T",
	KindServiceCharge: "S",
	KindBillPay:       "B",
}

var kindNames = map[TransactionKind]string{
	KindDeposit:       "Deposit",
	KindWithdraw:      "Withdraw",
	KindTransfer:      "Transfer",
	KindServiceCharge: "ServiceCharge",
	KindBillPay:       "BillPay",
}

// Code returns the single character persisted for the kind.
func (k TransactionKind) Code() string {
	return kindCodes[k]
}

// String implements fmt.Stringer.
func (k TransactionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("TransactionKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k TransactionKind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown transaction kind %d", uint8(k))
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TransactionKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown transaction kind %q", text)
}

// ParseTransactionKind returns the kind for a persisted code.
func ParseTransactionKind(code string) (TransactionKind, error) {
	for kind, c := range kindCodes {
		if c == code {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("unknown transaction kind code %q", code)
}

// Direction tells which leg of a transfer a transaction row is.
type Direction uint8

// Directions. Only transfer rows carry Incoming or Outgoing.
const (
	DirectionNone Direction = iota
	DirectionIncoming
	DirectionOutgoing
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionIncoming:
		return "Incoming"
	case DirectionOutgoing:
		return "Outgoing"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	for _, dir := range []Direction{DirectionNone, DirectionIncoming, DirectionOutgoing} {
		if dir.String() == string(text) {
			*d = dir
			return nil
		}
	}

	return fmt.Errorf("unknown direction %q", text)
}

// Sign returns +1 for movements that credit the account and -1 for movements that debit it.
func Sign(kind TransactionKind, dir Direction) int {
	switch kind {
	case KindDeposit:
		return 1
	case KindWithdraw, KindServiceCharge, KindBillPay:
		return -1
	case KindTransfer:
		if dir == DirectionIncoming {
			return 1
		}
		return -1
	}

	return 0
}

// Transaction is an immutable row of an account's log.
type Transaction struct {
	TransactionID            int64           `json:"transaction_id"`
	AccountNumber            int32           `json:"account_number"`
	Kind                     TransactionKind `json:"kind"`
	Direction                Direction       `json:"direction"`
	Amount                   decimal.Decimal `json:"amount"` // always positive, see Signed
	Comment                  string          `json:"comment,omitempty"`
	TransactionTimeUtc       time.Time       `json:"transaction_time_utc"`
	DestinationAccountNumber *int32          `json:"destination_account_number,omitempty"`
	TransferID               uuid.UUID       `json:"transfer_id"`
}

// Signed returns the amount with the sign of its effect on the balance.
func (t Transaction) Signed() decimal.Decimal {
	if Sign(t.Kind, t.Direction) < 0 {
		return t.Amount.Neg()
	}

	return t.Amount
}

// Label returns the statement label of the transaction.
func (t Transaction) Label() string {
	switch t.Kind {
	case KindServiceCharge:
		return "Service Charge"
	case KindTransfer:
		return "Transfer " + t.Direction.String()
	}

	return t.Kind.String()
}

// MovementResult holds the rows persisted by one money movement.
type MovementResult struct {
	Transactions []Transaction `json:"transactions"`
}

// DepositParams is the input data of a deposit.
type DepositParams struct {
	AccountNumber int32  `json:"account_number"`
	Amount        string `json:"amount"`
	Comment       string `json:"comment"`
}

// WithdrawParams is the input data of a withdrawal.
type WithdrawParams struct {
	AccountNumber int32  `json:"account_number"`
	Amount        string `json:"amount"`
	Comment       string `json:"comment"`
}

// TransferParams is the input data of a transfer between two ledger accounts.
type TransferParams struct {
	SourceAccountNumber      int32  `json:"source_account_number"`
	DestinationAccountNumber int32  `json:"destination_account_number"`
	Amount                   string `json:"amount"`
	Comment                  string `json:"comment"`
}
