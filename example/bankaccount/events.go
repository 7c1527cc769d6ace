package bankaccount

import (
	"time"

	"github.com/google/uuid"
)

// AccountOpenedEventType is the event type identifier.
const AccountOpenedEventType = "AccountOpened"

// AccountOpened represents when a bank account is opened.
type AccountOpened struct {
	EventTypeName  string
	AccountID      AccountIDString
	Owner          string
	InitialBalance Cents
	OccurredAt     OccurredAtTS
}

// BuildAccountOpened creates a new AccountOpened event.
func BuildAccountOpened(accountID uuid.UUID, owner string, initialBalance Cents, occurredAt time.Time) AccountOpened {
	return AccountOpened{
		EventTypeName:  AccountOpenedEventType,
		AccountID:      accountID.String(),
		Owner:          owner,
		InitialBalance: initialBalance,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e AccountOpened) EventType() string {
	return AccountOpenedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AccountOpened) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// AmountDepositedEventType is the event type identifier.
const AmountDepositedEventType = "AmountDeposited"

// AmountDeposited represents when an amount is deposited into an account.
type AmountDeposited struct {
	EventTypeName string
	AccountID     AccountIDString
	Amount        Cents
	OccurredAt    OccurredAtTS
}

// BuildAmountDeposited creates a new AmountDeposited event.
func BuildAmountDeposited(accountID uuid.UUID, amount Cents, occurredAt time.Time) AmountDeposited {
	return AmountDeposited{
		EventTypeName: AmountDepositedEventType,
		AccountID:     accountID.String(),
		Amount:        amount,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e AmountDeposited) EventType() string {
	return AmountDepositedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AmountDeposited) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// AmountWithdrawnEventType is the event type identifier.
const AmountWithdrawnEventType = "AmountWithdrawn"

// AmountWithdrawn represents when an amount is withdrawn from an account.
type AmountWithdrawn struct {
	EventTypeName string
	AccountID     AccountIDString
	Amount        Cents
	OccurredAt    OccurredAtTS
}

// BuildAmountWithdrawn creates a new AmountWithdrawn event.
func BuildAmountWithdrawn(accountID uuid.UUID, amount Cents, occurredAt time.Time) AmountWithdrawn {
	return AmountWithdrawn{
		EventTypeName: AmountWithdrawnEventType,
		AccountID:     accountID.String(),
		Amount:        amount,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e AmountWithdrawn) EventType() string {
	return AmountWithdrawnEventType
}

// HasOccurredAt returns when this event occurred.
func (e AmountWithdrawn) HasOccurredAt() time.Time {
	return e.OccurredAt
}
