package bankaccount

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cmdstream/cmdstream-go/eventstream"
	"github.com/cmdstream/cmdstream-go/execute"
)

const depositAmountCommandType = "DepositAmount"

var (
	// ErrAccountNotOpen is returned when the target account does not exist
	// or has not been opened.
	ErrAccountNotOpen = errors.New("account is not open")

	// ErrInvalidAmount is returned when the amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// DepositAmount represents the intent to deposit an amount into an account.
type DepositAmount struct {
	AccountID  uuid.UUID
	Amount     Cents
	OccurredAt OccurredAtTS

	state Account
}

// BuildDepositAmountCommand creates a new DepositAmount command.
func BuildDepositAmountCommand(accountID uuid.UUID, amount Cents, occurredAt time.Time) DepositAmount {
	return DepositAmount{
		AccountID:  accountID,
		Amount:     amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// CommandType returns the type identifier for this command.
func (c DepositAmount) CommandType() string {
	return depositAmountCommandType
}

// EventStreamID identifies the account's event stream.
func (c DepositAmount) EventStreamID() eventstream.StreamID {
	return eventstream.StreamIDFromUUID(c.AccountID)
}

// EmptyState returns the account state before any event.
func (c DepositAmount) EmptyState() Account {
	return EmptyAccount()
}

// Handle decides whether the deposit is allowed.
func (c DepositAmount) Handle() ([]Event, error) {
	if !c.state.IsOpen {
		return nil, ErrAccountNotOpen
	}

	if c.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return []Event{BuildAmountDeposited(c.AccountID, c.Amount, c.OccurredAt)}, nil
}

// WithState returns a copy of the command carrying the given state.
func (c DepositAmount) WithState(state Account) execute.Command[Event, Account] {
	c.state = state
	return c
}
