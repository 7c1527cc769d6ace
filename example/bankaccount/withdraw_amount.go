package bankaccount

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cmdstream/cmdstream-go/eventstream"
	"github.com/cmdstream/cmdstream-go/execute"
)

const withdrawAmountCommandType = "WithdrawAmount"

// ErrInsufficientBalance is returned when a withdrawal would overdraw the account.
var ErrInsufficientBalance = errors.New("insufficient balance")

// WithdrawAmount represents the intent to withdraw an amount from an account.
type WithdrawAmount struct {
	AccountID  uuid.UUID
	Amount     Cents
	OccurredAt OccurredAtTS

	state Account
}

// BuildWithdrawAmountCommand creates a new WithdrawAmount command.
func BuildWithdrawAmountCommand(accountID uuid.UUID, amount Cents, occurredAt time.Time) WithdrawAmount {
	return WithdrawAmount{
		AccountID:  accountID,
		Amount:     amount,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// CommandType returns the type identifier for this command.
func (c WithdrawAmount) CommandType() string {
	return withdrawAmountCommandType
}

// EventStreamID identifies the account's event stream.
func (c WithdrawAmount) EventStreamID() eventstream.StreamID {
	return eventstream.StreamIDFromUUID(c.AccountID)
}

// EmptyState returns the account state before any event.
func (c WithdrawAmount) EmptyState() Account {
	return EmptyAccount()
}

// Handle decides whether the withdrawal is allowed. The decision is made
// against the state the command was reloaded with, so after a concurrency
// conflict the balance check runs again on fresh state.
func (c WithdrawAmount) Handle() ([]Event, error) {
	if !c.state.IsOpen {
		return nil, ErrAccountNotOpen
	}

	if c.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if c.Amount > c.state.Balance {
		return nil, ErrInsufficientBalance
	}

	return []Event{BuildAmountWithdrawn(c.AccountID, c.Amount, c.OccurredAt)}, nil
}

// WithState returns a copy of the command carrying the given state.
func (c WithdrawAmount) WithState(state Account) execute.Command[Event, Account] {
	c.state = state
	return c
}
