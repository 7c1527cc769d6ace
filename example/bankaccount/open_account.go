package bankaccount

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cmdstream/cmdstream-go/eventstream"
	"github.com/cmdstream/cmdstream-go/execute"
)

const openAccountCommandType = "OpenAccount"

// ErrNegativeInitialBalance is returned when an account would be opened with
// a negative balance.
var ErrNegativeInitialBalance = errors.New("initial balance must not be negative")

// OpenAccount represents the intent to open a new bank account.
// Opening an already open account is an idempotent no-op.
type OpenAccount struct {
	AccountID      uuid.UUID
	Owner          string
	InitialBalance Cents
	OccurredAt     OccurredAtTS

	state Account
}

// BuildOpenAccountCommand creates a new OpenAccount command.
func BuildOpenAccountCommand(accountID uuid.UUID, owner string, initialBalance Cents, occurredAt time.Time) OpenAccount {
	return OpenAccount{
		AccountID:      accountID,
		Owner:          owner,
		InitialBalance: initialBalance,
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

// CommandType returns the type identifier for this command.
func (c OpenAccount) CommandType() string {
	return openAccountCommandType
}

// EventStreamID identifies the account's event stream.
func (c OpenAccount) EventStreamID() eventstream.StreamID {
	return eventstream.StreamIDFromUUID(c.AccountID)
}

// EmptyState returns the account state before any event.
func (c OpenAccount) EmptyState() Account {
	return EmptyAccount()
}

// Handle decides whether the account can be opened.
func (c OpenAccount) Handle() ([]Event, error) {
	if c.InitialBalance < 0 {
		return nil, ErrNegativeInitialBalance
	}

	if c.state.IsOpen {
		return nil, nil // idempotency - the account is already open, nothing to append
	}

	return []Event{BuildAccountOpened(c.AccountID, c.Owner, c.InitialBalance, c.OccurredAt)}, nil
}

// WithState returns a copy of the command carrying the given state.
func (c OpenAccount) WithState(state Account) execute.Command[Event, Account] {
	c.state = state
	return c
}
