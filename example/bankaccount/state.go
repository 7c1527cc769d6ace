package bankaccount

// Account represents the current state of a bank account, projected from its
// event history. It is a cheap, disposable value: the execution engine
// rebuilds it from scratch on every attempt.
type Account struct {
	IsOpen  bool
	Owner   string
	Balance Cents
}

// EmptyAccount returns the starting state before any event was applied.
func EmptyAccount() Account {
	return Account{}
}

// Apply advances the account state by one event. Pure function: no side
// effects, deterministic for the same event.
func (a Account) Apply(event Event) Account {
	switch e := event.(type) {
	case AccountOpened:
		return Account{
			IsOpen:  true,
			Owner:   e.Owner,
			Balance: e.InitialBalance,
		}

	case AmountDeposited:
		a.Balance += e.Amount
		return a

	case AmountWithdrawn:
		a.Balance -= e.Amount
		return a

	default:
		return a
	}
}
