package cost

import "fmt"

// ModelError reports an input or intermediate value the cost model refuses
// to work with. Costs are never clamped into range; a bad value fails the
// whole estimate.
type ModelError struct {
	Account string
	Reason  string
}

func (e *ModelError) Error() string {
	if e.Account == "" {
		return "cost model: " + e.Reason
	}
	return fmt.Sprintf("cost model: account %s: %s", e.Account, e.Reason)
}

func modelErrf(account, format string, args ...any) *ModelError {
	return &ModelError{Account: account, Reason: fmt.Sprintf(format, args...)}
}
