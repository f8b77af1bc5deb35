package triage

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanDismissItem evaluates whether an item may be dismissed.
// Rules:
// - Red items are never dismissible
// - The item's own Dismissible flag is authoritative otherwise
func CanDismissItem(it Item) GuardResult {
	if it.Severity == SeverityRed {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot dismiss %s: red items stay visible until resolved", it.ID),
		}
	}
	if !it.Dismissible {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot dismiss %s: item is not dismissible", it.ID),
		}
	}
	return GuardResult{Allowed: true}
}
