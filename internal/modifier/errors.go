package modifier

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is; the typed errors below carry details.
var (
	ErrUnknownModifier  = errors.New("unknown modifier")
	ErrIncompatiblePair = errors.New("incompatible modifiers")
	ErrOverBudget       = errors.New("loadout outside budget")
)

// UnknownModifierError reports an id absent from the catalog.
type UnknownModifierError struct {
	ID         string
	Suggestion string // closest known id, empty if none is close
}

func (e *UnknownModifierError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown modifier %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("unknown modifier %q", e.ID)
}

// Is matches ErrUnknownModifier.
func (e *UnknownModifierError) Is(target error) bool {
	return target == ErrUnknownModifier
}

// IncompatiblePairError reports two selected modifiers that conflict.
// A precedes B in catalog declaration order.
type IncompatiblePairError struct {
	A, B string
}

func (e *IncompatiblePairError) Error() string {
	return fmt.Sprintf("modifiers %q and %q are incompatible", e.A, e.B)
}

// Is matches ErrIncompatiblePair.
func (e *IncompatiblePairError) Is(target error) bool {
	return target == ErrIncompatiblePair
}

// BudgetError reports a total cost outside the allowed range.
type BudgetError struct {
	Cost   int
	Budget Budget
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("loadout costs %d DP, allowed range is [%d, %d]", e.Cost, e.Budget.Min, e.Budget.Max)
}

// Is matches ErrOverBudget.
func (e *BudgetError) Is(target error) bool {
	return target == ErrOverBudget
}
