package vacation

import (
	"errors"
	"fmt"
)

var ErrBookingNotFound = errors.New("vacation booking not found")

// InsufficientBalanceError reports how many days the employee still has
// when a paid booking asks for more.
type InsufficientBalanceError struct {
	Requested int
	Remaining int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient vacation balance: requested %d days, %d remaining", e.Requested, e.Remaining)
}
