package scheduler

import (
	"errors"
	"fmt"
)

// ErrConsistency marks allocation results that violate the relationship
// between corpus size and yearly capacity. It is never expected in normal
// operation.
var ErrConsistency = errors.New("allocation consistency fault")

// ConsistencyFault reports a full-year plan that did not allocate exactly
// the corpus total.
type ConsistencyFault struct {
	Year      int
	Total     int
	Allocated int
	Leftover  int
}

func (e *ConsistencyFault) Error() string {
	return fmt.Sprintf("plan for %d did not finish exactly: total=%d allocated=%d leftover=%d",
		e.Year, e.Total, e.Allocated, e.Leftover)
}

func (e *ConsistencyFault) Unwrap() error {
	return ErrConsistency
}
