package shipping

import (
	"github.com/resale/backend/internal/domain/shared/valueobject"
)

// Quote is the selected shipping option for a weight/destination pair.
// Immutable, constructed once per calculation.
type Quote struct {
	Method       Method
	Cost         valueobject.Money // always JPY
	Zone         Zone
	DeliveryDays string
}

// CheaperThan reports whether this quote beats the other, applying the fixed
// method priority order as the tie-break on equal cost
func (q Quote) CheaperThan(other Quote) bool {
	if !q.Cost.Equals(other.Cost) {
		less, err := q.Cost.LessThan(other.Cost)
		if err != nil {
			return false
		}
		return less
	}
	return q.Method.Priority() < other.Method.Priority()
}
