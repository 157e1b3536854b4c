package dashboard

import (
	"fmt"
	"math"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// DaysRemaining is the number of days until deadline, rounded up.
// Negative values mean the deadline has passed.
func DaysRemaining(deadline, now time.Time) int {
	diff := deadline.Sub(now).Milliseconds()
	return int(math.Ceil(float64(diff) / millisPerDay))
}

// Countdown formats a DaysRemaining result.
func Countdown(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("%d days remaining", days)
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d days overdue", -days)
	}
}
