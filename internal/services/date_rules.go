package services

import (
	"time"

	"leasingcrm/internal/models"
)

// Contract end arithmetic. time.AddDate normalizes overflow (Jan 31 + 1
// month = Mar 2/3), which is not what a leasing contract does: the end
// day clamps to the last valid day of the target month.

// AddMonthsClamped advances t by months whole calendar months, keeping
// the day of month where valid and clamping otherwise (Jan 31 + 1 =
// Feb 28, or Feb 29 on a leap year).
func AddMonthsClamped(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	month := time.Month(total%12 + 1)
	if total < 0 {
		// Go's integer division truncates toward zero; steer negative
		// month offsets back into the 1..12 range.
		year = t.Year() + (total-11)/12
		month = time.Month((total%12+12)%12 + 1)
	}
	day := t.Day()
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DeriveContractEnd computes delivery + duration months, or nil when
// either input is absent. Pure: calling it twice with the same inputs
// yields the same output, and it is re-run on every save.
func DeriveContractEnd(delivery *models.Date, durationMonths int) *models.Date {
	if delivery == nil || delivery.IsZero() || durationMonths <= 0 {
		return nil
	}
	end := models.DateOf(AddMonthsClamped(delivery.Time, durationMonths))
	return &end
}

// DaysRemaining returns the number of whole days from today until the
// contract end, rounded up. Negative means overdue; nil means no
// contract end is known. Display-only, never an error.
func DaysRemaining(end *models.Date, today time.Time) *int {
	if end == nil || end.IsZero() {
		return nil
	}
	from := models.DateOf(today)
	hours := end.Sub(from.Time).Hours()
	days := int(hours / 24)
	if hours > float64(days*24) {
		days++
	}
	return &days
}
