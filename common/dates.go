package common

import (
	"iter"
	"time"
)

// Months returns the sequence of (year, month) from the month of start to the month of end, both included.
// The day of month is ignored. The sequence is empty if end is in a month before start.
func Months(start, end time.Time) iter.Seq2[int, time.Month] {
	first := 12*start.Year() + int(start.Month()) - 1
	last := 12*end.Year() + int(end.Month()) - 1
	return func(yield func(int, time.Month) bool) {
		for ym := first; ym <= last; ym++ {
			if !yield(ym/12, time.Month(ym%12+1)) {
				return
			}
		}
	}
}

// Date returns the calendar date of t as UTC midnight
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
