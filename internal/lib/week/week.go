// Package week содержит арифметику ISO-недели (понедельник-воскресенье).
package week

import "time"

// Range возвращает границы недели, в которую попадает момент t:
// понедельник 00:00:00 и воскресенье 23:59:59.999 в той же временной зоне.
func Range(t time.Time) (start, end time.Time) {
	dayOfWeek := int(t.Weekday()) // 0 = воскресенье
	offset := 1 - dayOfWeek
	if dayOfWeek == 0 {
		offset = -6
	}

	start = time.Date(t.Year(), t.Month(), t.Day()+offset, 0, 0, 0, 0, t.Location())
	end = time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}

// ToISODate форматирует дату как YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
