package valueobject

import (
	"fmt"
	"time"
)

var italianMonths = [12]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

// MonthName returns the Italian name of a 1-based month, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return italianMonths[month-1]
}

// FormatItalianDate renders t as "18 Ottobre 2026".
func FormatItalianDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthName(int(t.Month())), t.Year())
}
