// Package export renders filtered report rows for external consumption:
// CSV with the fixed Indonesian header row, and a minimal line-per-row PDF.
package export

import "strconv"

// FormatRupiah formats a whole-rupiah amount as "Rp 1,234,567".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := "Rp " + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
