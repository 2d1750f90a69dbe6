package models

// Months lists the twelve canonical English payment month names, in calendar
// order. Payment months are stored in this canonical form; anything else
// breaks recap month-column lookups, so ingestion validates against this set.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// indonesianMonths maps canonical month names to their display form.
var indonesianMonths = map[string]string{
	"January":   "Januari",
	"February":  "Februari",
	"March":     "Maret",
	"April":     "April",
	"May":       "Mei",
	"June":      "Juni",
	"July":      "Juli",
	"August":    "Agustus",
	"September": "September",
	"October":   "Oktober",
	"November":  "November",
	"December":  "Desember",
}

var validMonths = func() map[string]bool {
	m := make(map[string]bool, len(Months))
	for _, name := range Months {
		m[name] = true
	}
	return m
}()

// IsPaymentMonth reports whether name is a canonical English month name.
func IsPaymentMonth(name string) bool {
	return validMonths[name]
}

// IndonesianMonth returns the Indonesian display name for a canonical month.
// Unknown values pass through unchanged.
func IndonesianMonth(name string) string {
	if indo, ok := indonesianMonths[name]; ok {
		return indo
	}
	return name
}
