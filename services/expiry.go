package services

import "time"

// ExpiryWindowDays matches the pricing API's "por vencer" horizon: tariffs
// whose validity ends within this many days are flagged.
const ExpiryWindowDays = 20

// ExpiryStatus classifies a tariff by its validity end date.
type ExpiryStatus string

const (
	ExpiryVigente   ExpiryStatus = "vigente"
	ExpiryPorVencer ExpiryStatus = "por_vencer"
	ExpiryVencida   ExpiryStatus = "vencida"
	ExpiryUnknown   ExpiryStatus = ""
)

// dateLayouts are the formats validity dates arrive in. The API emits
// RFC 1123 strings for datetime columns and plain dates elsewhere.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC1123,
	"2006-01-02T15:04:05",
}

// ParseAPIDate parses a date string in any of the formats the pricing API
// uses. ok is false when the value is empty or unrecognized.
func ParseAPIDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntilExpiry returns whole days from now until the validity end date.
// Negative values mean the tariff already expired.
func DaysUntilExpiry(vigenciaFinal string, now time.Time) (int, bool) {
	end, ok := ParseAPIDate(vigenciaFinal)
	if !ok {
		return 0, false
	}
	days := int(end.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	return days, true
}

// ClassifyExpiry buckets a tariff by how close its validity end is.
func ClassifyExpiry(vigenciaFinal string, now time.Time) ExpiryStatus {
	days, ok := DaysUntilExpiry(vigenciaFinal, now)
	if !ok {
		return ExpiryUnknown
	}
	switch {
	case days < 0:
		return ExpiryVencida
	case days <= ExpiryWindowDays:
		return ExpiryPorVencer
	default:
		return ExpiryVigente
	}
}
