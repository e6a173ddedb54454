package organizer

import "strings"

// Frequency defines how often a flow item recurs.
type Frequency int

const (
	Monthly Frequency = iota
	Weekly
	Biweekly
	Annual
)

func (f Frequency) String() string {
	switch f {
	case Weekly:
		return "weekly"
	case Biweekly:
		return "biweekly"
	case Annual:
		return "annual"
	default:
		return "monthly"
	}
}

// ParseFrequency parses a frequency string. Unrecognized or empty values
// fall back to Monthly; this is the documented behavior, not an error.
func ParseFrequency(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly":
		return Weekly
	case "biweekly":
		return Biweekly
	case "annual":
		return Annual
	default:
		return Monthly
	}
}

// ToMonthly converts an amount recurring at this frequency to its
// monthly equivalent.
func (f Frequency) ToMonthly(amount Money) Money {
	switch f {
	case Weekly:
		return amount.MulInt(52).DivInt(12)
	case Biweekly:
		return amount.MulInt(26).DivInt(12)
	case Annual:
		return amount.DivInt(12)
	default:
		return amount
	}
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	// Unknown frequencies silently normalize to monthly.
	*f = ParseFrequency(strings.Trim(string(data), `"`))
	return nil
}
