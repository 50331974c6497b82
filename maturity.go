package sm2

import (
	"encoding"
	"fmt"
	"strings"
)

// MatureInterval is the interval, in days, from which a card counts as mature.
const MatureInterval = 21

// Maturity classifies how far along a card is.
// It serializes as its name in both text and JSON.
type Maturity int

const (
	New      Maturity = iota + 1 // Never scheduled.
	Learning                     // Interval below MatureInterval.
	Mature                       // Interval of at least MatureInterval.
)

var maturityNames = [...]string{New: "New", Learning: "Learning", Mature: "Mature"}

var (
	_ encoding.TextMarshaler   = Maturity(0)
	_ encoding.TextUnmarshaler = (*Maturity)(nil)
)

// MaturityOf classifies a schedule; nil is New.
func MaturityOf(info *ScheduleInfo) Maturity {
	switch {
	case info == nil:
		return New
	case info.Interval < MatureInterval:
		return Learning
	default:
		return Mature
	}
}

func (m Maturity) String() string {
	if m >= New && m <= Mature {
		return maturityNames[m]
	}
	return fmt.Sprintf("Maturity(%d)", int(m))
}

func (m Maturity) MarshalText() ([]byte, error) {
	if m < New || m > Mature {
		return nil, fmt.Errorf("sm2: no name for maturity %d", int(m))
	}
	return []byte(maturityNames[m]), nil
}

// UnmarshalText accepts a maturity name in any case.
func (m *Maturity) UnmarshalText(text []byte) error {
	for v := New; v <= Mature; v++ {
		if strings.EqualFold(string(text), maturityNames[v]) {
			*m = v
			return nil
		}
	}
	return fmt.Errorf("sm2: unknown maturity %q", text)
}
