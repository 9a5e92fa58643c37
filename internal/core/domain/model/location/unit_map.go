package location

import (
	"fmt"
	"strings"

	"storage/internal/core/domain/model/unit"
)

// ScreenWidth is the width of the rules framing the unit map title.
const ScreenWidth = 60

// UnitMap renders the grid as fixed-width text, one line per row. Rented
// climate-controlled units show their level (H30, T50), rented standard units
// show S*, and vacant units show their sign followed by "__". It never
// changes any unit.
func (l *Location) UnitMap() string {
	var b strings.Builder

	rule := strings.Repeat("-", ScreenWidth)
	title := "Unit Map for Location " + l.designation

	b.WriteString(rule + "\n")
	if pad := (ScreenWidth - len(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n\n     ")

	for slot := range StandardSlots {
		fmt.Fprintf(&b, "%d    ", slot)
	}
	b.WriteString("\n\n")

	for row, units := range l.units {
		fmt.Fprintf(&b, "%02d:  ", row)
		for _, u := range units {
			sign := u.Kind().Sign()
			switch {
			case !u.IsRented():
				b.WriteString(sign + "__  ")
			case u.Kind() == unit.Standard:
				b.WriteString(sign + "*   ")
			default:
				fmt.Fprintf(&b, "%s%d  ", sign, u.Level())
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
