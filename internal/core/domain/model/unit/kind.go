package unit

import (
	"fmt"

	"storage/internal/pkg/errs"
)

// Kind tags the climate control a storage unit offers. Each kind has its own
// pricing rule and, for climate-controlled kinds, its own level range.
type Kind int

const (
	// Unknown is the zero value and is never valid for a unit.
	Unknown Kind = iota

	// Standard units have no climate control and a flat price.
	Standard

	// Humidity units hold a humidity level in [HumidityMin, HumidityMax].
	Humidity

	// Temperature units hold a temperature level in [TemperatureMin, TemperatureMax].
	Temperature
)

const (
	HumidityMin    = 20
	HumidityMax    = 60
	TemperatureMin = 45
	TemperatureMax = 70
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:     "Unknown",
		Standard:    "Standard",
		Humidity:    "Humidity",
		Temperature: "Temperature",
	}
}

func getKindSigns() map[Kind]string {
	return map[Kind]string{
		Standard:    "S",
		Humidity:    "H",
		Temperature: "T",
	}
}

// Kinds lists every valid kind in grid order.
func Kinds() []Kind {
	return []Kind{Standard, Humidity, Temperature}
}

func (k Kind) Validate() error {
	if _, ok := getKindSigns()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Sign is the one-letter marker used on the unit map.
func (k Kind) Sign() string {
	return getKindSigns()[k]
}

// LevelRange returns the inclusive level bounds of a climate-controlled kind.
// ok is false for kinds without a level.
func (k Kind) LevelRange() (minLevel int, maxLevel int, ok bool) {
	switch k {
	case Humidity:
		return HumidityMin, HumidityMax, true
	case Temperature:
		return TemperatureMin, TemperatureMax, true
	default:
		return 0, 0, false
	}
}

// ValidateLevel checks level against the kind's range.
func (k Kind) ValidateLevel(level int) error {
	minLevel, maxLevel, ok := k.LevelRange()
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"level is invalid",
			fmt.Errorf("%s units have no climate level", k),
		)
	}

	if level < minLevel || level > maxLevel {
		return errs.NewValueIsOutOfRangeError("level", level, minLevel, maxLevel)
	}

	return nil
}
