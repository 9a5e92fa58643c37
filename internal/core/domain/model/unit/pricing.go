package unit

import "github.com/shopspring/decimal"

const (
	// humidityPremiumMax is the top of the low humidity band [HumidityMin, humidityPremiumMax]
	// that carries a surcharge.
	humidityPremiumMax = 29

	// temperature levels in [TemperatureMin, coldPremiumMax] or
	// [hotPremiumMin, TemperatureMax] carry a surcharge.
	coldPremiumMax = 49
	hotPremiumMin  = 65
)

var (
	StandardRate         = decimal.NewFromInt(75)
	HumidityRatePerSqFt  = decimal.NewFromInt(5)
	HumiditySurcharge    = decimal.NewFromInt(20)
	TemperatureRatePerFt = decimal.NewFromInt(1)
	TemperatureSurcharge = decimal.NewFromInt(30)
)

// KindPrice is the part of the monthly price that depends on the unit's
// kind, on top of the location base price.
func (u *Unit) KindPrice() decimal.Decimal {
	switch u.kind {
	case Standard:
		return StandardRate
	case Humidity:
		price := decimal.NewFromInt(int64(u.dimensions.Area())).Mul(HumidityRatePerSqFt)
		if u.level >= HumidityMin && u.level <= humidityPremiumMax {
			price = price.Add(HumiditySurcharge)
		}
		return price
	case Temperature:
		price := decimal.NewFromInt(int64(u.dimensions.Volume())).Mul(TemperatureRatePerFt)
		if isExtremeTemperature(u.level) {
			price = price.Add(TemperatureSurcharge)
		}
		return price
	default:
		return decimal.Zero
	}
}

func isExtremeTemperature(level int) bool {
	return (level >= TemperatureMin && level <= coldPremiumMax) ||
		(level >= hotPremiumMin && level <= TemperatureMax)
}
