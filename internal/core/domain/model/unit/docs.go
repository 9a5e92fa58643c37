// Package unit contains the storage unit entity and its pricing.
//
// A unit is one of three kinds, Standard, Humidity or Temperature, carried as
// a Kind tag rather than as separate types. KindPrice dispatches on the tag:
//
//   - Standard: a flat StandardRate
//   - Humidity: floor area times HumidityRatePerSqFt, plus HumiditySurcharge
//     for levels 20 through 29
//   - Temperature: volume times TemperatureRatePerFt, plus TemperatureSurcharge
//     for levels 45 through 49 and 65 through 70
//
// Price adds the owning location's base price while the unit is rented.
package unit
