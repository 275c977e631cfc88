// Package units defines the system of units used by configuration values.
//
// Base units are the nanosecond, the millimeter, the mega-electron-volt and
// the positron charge. A quantity in a configuration document is a plain
// number in these units, so 0.5 µs is written as 500 and a gain of
// 14 mV/fC as 14*MilliVolt/FemtoCoulomb.
package units

// Time.
const (
	Nanosecond  = 1.0
	Microsecond = 1e3 * Nanosecond
	Millisecond = 1e6 * Nanosecond
	Second      = 1e9 * Nanosecond
)

// Length.
const (
	Millimeter = 1.0
	Centimeter = 10 * Millimeter
	Meter      = 1000 * Millimeter
)

// Charge and energy.
const (
	EPlus          = 1.0
	ElectronCharge = 1.602176634e-19 // coulomb per positron charge
	Coulomb        = EPlus / ElectronCharge
	FemtoCoulomb   = 1e-15 * Coulomb

	MegaElectronVolt = 1.0
	ElectronVolt     = 1e-6 * MegaElectronVolt
	Joule            = ElectronVolt / ElectronCharge
)

// Potential.
const (
	MegaVolt  = MegaElectronVolt / EPlus
	Volt      = 1e-6 * MegaVolt
	MilliVolt = 1e-3 * Volt
)

// GainUnit is the customary unit of front-end electronics gain.
const GainUnit = MilliVolt / FemtoCoulomb
