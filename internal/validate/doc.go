// Package validate performs static checks on generated Velocity templates
// and conformance checks of rendered XML against an XSD.
//
// None of the checks return Go errors. Each returns a validity flag together
// with the diagnostics it found; warnings never affect the flag.
package validate
