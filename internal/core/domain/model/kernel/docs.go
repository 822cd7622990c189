// Package kernel provides shared value objects used across domain
// aggregates.
//
// The package contains Price, the fixed-point money type every monetary
// field in the system is expressed in. Prices carry two decimal places and
// round half-up, so totals are reproducible and free of binary
// floating-point drift.
package kernel
