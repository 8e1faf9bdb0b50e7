// Package dyno defines the measurement records produced by a damper dyno
// run: six (velocity, force) rows captured once with the external adjuster
// fully closed (Adj-only) and once fully open (Full), for a single stroke
// direction.
//
// A MeasurementSet is constructed once from the collection layer and is
// immutable afterwards. Sample order carries no meaning for fitting; the six
// rows are treated as an unordered sample set.
package dyno
