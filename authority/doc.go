// Package authority derives the adjuster authority metric from a pair of
// fitted damping curves: the share of damping force the external adjuster
// knob removes relative to the fully-open state.
//
// Two variants are provided. Compute evaluates both fitted curves at a
// single reference velocity and reports (F_full − F_adj) / F_full × 100.
// Peak reports the maximum per-sample ratio of the raw measurements, which
// is the headline number the original shop tool displayed. Both are
// classified against the 15–20% target band: an adjuster below the band has
// little real effect, one above it is doing too much of the damping job.
package authority
