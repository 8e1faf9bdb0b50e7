// Package session records completed analysis runs.
//
// Each run is appended as one JSON line to a log file under the data
// directory, keyed by a fingerprint of the measurement set so duplicate
// submissions are recognizable. A finished session can be exported as a
// single compressed archive for sharing or retention.
//
// The core fitting and metric packages know nothing about this layer; a
// record is built from their outputs after a run succeeds, and nothing is
// written when any part of the run fails.
package session
