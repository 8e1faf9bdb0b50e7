// Package compress provides the compression codecs used for session
// archive export.
//
// Session logs are plain JSONL while a session is live; when a technician
// exports a session for sharing or long-term retention the whole log is
// compressed through one of these codecs. Zstd gives the best ratio for
// archival, S2 and LZ4 trade ratio for speed, and Noop keeps the archive
// readable for debugging.
package compress
