package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fenianpark/dampfit/compress"
	"github.com/fenianpark/dampfit/internal/options"
)

// DefaultDataDir matches the original tool's on-disk layout.
const DefaultDataDir = ".data"

// logFileName is the session log inside the data directory.
const logFileName = "session_log.jsonl"

// Log appends run records to a JSONL file under a data directory. Safe for
// concurrent use within one process; appends are serialized by a mutex.
type Log struct {
	mu    sync.Mutex
	dir   string
	clock func() time.Time
}

// Option is a functional option for a session log.
type Option = options.Option[*Log]

// WithDataDir overrides the data directory (default ".data").
func WithDataDir(dir string) Option {
	return options.NoError(func(l *Log) {
		l.dir = dir
	})
}

// WithClock overrides the time source. Used by tests to pin timestamps.
func WithClock(clock func() time.Time) Option {
	return options.NoError(func(l *Log) {
		l.clock = clock
	})
}

// NewLog creates a session log, creating the data directory if needed.
func NewLog(opts ...Option) (*Log, error) {
	l := &Log{
		dir:   DefaultDataDir,
		clock: time.Now,
	}
	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return l, nil
}

// Now returns the log's current time. Callers stamping records themselves
// should use this so test clocks stay in effect.
func (l *Log) Now() time.Time {
	return l.clock()
}

// Path returns the session log file path.
func (l *Log) Path() string {
	return filepath.Join(l.dir, logFileName)
}

// Append writes one record as a JSON line at the end of the log. A zero
// record timestamp is filled from the log's clock.
func (l *Log) Append(rec Record) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = l.clock().UTC()
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append session record: %w", err)
	}

	return f.Sync()
}

// Records reads back every record in the log, oldest first. A missing log
// file yields an empty slice.
func (l *Log) Records() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("decode session record: %w", err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session log: %w", err)
	}

	return records, nil
}

// Export compresses the whole session log through the given codec and
// writes it to dst. The live log stays untouched.
func (l *Log) Export(dst string, ct compress.Type) error {
	codec, err := compress.NewCodec(ct)
	if err != nil {
		return err
	}

	l.mu.Lock()
	data, err := os.ReadFile(l.Path())
	l.mu.Unlock()
	if err != nil {
		return fmt.Errorf("read session log: %w", err)
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress session archive: %w", err)
	}

	if err := os.WriteFile(dst, compressed, 0o644); err != nil {
		return fmt.Errorf("write session archive: %w", err)
	}

	return nil
}

// ReadArchive restores a session archive produced by Export with the given
// codec and decodes its records.
func ReadArchive(path string, ct compress.Type) ([]Record, error) {
	codec, err := compress.NewCodec(ct)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session archive: %w", err)
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress session archive: %w", err)
	}

	var records []Record
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("decode session record: %w", err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read session archive: %w", err)
	}

	return records, nil
}
