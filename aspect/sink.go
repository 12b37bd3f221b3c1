package aspect

import (
	"io"
	"log/slog"
	"reflect"
	"runtime"
	"sync"

	"github.com/ardnew/calltrace/log"
)

// writerLock serializes the lines written to one shared writer.
type writerLock struct {
	sync.Mutex

	refs int
}

// writerLocks maps each pointer writer to the lock shared by every sink
// writing to it. An entry lives as long as one of those sinks is reachable.
var (
	writerLocksMu sync.Mutex
	writerLocks   = map[io.Writer]*writerLock{}
)

// sink writes whole trace lines to an [io.Writer].
type sink struct {
	mu sync.Locker
	w  io.Writer
}

// newSink returns a sink writing to w.
//
// Sinks writing to the same pointer writer, such as [os.Stdout] or a shared
// *bytes.Buffer, share one lock. Any other writer gets a private lock, so
// callers sharing such a writer between interceptors must serialize it
// themselves.
func newSink(w io.Writer) *sink {
	if !shareable(w) {
		return &sink{mu: &sync.Mutex{}, w: w}
	}

	s := &sink{mu: acquireLock(w), w: w}
	runtime.AddCleanup(s, releaseLock, w)

	return s
}

// shareable reports whether w can key the shared lock table. Only pointers
// are used: they always hash, and identity is what sharing means.
func shareable(w io.Writer) bool {
	return w != nil && reflect.TypeOf(w).Kind() == reflect.Pointer
}

func acquireLock(w io.Writer) *writerLock {
	writerLocksMu.Lock()
	defer writerLocksMu.Unlock()

	l, ok := writerLocks[w]
	if !ok {
		l = &writerLock{}
		writerLocks[w] = l
	}

	l.refs++

	return l
}

func releaseLock(w io.Writer) {
	writerLocksMu.Lock()
	defer writerLocksMu.Unlock()

	l, ok := writerLocks[w]
	if !ok {
		return
	}

	l.refs--
	if l.refs <= 0 {
		delete(writerLocks, w)
	}
}

// write emits line with a single call to Write.
// Failures are reported on the diagnostic logger and otherwise ignored.
func (s *sink) write(line []byte) {
	s.mu.Lock()
	_, err := s.w.Write(line)
	s.mu.Unlock()

	if err != nil {
		log.Warn("trace line dropped",
			slog.Any("error", err),
			slog.Int("bytes", len(line)),
		)
	}
}
