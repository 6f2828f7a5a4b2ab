package internal

import (
	"strings"
	"sync"
)

// Collects log output during a run so that it can be printed after the
// formatted numbers rather than in between them.
type LogWriter struct {
	lock   sync.Mutex
	buffer strings.Builder
}

func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Write(p)
}

func (lw *LogWriter) String() string {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.String()
}

// True if nothing has been logged
func (lw *LogWriter) IsEmpty() bool {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Len() == 0
}
