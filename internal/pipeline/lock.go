package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the output-root lock.
var ErrLocked = errors.New("another tifconvert run is writing to this output directory")

// outputLock returns a flock on the output root directory itself, opened
// read-only so no lock file is created.
func outputLock(outputDir string) *flock.Flock {
	return flock.New(outputDir, flock.SetFlag(os.O_RDONLY))
}

// acquireLock takes an exclusive, non-blocking lock on outputDir. The caller
// must Unlock the returned lock.
func acquireLock(outputDir string) (*flock.Flock, error) {
	lock := outputLock(outputDir)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return lock, nil
}
