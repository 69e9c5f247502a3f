package storage

import (
	"github.com/gofrs/flock"

	bitserrors "github.com/abatilo/tasks/internal/errors"
)

const lockSuffix = ".lock"

// acquireLock takes an exclusive, non-blocking lock next to the task file.
func (s *Store) acquireLock() error {
	fl := flock.New(s.path + lockSuffix)
	locked, err := fl.TryLock()
	if err != nil {
		return bitserrors.PersistenceError{Op: "lock", Path: fl.Path(), Err: err}
	}
	if !locked {
		return bitserrors.LockedError{Path: s.path}
	}
	s.lock = fl
	s.logger.Debug("acquired task file lock", "path", fl.Path())
	return nil
}

// releaseLock drops the lock if held. The lock file itself is left in place.
func (s *Store) releaseLock() error {
	if s.lock == nil {
		return nil
	}
	err := s.lock.Unlock()
	s.lock = nil
	return err
}
