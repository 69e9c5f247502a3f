//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// ValidationError indicates rejected input on add; nothing was changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// TaskNotFoundError indicates no task has the given ID.
type TaskNotFoundError struct {
	ID int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// PersistenceError indicates the task file could not be written.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}

// LockedError indicates another process holds the task file.
type LockedError struct {
	Path string
}

func (e LockedError) Error() string {
	return fmt.Sprintf("task file %s is in use by another process", e.Path)
}

// InvalidIDError indicates a task ID argument is not a positive integer.
type InvalidIDError struct {
	Value string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid task id: %q", e.Value)
}

// InvalidPriorityError indicates an unknown priority name.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: low, medium, high)", e.Value)
}

// UnsupportedFormatError indicates an unknown export format.
type UnsupportedFormatError struct {
	Format string
}

func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s (valid: json, yaml, toml)", e.Format)
}

// ConfigError indicates the config file exists but could not be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}
