package storage

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/flock"

	bitserrors "github.com/abatilo/tasks/internal/errors"
	"github.com/abatilo/tasks/internal/task"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store holds the task list and mirrors it to a single JSON file.
// A Store is not safe for concurrent use.
type Store struct {
	path   string
	tasks  []task.Task
	now    func() time.Time
	logger *slog.Logger
	noLock bool
	lock   *flock.Flock
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for overdue checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for load and save diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithoutLock disables the single-instance lock taken by Open.
func WithoutLock() Option {
	return func(s *Store) { s.noLock = true }
}

// NewStoreWithPath creates an empty Store backed by path. It neither locks nor loads.
func NewStoreWithPath(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store, takes the single-instance lock and loads the file.
// Close must be called to release the lock.
func Open(path string, opts ...Option) (*Store, error) {
	s := NewStoreWithPath(path, opts...)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, bitserrors.PersistenceError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}

	if !s.noLock {
		if err := s.acquireLock(); err != nil {
			return nil, err
		}
	}

	s.Load()
	return s, nil
}

// Close releases the single-instance lock.
func (s *Store) Close() error {
	return s.releaseLock()
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory list with the file contents. A missing,
// unreadable or malformed file leaves the store empty.
func (s *Store) Load() {
	s.tasks = nil

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no task file, starting empty", "path", s.path)
		return
	}
	if err != nil {
		s.logger.Debug("unreadable task file, starting empty", "path", s.path, "error", err)
		return
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		s.logger.Debug("malformed task file, starting empty", "path", s.path, "error", err)
		return
	}

	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
}

// Save writes the full list to the file, replacing it atomically.
func (s *Store) Save() error {
	data, err := EncodeTasks(s.tasks)
	if err != nil {
		return bitserrors.PersistenceError{Op: "encode", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return bitserrors.PersistenceError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return bitserrors.PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // no-op after a successful rename

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return bitserrors.PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	//nolint:gosec // G302: task files are user-readable like the rest of the data dir
	if err = tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return bitserrors.PersistenceError{Op: "chmod", Path: s.path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return bitserrors.PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err = os.Rename(tmpPath, s.path); err != nil {
		return bitserrors.PersistenceError{Op: "rename", Path: s.path, Err: err}
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(s.tasks))
	return nil
}

// Tasks returns a copy of the tasks in stored order.
func (s *Store) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// GenerateID returns the ID the next added task will receive.
func (s *Store) GenerateID() int {
	return task.NextID(s.tasks)
}

// OrderedView returns the tasks in display order with overdue flags.
func (s *Store) OrderedView() []task.Entry {
	return task.Order(s.tasks, s.now())
}

// AddTask validates input, appends a new task and persists the list.
// An empty dueDate means the task has no due date.
func (s *Store) AddTask(title, dueDate string, priority task.Priority) (task.Task, []task.Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.Task{}, nil, bitserrors.ValidationError{Field: "title", Reason: "title required"}
	}

	dueDate = strings.TrimSpace(dueDate)
	if dueDate != "" {
		if _, err := task.ParseDueDate(dueDate); err != nil {
			return task.Task{}, nil, bitserrors.ValidationError{Field: "due_date", Reason: "invalid date"}
		}
	}

	if !task.IsValidPriority(priority) {
		return task.Task{}, nil, bitserrors.ValidationError{Field: "priority", Reason: "invalid priority"}
	}

	t := task.Task{
		ID:       s.GenerateID(),
		Title:    title,
		DueDate:  dueDate,
		Priority: priority,
	}

	s.tasks = append(s.tasks, t)
	if err := s.Save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return task.Task{}, nil, err
	}
	return t, s.OrderedView(), nil
}

// MarkComplete marks a task completed. Completing a completed task is a no-op.
func (s *Store) MarkComplete(id int) ([]task.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, bitserrors.TaskNotFoundError{ID: id}
	}

	prev := s.tasks[i].Completed
	s.tasks[i].Completed = true
	if err := s.Save(); err != nil {
		s.tasks[i].Completed = prev
		return nil, err
	}
	return s.OrderedView(), nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id int) ([]task.Entry, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, bitserrors.TaskNotFoundError{ID: id}
	}

	prev := s.tasks
	s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
	if err := s.Save(); err != nil {
		s.tasks = prev
		return nil, err
	}
	return s.OrderedView(), nil
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}
