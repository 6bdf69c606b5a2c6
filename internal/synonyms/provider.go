package synonyms

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

// Provider supplies the synonym table to matchers. Implementations must be
// safe for concurrent use; tables returned are immutable once loaded.
type Provider interface {
	Table() Table
}

// Static is a Provider backed by a fixed in-memory table.
type Static struct {
	table Table
}

// NewStatic returns a Provider that always serves the given table.
func NewStatic(table Table) *Static {
	if table == nil {
		table = Table{}
	}
	return &Static{table: table}
}

// NewDefault returns a Provider serving the built-in table.
func NewDefault() *Static {
	return &Static{table: DefaultTable()}
}

// Table implements Provider.
func (s *Static) Table() Table {
	return s.table
}

// File is a Provider that lazily loads a JSON synonym table from disk,
// layered over a base table, and caches it for the process lifetime.
// The load happens at most once until Invalidate is called. A missing or
// malformed file logs a warning and falls back to the base table alone;
// keyword matching then degrades gracefully.
type File struct {
	path   string
	base   Table
	logger *zap.Logger

	mu     sync.Mutex
	loaded bool
	table  Table
}

// NewFile returns a file-backed Provider. base may be nil for an empty base;
// logger may be nil to suppress the warning path.
func NewFile(path string, base Table, logger *zap.Logger) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	if base == nil {
		base = Table{}
	}
	return &File{path: path, base: base, logger: logger}
}

// Table implements Provider with a double-checked lazy load.
func (f *File) Table() Table {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loaded {
		return f.table
	}
	f.table = f.load()
	f.loaded = true
	return f.table
}

// Invalidate discards the cached table; the next Table call reloads it.
func (f *File) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = false
	f.table = nil
}

func (f *File) load() Table {
	data, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Warn("synonym table unreadable, falling back to base table",
			zap.String("path", f.path), zap.Error(err))
		return f.base
	}

	parsed, err := ParseTable(data)
	if err != nil {
		f.logger.Warn("synonym table malformed, falling back to base table",
			zap.String("path", f.path), zap.Error(err))
		return f.base
	}

	return f.base.Merge(parsed)
}
