// Package log provides centralised audit logging for rulelint runs.
// Entries are stored in ~/.rulelint/log/rulelint-log.db and track every
// command invocation across workspaces.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("check:run", "check").
//		Root(dir).
//		Files(report.Files).
//		Violations(len(report.Violations)).
//		Write(err)
//
//	log.Event("inspect:ls", "list").
//		Root(dir).
//		Detail("count", len(rules)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}", e.g.
// "check:run", "check:watch", "inspect:fmt", "core:init".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "check:run", "inspect:fmt"
	Action string // verb: check, list, format, init, etc.
	Root   string // rules directory the command operated on

	// Outcome fields - populated after the pass completes
	Files      int // rule files examined
	Violations int // violations found

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the command succeeded (violations still count as success)
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated, in the format
// "{extension}:{command}". The action describes what was performed:
// "check", "list", "read", "format", "init", "watch", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Root sets the rules directory this operation examined.
func (b *Builder) Root(dir string) *Builder {
	b.entry.Root = dir
	return b
}

// Files sets the number of rule files examined.
func (b *Builder) Files(n int) *Builder {
	b.entry.Files = n
	return b
}

// Violations sets the number of violations found.
//
// A run that finds violations still logs as successful: the tool did its
// job. Only operational failures (bad config, unreadable database) log as
// errors.
func (b *Builder) Violations(n int) *Builder {
	b.entry.Violations = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// watch-triggered paths, config keys, scaffold locations, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetWorkspace sets the workspace identifier for subsequent log entries.
// The dir should be the absolute path to the workspace root.
func SetWorkspace(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.workspace = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
