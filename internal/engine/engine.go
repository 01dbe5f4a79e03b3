package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"colDB/internal/sql"
	"colDB/internal/storage"
	"colDB/internal/storage/filestore"
	"colDB/internal/storage/memstore"
)

// DefaultFilePath is the database file used by SAVE and LOAD.
const DefaultFilePath = "database.db"

// ErrNotStarted is returned when a statement runs before Start.
var ErrNotStarted = errors.New("engine not started")

// Config configures a DBEngine.
type Config struct {
	// FilePath is the database file for SAVE and LOAD.
	FilePath string
	// MaxQueryLength bounds lines passed to ExecuteLine.
	MaxQueryLength int
	// Logger is optional; nil discards log output.
	Logger *slog.Logger
}

// DBEngine owns the live database and runs statements against it one at a
// time.
type DBEngine struct {
	mu      sync.Mutex
	started bool

	cfg    Config
	store  storage.Catalog
	files  *filestore.FileStore
	logger *slog.Logger
}

// New creates an engine with an empty database.
func New(cfg Config) *DBEngine {
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultFilePath
	}
	if cfg.MaxQueryLength <= 0 {
		cfg.MaxQueryLength = sql.DefaultMaxQueryLength
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &DBEngine{
		cfg:    cfg,
		store:  memstore.New(),
		files:  filestore.New(cfg.FilePath, logger),
		logger: logger,
	}
}

// Start marks the engine ready to run statements.
func (e *DBEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return fmt.Errorf("engine already started")
	}
	e.started = true
	e.logger.Info("engine started", "file", e.cfg.FilePath, "max_query_length", e.cfg.MaxQueryLength)
	return nil
}

// MaxQueryLength returns the longest accepted query line, in bytes.
func (e *DBEngine) MaxQueryLength() int { return e.cfg.MaxQueryLength }

// FilePath returns the database file used by SAVE and LOAD.
func (e *DBEngine) FilePath() string { return e.cfg.FilePath }

// Tables returns the names of all tables in creation order.
func (e *DBEngine) Tables() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Tables()
}

// ExecuteLine parses one query line and executes it.
func (e *DBEngine) ExecuteLine(ctx context.Context, line string) (*Result, error) {
	stmt, err := sql.ParseWithLimit(line, e.cfg.MaxQueryLength)
	if err != nil {
		return nil, err
	}
	return e.Execute(ctx, stmt)
}

// Execute runs a parsed statement. A statement that fails leaves the
// database exactly as it was.
func (e *DBEngine) Execute(ctx context.Context, stmt sql.Statement) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil, ErrNotStarted
	}

	e.logger.Debug("executing statement", "kind", fmt.Sprintf("%T", stmt))

	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreate(s)

	case *sql.InsertStmt:
		return e.executeInsert(s)

	case *sql.SelectStmt:
		return e.executeSelect(s)

	case *sql.SaveStmt:
		return e.executeSave()

	case *sql.LoadStmt:
		return e.executeLoad()

	case *sql.ExitStmt:
		return &Result{Exit: true}, nil

	default:
		return nil, fmt.Errorf("engine: unsupported statement type %T", stmt)
	}
}
