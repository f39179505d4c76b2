package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq" // For pq.Error

	"landing_cms_backend/internal/database"
	"landing_cms_backend/internal/models"
)

// KVRepository is the key-value persistence capability: text values under string keys.
// Put overwrites unconditionally; concurrent writers race and the last one wins.
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error) // ErrNotFound when absent
	Put(ctx context.Context, key, value string) error
}

// sqlKVRepository stores entries in the kv_entries table of Postgres or SQLite.
type sqlKVRepository struct {
	db        SQLExecutor
	driver    string
	namespace string
}

// NewSQLKVRepository creates a KVRepository over db. driver is one of the database.Driver* names.
func NewSQLKVRepository(db SQLExecutor, driver, namespace string) KVRepository {
	return &sqlKVRepository{db: db, driver: driver, namespace: namespace}
}

// rebind rewrites ? placeholders to $n for Postgres.
func (r *sqlKVRepository) rebind(query string) string {
	if r.driver != database.DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (r *sqlKVRepository) Get(ctx context.Context, key string) (string, error) {
	query := r.rebind(`SELECT value FROM kv_entries WHERE namespace = ? AND key = ?`)

	var value string
	err := r.db.QueryRowContext(ctx, query, r.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrapDriverError(err, "reading key "+key)
	}
	return value, nil
}

func (r *sqlKVRepository) Put(ctx context.Context, key, value string) error {
	query := r.rebind(`INSERT INTO kv_entries (namespace, key, value, updated_at)
	          VALUES (?, ?, ?, ?)
	          ON CONFLICT (namespace, key) DO UPDATE SET
	            value = excluded.value,
	            updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, r.namespace, key, value, time.Now().UTC()); err != nil {
		return wrapDriverError(err, "writing key "+key)
	}
	return nil
}

func wrapDriverError(err error, action string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %s (code: %s)", ErrDatabaseError, action, pqErr.Message, pqErr.Code.Name())
	}
	return fmt.Errorf("%w: %s: %v", ErrDatabaseError, action, err)
}

// memoryKVRepository keeps entries in process memory. Used for the memory backend and tests.
type memoryKVRepository struct {
	mu        sync.RWMutex
	namespace string
	entries   map[string]models.KVEntry
}

// NewMemoryKVRepository creates an empty in-process KVRepository.
func NewMemoryKVRepository(namespace string) KVRepository {
	return &memoryKVRepository{namespace: namespace, entries: make(map[string]models.KVEntry)}
}

func (r *memoryKVRepository) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return entry.Value, nil
}

func (r *memoryKVRepository) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = models.KVEntry{Namespace: r.namespace, Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return nil
}
