package repositories

import (
	"context"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"landing_cms_backend/internal/database"
)

func newSqliteRepo(t *testing.T, namespace string) (KVRepository, func()) {
	t.Helper()
	db, err := database.OpenSqlite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("OpenSqlite: %v", err)
	}
	return NewSQLKVRepository(db, database.DriverSqlite, namespace), func() { _ = db.Close() }
}

func exerciseKV(t *testing.T, repo KVRepository) {
	g := NewWithT(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "config")
	g.Expect(err).To(MatchError(ErrNotFound))

	g.Expect(repo.Put(ctx, "config", `{"siteTitle":"A"}`)).To(Succeed())
	got, err := repo.Get(ctx, "config")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(`{"siteTitle":"A"}`))

	g.Expect(repo.Put(ctx, "config", `{"siteTitle":"B"}`)).To(Succeed())
	got, err = repo.Get(ctx, "config")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(`{"siteTitle":"B"}`))

	_, err = repo.Get(ctx, "other")
	g.Expect(err).To(MatchError(ErrNotFound))
}

func TestMemoryKVRepository(t *testing.T) {
	exerciseKV(t, NewMemoryKVRepository("IMAGE_CONFIG_KV"))
}

func TestMemoryKVRepositoryHonoursContext(t *testing.T) {
	g := NewWithT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemoryKVRepository("ns")
	g.Expect(repo.Put(ctx, "k", "v")).To(MatchError(context.Canceled))
	_, err := repo.Get(ctx, "k")
	g.Expect(err).To(MatchError(context.Canceled))
}

func TestSqliteKVRepository(t *testing.T) {
	repo, closeDB := newSqliteRepo(t, "IMAGE_CONFIG_KV")
	defer closeDB()
	exerciseKV(t, repo)
}

func TestSqliteKVRepositoryNamespacesAreIsolated(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	db, err := database.OpenSqlite(filepath.Join(t.TempDir(), "kv.db"))
	g.Expect(err).NotTo(HaveOccurred())
	defer func() { _ = db.Close() }()

	a := NewSQLKVRepository(db, database.DriverSqlite, "A")
	b := NewSQLKVRepository(db, database.DriverSqlite, "B")

	g.Expect(a.Put(ctx, "config", "1")).To(Succeed())
	_, err = b.Get(ctx, "config")
	g.Expect(err).To(MatchError(ErrNotFound))
}

func TestRebindForPostgres(t *testing.T) {
	g := NewWithT(t)
	pg := &sqlKVRepository{driver: database.DriverPostgres}
	lite := &sqlKVRepository{driver: database.DriverSqlite}

	q := "SELECT value FROM kv_entries WHERE namespace = ? AND key = ?"
	g.Expect(pg.rebind(q)).To(Equal("SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2"))
	g.Expect(lite.rebind(q)).To(Equal(q))
}
