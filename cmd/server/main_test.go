package main

import (
	"context"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"landing_cms_backend/internal/config"
)

func TestOpenKVRepositoryMemory(t *testing.T) {
	g := NewWithT(t)

	repo, db, err := openKVRepository(&config.Config{KVBackend: config.BackendMemory, KVNamespace: "ns"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(db).To(BeNil())
	g.Expect(repo.Put(context.Background(), "config", "{}")).To(Succeed())
}

func TestOpenKVRepositorySqlite(t *testing.T) {
	g := NewWithT(t)
	cfg := &config.Config{
		KVBackend:   config.BackendSqlite,
		KVNamespace: "ns",
		SqlitePath:  filepath.Join(t.TempDir(), "cms.db"),
	}

	repo, db, err := openKVRepository(cfg)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(db).NotTo(BeNil())
	defer func() { _ = db.Close() }()

	g.Expect(repo.Put(context.Background(), "config", `{"siteTitle":"x"}`)).To(Succeed())
	got, err := repo.Get(context.Background(), "config")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(`{"siteTitle":"x"}`))
}
