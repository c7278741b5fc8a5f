package database

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	"github.com/piket-xe8/piket-backend-go/internal/domain/pelanggaran"
	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/domain/setting"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
)

// DocumentKey is the KV key holding the aggregate document.
const DocumentKey = "piket_database_backup"

// Document is the full application dataset, persisted as one blob and
// rewritten whole on every mutation. No partial writes exist; the
// design is bound to a single process owning the data directory.
type Document struct {
	Students      []student.Student         `json:"students"`
	Admins        []user.Admin              `json:"admins"`
	Schedule      schedule.Schedule         `json:"schedule"`
	Absensi       []absensi.Absensi         `json:"absensi"`
	Laporan       []laporan.Laporan         `json:"laporan"`
	Pelanggaran   []pelanggaran.Pelanggaran `json:"pelanggaran"`
	Settings      setting.AppSettings       `json:"settings"`
	XPLogs        []student.XPLog           `json:"xp_logs"`
	Notifications []notification.Notification `json:"notifications"`
}

// DB owns the in-memory document and its persistence. It is
// constructed once at startup and injected into every repository.
// Update serializes read-modify-write sequences; the in-memory copy
// stays authoritative when persisting fails.
type DB struct {
	kv   *localdb.KV
	mu   sync.Mutex
	doc  Document
	seed func() Document
}

// New loads the persisted document, falling back to the seed dataset
// when the stored copy is absent or unparsable, and back-fills missing
// collections so documents written by older builds keep working.
func New(kv *localdb.KV, seed func() Document) (*DB, error) {
	db := &DB{
		kv:   kv,
		seed: seed,
	}
	if err := db.load(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *DB) load() error {
	data, ok, err := db.kv.Get(DocumentKey)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if !ok {
		slog.Info("No persisted document found, seeding defaults")
		db.doc = db.seed()
		db.persist()
		return nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Error("Persisted document unparsable, resetting to defaults", "error", err)
		db.doc = db.seed()
		db.persist()
		return nil
	}

	backfill(&doc)
	db.doc = doc
	return nil
}

// backfill guarantees every top-level collection exists, for forward
// compatibility with documents persisted before a collection was added.
func backfill(doc *Document) {
	if doc.Students == nil {
		doc.Students = []student.Student{}
	}
	if doc.Admins == nil {
		doc.Admins = []user.Admin{}
	}
	if doc.Schedule == nil {
		doc.Schedule = schedule.Schedule{}
	}
	if doc.Absensi == nil {
		doc.Absensi = []absensi.Absensi{}
	}
	if doc.Laporan == nil {
		doc.Laporan = []laporan.Laporan{}
	}
	if doc.Pelanggaran == nil {
		doc.Pelanggaran = []pelanggaran.Pelanggaran{}
	}
	if doc.XPLogs == nil {
		doc.XPLogs = []student.XPLog{}
	}
	if doc.Notifications == nil {
		doc.Notifications = []notification.Notification{}
	}
}

// persist writes the whole document. Failure is logged, never fatal:
// the in-memory copy remains authoritative for the session.
func (db *DB) persist() {
	data, err := json.Marshal(db.doc)
	if err != nil {
		slog.Error("Failed to marshal document", "error", err)
		return
	}
	if err := db.kv.Set(DocumentKey, data); err != nil {
		slog.Error("Failed to persist document, in-memory copy stays authoritative", "error", err)
	}
}

// View runs fn with read access to the document. fn must not retain
// references to slices past the call; copy what you return.
func (db *DB) View(fn func(doc *Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return fn(&db.doc)
}

// Update runs fn as one atomic read-modify-write over the whole
// document and persists the result.
func (db *DB) Update(fn func(doc *Document) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if err := fn(&db.doc); err != nil {
		return err
	}
	db.persist()
	return nil
}

// Today returns the local date in the store's canonical YYYY-MM-DD form.
func Today() string {
	return time.Now().Format("2006-01-02")
}
