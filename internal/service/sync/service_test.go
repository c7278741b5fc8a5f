package sync

import (
	"context"
	"encoding/json"
	"errors"
	gosync "sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piket-xe8/piket-backend-go/internal/config"
	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	syncdomain "github.com/piket-xe8/piket-backend-go/internal/domain/sync"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/cache"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/metrics"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/queue"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sse"
	repo "github.com/piket-xe8/piket-backend-go/internal/repository/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type fakeAPI struct {
	mu        gosync.Mutex
	fetches   int
	posts     int
	fetchData json.RawMessage
	fetchErr  error
	postErr   error
}

func (f *fakeAPI) Fetch(ctx context.Context, action string, params map[string]string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetchData, nil
}

func (f *fakeAPI) Post(ctx context.Context, action string, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts++
	return f.postErr
}

func (f *fakeAPI) Verify(ctx context.Context, action string) {}

func (f *fakeAPI) setFetchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchErr = err
}

func (f *fakeAPI) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeAPI) postCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.posts
}

type fakeNotifier struct {
	mu     gosync.Mutex
	events []string
}

func (f *fakeNotifier) Notify(ctx context.Context, studentID int, message, link string) error {
	return nil
}

func (f *fakeNotifier) Broadcast(event string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeNotifier) ListForStudent(ctx context.Context, studentID int) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkAllRead(ctx context.Context, studentID int) error { return nil }

func (f *fakeNotifier) Subscribe(studentID int) (chan sse.Event, func()) {
	return make(chan sse.Event), func() {}
}

type engineDeps struct {
	repo    absensi.Repository
	cache   *cache.Cache
	pending *queue.Queue
	api     *fakeAPI
}

func newTestEngine(t *testing.T, api *fakeAPI, debounce time.Duration) (syncdomain.Service, engineDeps) {
	t.Helper()

	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)

	db, err := database.New(kv, func() database.Document { return database.Document{} })
	require.NoError(t, err)

	absensiRepo := repo.NewAbsensiRepository(db)
	c := cache.New(kv, 0) // ttl zero: every Get misses, stale path stays reachable
	pending, err := queue.New(kv)
	require.NoError(t, err)

	cfg := config.SyncConfig{Interval: time.Second, Debounce: debounce, CacheTTL: 0}
	svc := NewSyncService(cfg, true, api, c, pending, absensiRepo, &fakeNotifier{}, metrics.New(prometheus.NewRegistry()))

	return svc, engineDeps{repo: absensiRepo, cache: c, pending: pending, api: api}
}

func snapshot(t *testing.T, records ...absensi.Absensi) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err)
	return data
}

func TestFetchAndSyncMergesRemoteCheckout(t *testing.T) {
	ctx := context.Background()
	today := database.Today()

	api := &fakeAPI{}
	svc, deps := newTestEngine(t, api, 0)

	_, err := deps.repo.Create(ctx, absensi.Absensi{Tanggal: today, Nama: "Rakha", JamMasuk: "06:30"})
	require.NoError(t, err)

	api.fetchData = snapshot(t, absensi.Absensi{
		Tanggal: today, Nama: "Rakha", JamMasuk: "06:30", JamKeluar: strPtr("07:05"), Durasi: intPtr(35),
	})

	result, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)

	require.Len(t, result.NewData, 1)
	assert.True(t, result.NewData[0].Complete())

	stored, err := deps.repo.GetByNamaAndTanggal(ctx, "Rakha", today)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Complete())

	assert.True(t, svc.State().Synced)
}

func TestFetchAndSyncServesStaleCacheWhenRemoteDies(t *testing.T) {
	ctx := context.Background()
	today := database.Today()

	api := &fakeAPI{fetchData: snapshot(t, absensi.Absensi{Tanggal: today, Nama: "Salsabila", JamMasuk: "06:20"})}
	svc, _ := newTestEngine(t, api, 0)

	_, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)
	require.True(t, svc.State().Synced)

	api.setFetchErr(errors.New("endpoint unreachable"))

	result, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)

	// Stale data still serves, but the synced flag drops.
	require.Len(t, result.NewData, 1)
	assert.Equal(t, "Salsabila", result.NewData[0].Nama)
	assert.False(t, svc.State().Synced)
}

func TestFetchAndSyncOfflineKeepsLocalAuthoritative(t *testing.T) {
	ctx := context.Background()
	today := database.Today()

	api := &fakeAPI{fetchErr: errors.New("endpoint unreachable")}
	svc, deps := newTestEngine(t, api, 0)

	_, err := deps.repo.Create(ctx, absensi.Absensi{Tanggal: today, Nama: "Dimas", JamMasuk: "06:45"})
	require.NoError(t, err)

	result, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)

	require.Len(t, result.NewData, 1)
	assert.Equal(t, "Dimas", result.NewData[0].Nama)
	assert.False(t, svc.State().Synced)
}

func TestFetchAndSyncConfirmsDispatchedWrites(t *testing.T) {
	ctx := context.Background()
	today := database.Today()

	api := &fakeAPI{}
	svc, deps := newTestEngine(t, api, 0)

	confirmed, err := deps.pending.Enqueue(sheet.ActionAbsensi, map[string]string{
		"tipe": "masuk", "nama": "Rakha", "tanggal": today,
	})
	require.NoError(t, err)

	unconfirmed, err := deps.pending.Enqueue(sheet.ActionAbsensi, map[string]string{
		"tipe": "keluar", "nama": "Salsabila", "tanggal": today,
	})
	require.NoError(t, err)

	// The remote snapshot accounts for Rakha's check-in but shows
	// Salsabila still without a check-out.
	api.fetchData = snapshot(t,
		absensi.Absensi{Tanggal: today, Nama: "Rakha", JamMasuk: "06:30"},
		absensi.Absensi{Tanggal: today, Nama: "Salsabila", JamMasuk: "06:20"},
	)

	_, err = svc.FetchAndSync(ctx)
	require.NoError(t, err)

	remaining := deps.pending.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, unconfirmed.ID, remaining[0].ID)
	assert.NotEqual(t, confirmed.ID, remaining[0].ID)
	assert.True(t, remaining[0].Dispatched)

	// The unconfirmed write keeps the synced flag down.
	assert.False(t, svc.State().Synced)
}

func TestFetchAndSyncPostsDispatchedWriteOnce(t *testing.T) {
	ctx := context.Background()

	api := &fakeAPI{fetchData: snapshot(t)}
	svc, deps := newTestEngine(t, api, 0)

	// A report submitted while the remote is healthy: one POST, entry
	// held as dispatched pending confirmation.
	status := dispatch.New(api, deps.pending, true).Send(ctx, sheet.ActionCreateLaporan, map[string]string{
		"nama": "Rakha", "tanggal": database.Today(),
	})
	require.Equal(t, dispatch.StatusSynced, status)
	require.Equal(t, 1, api.postCount())

	// The next healthy cycle must confirm the write, not replay it.
	_, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, api.postCount())
	assert.Equal(t, 0, deps.pending.Len())
	assert.True(t, svc.State().Synced)
}

func TestFetchAndSyncRecoversAfterOutage(t *testing.T) {
	ctx := context.Background()
	today := database.Today()

	api := &fakeAPI{fetchErr: errors.New("endpoint unreachable")}
	svc, deps := newTestEngine(t, api, 0)

	_, err := deps.repo.Create(ctx, absensi.Absensi{Tanggal: today, Nama: "Rakha", JamMasuk: "06:30"})
	require.NoError(t, err)
	_, err = deps.pending.Enqueue(sheet.ActionAbsensi, map[string]string{
		"tipe": "masuk", "nama": "Rakha", "tanggal": today, "jamMasuk": "06:30",
	})
	require.NoError(t, err)

	_, err = svc.FetchAndSync(ctx)
	require.NoError(t, err)
	require.False(t, svc.State().Synced)
	require.Equal(t, 1, svc.State().QueueDepth)

	// Remote comes back and its snapshot accounts for the queued write.
	api.setFetchErr(nil)
	api.fetchData = snapshot(t, absensi.Absensi{Tanggal: today, Nama: "Rakha", JamMasuk: "06:30"})

	_, err = svc.FetchAndSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, deps.pending.Len())
	assert.True(t, svc.State().Synced)
}

func TestFetchAndSyncDebouncesRemoteCalls(t *testing.T) {
	ctx := context.Background()

	api := &fakeAPI{fetchData: snapshot(t)}
	svc, _ := newTestEngine(t, api, time.Hour)

	_, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)
	_, err = svc.FetchAndSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, api.fetchCount())
}

func TestFetchAndSyncFailedCycleReopensDebounce(t *testing.T) {
	ctx := context.Background()

	api := &fakeAPI{fetchErr: errors.New("endpoint unreachable")}
	svc, _ := newTestEngine(t, api, time.Hour)

	_, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)
	require.False(t, svc.State().Synced)
	require.Equal(t, 1, api.fetchCount())

	// The remote recovers inside the debounce window; the failed cycle
	// must not hold the next attempt back.
	api.setFetchErr(nil)
	api.mu.Lock()
	api.fetchData = snapshot(t)
	api.mu.Unlock()

	_, err = svc.FetchAndSync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, api.fetchCount())
	assert.True(t, svc.State().Synced)
}

func TestFetchAndSyncDisabledStaysLocal(t *testing.T) {
	ctx := context.Background()
	today := database.Today()

	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)
	db, err := database.New(kv, func() database.Document { return database.Document{} })
	require.NoError(t, err)
	absensiRepo := repo.NewAbsensiRepository(db)
	pending, err := queue.New(kv)
	require.NoError(t, err)

	api := &fakeAPI{}
	cfg := config.SyncConfig{Interval: time.Second, CacheTTL: time.Minute}
	svc := NewSyncService(cfg, false, api, cache.New(kv, time.Minute), pending, absensiRepo, &fakeNotifier{}, metrics.New(prometheus.NewRegistry()))

	_, err = absensiRepo.Create(ctx, absensi.Absensi{Tanggal: today, Nama: "Rakha", JamMasuk: "06:30"})
	require.NoError(t, err)

	result, err := svc.FetchAndSync(ctx)
	require.NoError(t, err)

	require.Len(t, result.NewData, 1)
	assert.Equal(t, 0, api.fetchCount())
	assert.True(t, svc.State().Synced)
}
