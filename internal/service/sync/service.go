package sync

import (
	"context"
	"encoding/json"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/config"
	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	syncdomain "github.com/piket-xe8/piket-backend-go/internal/domain/sync"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/cache"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/metrics"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/queue"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
)

type service struct {
	cfg      config.SyncConfig
	enabled  bool
	api      sheet.API
	cache    *cache.Cache
	pending  *queue.Queue
	repo     absensi.Repository
	notifier notification.Service
	metrics  *metrics.Metrics

	mu      gosync.Mutex
	state   syncdomain.State
	lastRun time.Time
	now     func() time.Time
}

// NewSyncService creates the sync engine. One instance drives both the
// scheduled poll loop and on-demand refreshes from the HTTP layer.
func NewSyncService(
	cfg config.SyncConfig,
	enabled bool,
	api sheet.API,
	c *cache.Cache,
	pending *queue.Queue,
	repo absensi.Repository,
	notifier notification.Service,
	m *metrics.Metrics,
) syncdomain.Service {
	return &service{
		cfg:      cfg,
		enabled:  enabled,
		api:      api,
		cache:    c,
		pending:  pending,
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		state:    syncdomain.State{Synced: true},
		now:      time.Now,
	}
}

func (s *service) State() syncdomain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FetchAndSync runs one cycle: drain the pending queue, fetch the
// remote today snapshot (cache first, stale cache as degraded
// fallback), reconcile it into the local store, confirm dispatched
// queue entries the remote view now accounts for, and publish the
// resulting sync state. Transport failures never surface as errors;
// they flip the synced flag and leave the local store authoritative.
func (s *service) FetchAndSync(ctx context.Context) (syncdomain.Result, error) {
	today := database.Today()

	if !s.enabled {
		local, err := s.repo.ListByTanggal(ctx, today)
		if err != nil {
			return syncdomain.Result{}, err
		}
		s.publish(true)
		return syncdomain.Result{NewData: local}, nil
	}

	s.mu.Lock()
	if !s.lastRun.IsZero() && s.now().Sub(s.lastRun) < s.cfg.Debounce {
		s.mu.Unlock()
		local, err := s.repo.ListByTanggal(ctx, today)
		if err != nil {
			return syncdomain.Result{}, err
		}
		return syncdomain.Result{NewData: local}, nil
	}
	s.lastRun = s.now()
	s.mu.Unlock()

	started := s.now()
	defer func() {
		s.metrics.SyncDuration.Observe(s.now().Sub(started).Seconds())
	}()

	submitted := s.pending.Drain(ctx, s.submit)

	remote, live, ok := s.fetchToday(ctx)
	if !ok {
		s.metrics.SyncCycles.WithLabelValues("failed").Inc()
		s.resetDebounce()
		local, err := s.repo.ListByTanggal(ctx, today)
		if err != nil {
			return syncdomain.Result{}, err
		}
		s.publish(false)
		return syncdomain.Result{NewData: local, SyncedCount: submitted}, nil
	}

	merged, changed, err := s.reconcile(ctx, today, remote)
	if err != nil {
		return syncdomain.Result{}, err
	}

	if live {
		s.confirmDispatched(ctx, today, remote)
		s.metrics.SyncCycles.WithLabelValues("synced").Inc()
	} else {
		s.metrics.SyncCycles.WithLabelValues("stale").Inc()
		s.resetDebounce()
	}

	s.publish(live)
	if changed > 0 {
		s.notifier.Broadcast("newData", map[string]int{"count": changed})
	}

	return syncdomain.Result{NewData: merged, SyncedCount: submitted}, nil
}

// resetDebounce reopens the debounce window. The window only counts
// from the last cycle that reached the remote; a failed or degraded
// cycle must not delay the recovery attempt.
func (s *service) resetDebounce() {
	s.mu.Lock()
	s.lastRun = time.Time{}
	s.mu.Unlock()
}

func (s *service) submit(ctx context.Context, w syncdomain.PendingWrite) error {
	var fields map[string]string
	if err := json.Unmarshal(w.Payload, &fields); err != nil {
		return err
	}
	if err := s.api.Post(ctx, w.Action, fields); err != nil {
		return err
	}
	s.metrics.QueueSubmitted.Inc()
	return nil
}

// fetchToday returns the remote today snapshot. live reports whether
// the data came from the endpoint or a fresh cache entry rather than
// the stale fallback; ok is false when no copy exists at all.
func (s *service) fetchToday(ctx context.Context) (remote []absensi.Absensi, live, ok bool) {
	key := cache.Key(sheet.ActionGetAbsensiToday, nil)

	if data, hit := s.cache.Get(key); hit {
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return decodeSnapshot(data), true, true
	}

	data, err := s.api.Fetch(ctx, sheet.ActionGetAbsensiToday, nil)
	if err == nil {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		s.cache.Set(key, data)
		return decodeSnapshot(data), true, true
	}
	slog.Warn("Remote fetch failed, trying stale cache", "error", err)

	if data, hit := s.cache.GetStale(key); hit {
		s.metrics.CacheLookups.WithLabelValues("stale").Inc()
		return decodeSnapshot(data), false, true
	}
	return nil, false, false
}

func decodeSnapshot(data json.RawMessage) []absensi.Absensi {
	var records []absensi.Absensi
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Error("Remote snapshot unparsable, treating as empty", "error", err)
		return nil
	}
	return records
}

// reconcile merges the remote today snapshot into the local store and
// rewrites the attendance log with the merged day.
func (s *service) reconcile(ctx context.Context, today string, remote []absensi.Absensi) ([]absensi.Absensi, int, error) {
	local, err := s.repo.ListByTanggal(ctx, today)
	if err != nil {
		return nil, 0, err
	}

	merged, changed := Merge(local, remote)
	if changed == 0 {
		return merged, 0, nil
	}

	// Snapshots cover only today; carry the older log over untouched.
	full, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	rebuilt := make([]absensi.Absensi, 0, len(full)+len(merged))
	for _, a := range full {
		if a.Tanggal != today {
			rebuilt = append(rebuilt, a)
		}
	}
	rebuilt = append(rebuilt, merged...)
	if err := s.repo.ReplaceAll(ctx, rebuilt); err != nil {
		return nil, 0, err
	}
	return merged, changed, nil
}

// confirmDispatched removes pending writes that a live remote read has
// proven delivered. Attendance entries are matched against the
// snapshot; other write kinds carry no read-back key, so a healthy
// live read after their dispatch is taken as confirmation.
func (s *service) confirmDispatched(ctx context.Context, today string, remote []absensi.Absensi) {
	byKey := map[string]absensi.Absensi{}
	for _, r := range remote {
		byKey[mergeKey(r)] = r
	}

	for _, w := range s.pending.List() {
		if !w.Dispatched {
			continue
		}
		if w.Action != sheet.ActionAbsensi {
			s.pending.Remove(w.ID)
			continue
		}

		var fields map[string]string
		if err := json.Unmarshal(w.Payload, &fields); err != nil {
			slog.Error("Corrupt pending payload, dropping", "id", w.ID, "error", err)
			s.pending.Remove(w.ID)
			continue
		}
		if fields["tanggal"] != today {
			// The snapshot covers only today, so there is no read-back
			// for this entry. Like the non-attendance kinds, a healthy
			// live read after its dispatch is the only confirmation it
			// will ever get; holding it would pin the queue open.
			s.pending.Remove(w.ID)
			continue
		}

		r, present := byKey[fields["nama"]+"|"+fields["tanggal"]]
		if !present {
			continue
		}
		if fields["tipe"] == "keluar" && !r.Complete() {
			continue
		}
		s.pending.Remove(w.ID)
	}
}

func (s *service) publish(synced bool) {
	depth := s.pending.Len()
	s.metrics.QueueDepth.Set(float64(depth))

	s.mu.Lock()
	s.state = syncdomain.State{
		Synced:     synced && depth == 0,
		LastSync:   s.now(),
		QueueDepth: depth,
	}
	state := s.state
	s.mu.Unlock()

	s.notifier.Broadcast("sync", state)
}
