package absensi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	gosync "sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/metrics"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/queue"
	repo "github.com/piket-xe8/piket-backend-go/internal/repository/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
)

type fakeAPI struct {
	mu      gosync.Mutex
	posts   int
	postErr error
}

func (f *fakeAPI) Fetch(ctx context.Context, action string, params map[string]string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (f *fakeAPI) Post(ctx context.Context, action string, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts++
	return f.postErr
}

func (f *fakeAPI) Verify(ctx context.Context, action string) {}

func newTestService(t *testing.T, api *fakeAPI) (absensi.Service, *queue.Queue) {
	t.Helper()

	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)

	db, err := database.New(kv, func() database.Document {
		return database.Document{
			Students: []student.Student{
				{ID: 1, Nama: "Rakha", NamaLengkap: "Rakha Pratama", Status: "Aktif"},
			},
		}
	})
	require.NoError(t, err)

	pending, err := queue.New(kv)
	require.NoError(t, err)

	svc := NewAbsensiService(
		repo.NewAbsensiRepository(db),
		repo.NewStudentRepository(db),
		dispatch.New(api, pending, true),
		metrics.New(prometheus.NewRegistry()),
		"XE8",
	)
	return svc, pending
}

func todayToken() string {
	return fmt.Sprintf("PIKET-XE8-%s", time.Now().Format("20060102"))
}

func TestScanQRFullDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeAPI{})

	req := absensi.ScanRequest{QRData: todayToken(), Nama: "Rakha Pratama"}

	first, err := svc.ScanQR(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, absensi.StatusCheckedIn, first.Status)
	assert.Nil(t, first.Durasi)

	second, err := svc.ScanQR(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, absensi.StatusCheckedOut, second.Status)
	require.NotNil(t, second.Durasi)
	assert.GreaterOrEqual(t, *second.Durasi, 0)

	_, err = svc.ScanQR(ctx, req)
	assert.ErrorIs(t, err, absensi.ErrAlreadyCompleted)
}

func TestScanQRRejectsWrongToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeAPI{})

	for _, qr := range []string{
		"PIKET-XE8-20200101",
		"PIKET-XI1-" + time.Now().Format("20060102"),
		"not a token",
	} {
		_, err := svc.ScanQR(ctx, absensi.ScanRequest{QRData: qr, Nama: "Rakha Pratama"})
		assert.ErrorIs(t, err, absensi.ErrInvalidQR, qr)
	}
}

func TestScanQRRejectsUnknownStudent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, &fakeAPI{})

	_, err := svc.ScanQR(ctx, absensi.ScanRequest{QRData: todayToken(), Nama: "Siapa Ini"})
	assert.ErrorIs(t, err, absensi.ErrStudentNotFound)
}

func TestScanQRQueuesWhenRemoteDown(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{postErr: errors.New("endpoint unreachable")}
	svc, pending := newTestService(t, api)

	result, err := svc.ScanQR(ctx, absensi.ScanRequest{QRData: todayToken(), Nama: "Rakha Pratama"})
	require.NoError(t, err)

	// The scan lands locally and the write-intent waits for replay.
	assert.Equal(t, absensi.StatusCheckedIn, result.Status)
	assert.Equal(t, absensi.SyncQueued, result.SyncStatus)
	assert.Equal(t, 1, pending.Len())

	today, err := svc.GetToday(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "Rakha Pratama", today[0].Nama)
}

func TestScanQRDispatchesWhenRemoteUp(t *testing.T) {
	ctx := context.Background()
	svc, pending := newTestService(t, &fakeAPI{})

	result, err := svc.ScanQR(ctx, absensi.ScanRequest{QRData: todayToken(), Nama: "Rakha Pratama"})
	require.NoError(t, err)

	assert.Equal(t, absensi.SyncSynced, result.SyncStatus)

	// Dispatched, but held until a reconciling read confirms it.
	entries := pending.List()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Dispatched)
}

func TestMinutesBetween(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"06:30", "07:05", 35},
		{"06:30", "06:30", 0},
		{"07:05", "06:30", 0},
		{"bogus", "07:00", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, minutesBetween(tt.from, tt.to), "%s..%s", tt.from, tt.to)
	}
}
