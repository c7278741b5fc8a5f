package laporan

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/setting"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/queue"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sse"
	repo "github.com/piket-xe8/piket-backend-go/internal/repository/localdb"
	"github.com/piket-xe8/piket-backend-go/internal/service/dispatch"
	notificationservice "github.com/piket-xe8/piket-backend-go/internal/service/notification"
)

type nopAPI struct{}

func (nopAPI) Fetch(ctx context.Context, action string, params map[string]string) (json.RawMessage, error) {
	return nil, nil
}
func (nopAPI) Post(ctx context.Context, action string, fields map[string]string) error { return nil }
func (nopAPI) Verify(ctx context.Context, action string)                                {}

func jamKeluar(s string) *string { return &s }

func newTestService(t *testing.T) (laporan.Service, student.Repository, *database.DB) {
	t.Helper()

	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)

	db, err := database.New(kv, func() database.Document {
		return database.Document{
			Students: []student.Student{
				{ID: 1, Nama: "Rakha", NamaLengkap: "Rakha Pratama", Status: "Aktif"},
			},
			Absensi: []absensi.Absensi{
				{ID: 1, Tanggal: "2026-08-31", Nama: "Rakha Pratama", JamMasuk: "06:30", JamKeluar: jamKeluar("07:05")},
			},
			Settings: setting.AppSettings{
				XPComplete:         20,
				XPRatingMultiplier: 5,
				XPPhoto:            10,
			},
		}
	})
	require.NoError(t, err)

	pending, err := queue.New(kv)
	require.NoError(t, err)

	students := repo.NewStudentRepository(db)
	svc := NewLaporanService(
		repo.NewLaporanRepository(db),
		repo.NewAbsensiRepository(db),
		students,
		repo.NewSettingRepository(db),
		notificationservice.NewNotificationService(repo.NewNotificationRepository(db), sse.NewHub()),
		dispatch.New(nopAPI{}, pending, true),
	)
	return svc, students, db
}

func validRequest() laporan.CreateRequest {
	return laporan.CreateRequest{
		Tanggal: "2026-08-31",
		Nama:    "Rakha Pratama",
		Rating:  laporan.Rating{Lantai: 5, PapanTulis: 4, Meja: 4, Sampah: 5},
		Tasks:   map[string]bool{"sapu": true, "papan tulis": true},
		Status:  laporan.StatusSubmitted,
	}
}

func TestCreateAwardsXPAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, students, db := newTestService(t)

	created, err := svc.Create(ctx, validRequest(), "Bu Ratna")
	require.NoError(t, err)

	assert.Equal(t, 4.5, created.AvgRating)
	assert.Equal(t, "Bu Ratna", created.VerifiedBy)
	assert.True(t, created.Verified)
	assert.Equal(t, "06:30", created.WaktuMulai)
	assert.Equal(t, "07:05", created.WaktuSelesai)

	// 20 base + round(4.5)*5, no photo bonus.
	assert.Equal(t, 45, created.XP)

	subject, err := students.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 45, subject.XP)

	logs, err := students.ListXPLogs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 45, logs[0].Jumlah)

	err = db.View(func(doc *database.Document) error {
		require.Len(t, doc.Notifications, 1)
		assert.Equal(t, 1, doc.Notifications[0].StudentID)
		return nil
	})
	require.NoError(t, err)
}

func TestCreateDraftSkipsAward(t *testing.T) {
	ctx := context.Background()
	svc, students, _ := newTestService(t)

	req := validRequest()
	req.Status = laporan.StatusDraft

	_, err := svc.Create(ctx, req, "Bu Ratna")
	require.NoError(t, err)

	subject, err := students.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, subject.XP)
}

func TestCreateRejectsMissingAttendance(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.Tanggal = "2026-08-30"

	_, err := svc.Create(ctx, req, "Bu Ratna")
	assert.ErrorIs(t, err, laporan.ErrAbsensiNotFound)
}

func TestCreateRejectsUnknownStudent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.Nama = "Siapa Ini"

	_, err := svc.Create(ctx, req, "Bu Ratna")
	assert.ErrorIs(t, err, laporan.ErrStudentNotFound)
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	req := validRequest()
	req.Rating.Lantai = 6

	_, err := svc.Create(ctx, req, "Bu Ratna")
	assert.Error(t, err)
}

func TestListForStudentReturnsOnlySubmitted(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Create(ctx, validRequest(), "Bu Ratna")
	require.NoError(t, err)

	draft := validRequest()
	draft.Status = laporan.StatusDraft
	_, err = svc.Create(ctx, draft, "Bu Ratna")
	require.NoError(t, err)

	reports, err := svc.ListForStudent(ctx, "Rakha Pratama")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, laporan.StatusSubmitted, reports[0].Status)
}

func TestUpdateStatusAndDeleteMany(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	draft := validRequest()
	draft.Status = laporan.StatusDraft
	first, err := svc.Create(ctx, draft, "Bu Ratna")
	require.NoError(t, err)
	second, err := svc.Create(ctx, draft, "Bu Ratna")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, laporan.UpdateStatusRequest{
		IDs:    []int{first.ID, second.ID},
		Status: laporan.StatusSubmitted,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	deleted, err := svc.DeleteMany(ctx, []int{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	reports, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
