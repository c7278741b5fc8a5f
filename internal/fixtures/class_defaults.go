package fixtures

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
	"github.com/piket-xe8/piket-backend-go/internal/domain/laporan"
	"github.com/piket-xe8/piket-backend-go/internal/domain/notification"
	"github.com/piket-xe8/piket-backend-go/internal/domain/pelanggaran"
	"github.com/piket-xe8/piket-backend-go/internal/domain/schedule"
	"github.com/piket-xe8/piket-backend-go/internal/domain/setting"
	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/domain/user"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

// seedStudent is the raw roster row before password hashing.
type seedStudent struct {
	id          int
	nama        string
	namaLengkap string
	hariPiket   string
	password    string
	xp          int
	level       int
	rank        int
}

var classRoster = []seedStudent{
	{23, "Ardellio", "Ardellio Satria Anindito", "Kamis", "ardellio", 1250, 12, 1},
	{11, "Revi", "Moch Revi", "Selasa", "revi", 1180, 11, 2},
	{31, "Azhar", "Muhammad Azhar A.A", "Jumat", "azhar", 1150, 11, 3},
	{12, "Novita", "Novita Ayu", "Selasa", "novita", 1120, 11, 4},
	{1, "Gisella", "Gisella Anastasya", "Senin", "gisella", 1090, 10, 5},
	{2, "Keiza", "Keiza Putri Maharani", "Senin", "keiza", 980, 9, 6},
	{4, "Amar", "Amar Ma'ruf", "Senin", "amar", 955, 9, 7},
	{3, "Marsha", "Marsha Aulia", "Senin", "marsha", 920, 9, 8},
	{9, "Fahrul", "Fahrul Hakim", "Selasa", "fahrul", 880, 8, 9},
	{5, "Kansa", "Kansa Khairunnisa", "Kamis", "kansa", 850, 8, 10},
	{7, "Pandu", "Pandu Wijaya", "Rabu", "pandu", 760, 7, 11},
	{10, "Khumaira", "Khumaira Azzahra", "Selasa", "khumaira", 730, 7, 12},
	{13, "Taqia", "Taqia Alifa", "Rabu", "taqia", 715, 7, 13},
	{6, "Zavira", "Zavira Dwi", "Kamis", "zavira", 680, 6, 14},
	{16, "Reihan", "Reihan Saputra", "Rabu", "reihan", 650, 6, 15},
	{8, "Misya", "Misya Adelia", "Kamis", "misya", 620, 6, 16},
	{14, "Zalfa", "Zalfa Nabila", "Rabu", "zalfa", 590, 5, 17},
	{15, "Albian", "Albian Putra", "Rabu", "albian", 560, 5, 18},
	{30, "Tio", "Tio Prasetyo", "Jumat", "tio", 530, 5, 19},
	{17, "Fadlan", "Fadlan Ardiansyah", "Rabu", "fadlan", 510, 5, 20},
	{24, "Desriani", "Desriani Putri", "Kamis", "desriani", 480, 4, 21},
	{18, "Kyla", "Kyla Azzahra", "Rabu", "kyla", 450, 4, 22},
	{32, "Nada", "Nada Alawiyah", "Jumat", "nada", 420, 4, 23},
	{25, "Jingga", "Jingga Aulia", "Kamis", "jingga", 390, 3, 24},
	{19, "Tsabbit", "Tsabbit Maula", "Rabu", "tsabbit", 360, 3, 25},
	{34, "Raindy", "Raindy Saputra", "Jumat", "raindy", 330, 3, 26},
	{26, "Kaila", "Kaila Syafira", "Kamis", "kaila", 300, 3, 27},
	{20, "Reykha", "Reykha Ananda", "Rabu", "reykha", 280, 2, 28},
	{27, "Nabila", "Nabila Putri", "Kamis", "nabila", 260, 2, 29},
	{21, "Sabrynna", "Sabrynna Aulia", "Rabu", "sabrynna", 240, 2, 30},
	{28, "Raditya", "Raditya Dika", "Kamis", "raditya", 220, 2, 31},
	{29, "Fahira", "Fahira Anjani", "Kamis", "fahira", 200, 2, 32},
	{33, "Gladis", "Gladis Ananda", "Jumat", "gladis", 180, 1, 33},
	{35, "Pranaja", "Pranaja Adi", "Jumat", "pranaja", 160, 1, 34},
	{22, "Windhy", "Windhy Arie", "Rabu", "windhy", 140, 1, 35},
	{36, "Yasmin", "Yasmin Nabila", "Jumat", "yasmin", 120, 1, 36},
}

// ClassDefaults builds the seed document used when no persisted data
// exists: the full class roster, the two staff accounts, the weekly
// duty schedule and the XP tuning defaults. Transactional collections
// start empty and fill up through normal operation and sync.
func ClassDefaults() database.Document {
	students := make([]student.Student, 0, len(classRoster))
	for _, row := range classRoster {
		students = append(students, student.Student{
			ID:           row.id,
			Nama:         row.nama,
			NamaLengkap:  row.namaLengkap,
			Foto:         avatarURL(row.namaLengkap),
			HariPiket:    row.hariPiket,
			PasswordHash: hashPassword(row.password),
			XP:           row.xp,
			Level:        row.level,
			Rank:         row.rank,
			Status:       "Aktif",
		})
	}

	admins := []user.Admin{
		{
			ID:           1,
			Nama:         "Ardellio Satria Anindito",
			Username:     "ardellio",
			PasswordHash: hashPassword("admin2024"),
			Role:         user.RoleAdmin,
			Foto:         avatarURL("Ardellio Satria Anindito"),
		},
		{
			ID:           2,
			Nama:         "Novita Ayu",
			Username:     "novita",
			PasswordHash: hashPassword("sekretaris2024"),
			Role:         user.RoleSekretaris,
			Foto:         avatarURL("Novita Ayu"),
		},
	}

	return database.Document{
		Students: students,
		Admins:   admins,
		Schedule: schedule.Schedule{
			"Senin":  {"Gisella Anastasya", "Keiza Putri Maharani", "Marsha Aulia", "Amar Ma'ruf"},
			"Selasa": {"Fahrul Hakim", "Khumaira Azzahra", "Moch Revi", "Novita Ayu"},
			"Rabu":   {"Pandu Wijaya", "Taqia Alifa", "Zalfa Nabila", "Albian Putra", "Reihan Saputra", "Fadlan Ardiansyah", "Kyla Azzahra", "Tsabbit Maula", "Reykha Ananda", "Sabrynna Aulia", "Windhy Arie"},
			"Kamis":  {"Kansa Khairunnisa", "Zavira Dwi", "Misya Adelia", "Ardellio Satria Anindito", "Desriani Putri", "Jingga Aulia", "Kaila Syafira", "Nabila Putri", "Raditya Dika", "Fahira Anjani"},
			"Jumat":  {"Tio Prasetyo", "Muhammad Azhar A.A", "Nada Alawiyah", "Gladis Ananda", "Raindy Saputra", "Pranaja Adi", "Yasmin Nabila"},
		},
		Settings: setting.AppSettings{
			XPOnTime:           20,
			XPComplete:         25,
			XPRatingMultiplier: 5,
			XPPhoto:            15,
			WaktuMulai:         "14:30",
			WaktuSelesai:       "16:00",
			MinimalDurasi:      20,
		},
		Absensi:       []absensi.Absensi{},
		Laporan:       []laporan.Laporan{},
		Pelanggaran:   []pelanggaran.Pelanggaran{},
		XPLogs:        []student.XPLog{},
		Notifications: []notification.Notification{},
	}
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed to hash seed password", "error", err)
		return ""
	}
	return string(hash)
}

func avatarURL(namaLengkap string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=C19A6B&color=fff&size=128",
		strings.ReplaceAll(namaLengkap, " ", "+"))
}
