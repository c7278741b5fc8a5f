package absensi

// Absensi is one duty attendance record. Identity is (Nama, Tanggal):
// a student has at most one record per date. JSON tags follow the
// spreadsheet column names so records round-trip through the remote
// endpoint unchanged.
type Absensi struct {
	ID        int     `json:"id"`
	Tanggal   string  `json:"tanggal"` // YYYY-MM-DD
	Nama      string  `json:"nama"`
	JamMasuk  string  `json:"jamMasuk"` // HH:MM
	JamKeluar *string `json:"jamKeluar"`
	Durasi    *int    `json:"durasi"` // minutes, set once at check-out
	FotoURL   string  `json:"fotoUrl"`
	Verified  bool    `json:"verified"`
}

// Complete reports whether the record has a check-out.
func (a Absensi) Complete() bool {
	return a.JamKeluar != nil && *a.JamKeluar != ""
}
