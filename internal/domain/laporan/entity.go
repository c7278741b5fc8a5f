package laporan

// Rating scores one aspect of a cleaned classroom, 1..5.
type Rating struct {
	Lantai     int `json:"lantai"`
	PapanTulis int `json:"papanTulis"`
	Meja       int `json:"meja"`
	Sampah     int `json:"sampah"`
}

// RatingNotes holds optional free-text remarks per aspect.
type RatingNotes struct {
	Lantai     string `json:"lantai,omitempty"`
	PapanTulis string `json:"papanTulis,omitempty"`
	Meja       string `json:"meja,omitempty"`
	Sampah     string `json:"sampah,omitempty"`
}

// Status values for a report.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// Laporan is an admin-authored evaluation of a completed duty session.
// It references the attendance record for the same (Nama, Tanggal);
// that reference is validated at creation time, the store itself does
// not enforce it.
type Laporan struct {
	ID           int             `json:"id"`
	Tanggal      string          `json:"tanggal"`
	Nama         string          `json:"nama"`
	Rating       Rating          `json:"rating"`
	RatingNotes  *RatingNotes    `json:"ratingNotes,omitempty"`
	AvgRating    float64         `json:"avgRating"`
	Tasks        map[string]bool `json:"tasks"`
	Catatan      string          `json:"catatan"`
	FotoBukti    []string        `json:"fotoBukti"`
	XP           int             `json:"xp"`
	Verified     bool            `json:"verified"`
	VerifiedBy   string          `json:"verifiedBy,omitempty"`
	WaktuMulai   string          `json:"waktuMulai"`
	WaktuSelesai string          `json:"waktuSelesai"`
	Status       string          `json:"status"`
}

// Avg computes the mean of the four aspect ratings.
func (r Rating) Avg() float64 {
	return float64(r.Lantai+r.PapanTulis+r.Meja+r.Sampah) / 4.0
}
