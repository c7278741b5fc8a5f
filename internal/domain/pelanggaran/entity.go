package pelanggaran

// Jenis enumerates the violation kinds an admin can record.
type Jenis string

const (
	JenisTidakBawaKresek  Jenis = "Tidak bawa kresek"
	JenisTerlambat        Jenis = "Terlambat"
	JenisKaburPiket       Jenis = "Kabur piket"
	JenisTidakPiket       Jenis = "Tidak piket"
	JenisMerusakFasilitas Jenis = "Merusak fasilitas"
	JenisPiketTidakBersih Jenis = "Piket tidak bersih"
)

// AllJenis returns all valid violation kinds.
func AllJenis() []Jenis {
	return []Jenis{
		JenisTidakBawaKresek,
		JenisTerlambat,
		JenisKaburPiket,
		JenisTidakPiket,
		JenisMerusakFasilitas,
		JenisPiketTidakBersih,
	}
}

// Status values for a violation.
const (
	StatusProses  = "Proses"
	StatusSelesai = "Selesai"
)

// Pelanggaran is a recorded duty violation with a sanction.
type Pelanggaran struct {
	ID         int    `json:"id"`
	Tanggal    string `json:"tanggal"`
	Nama       string `json:"nama"`
	Jenis      Jenis  `json:"jenisPelanggaran"`
	Poin       int    `json:"poin"`
	Sanksi     string `json:"sanksi"`
	Status     string `json:"status"`
	VerifiedBy string `json:"verifiedBy,omitempty"`
}
