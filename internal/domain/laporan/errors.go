package laporan

import "errors"

// Laporan domain errors
var (
	ErrLaporanNotFound = errors.New("laporan tidak ditemukan")
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")
	ErrAbsensiNotFound = errors.New("data absensi untuk siswa dan tanggal ini tidak ditemukan")
	ErrInvalidStatus   = errors.New("status laporan tidak valid")
)
