package absensi

import "errors"

// Absensi domain errors
var (
	ErrInvalidQR        = errors.New("QR Code tidak valid atau sudah kadaluarsa")
	ErrAlreadyCompleted = errors.New("anda sudah menyelesaikan piket hari ini")
	ErrAbsensiNotFound  = errors.New("data absensi tidak ditemukan")
	ErrStudentNotFound  = errors.New("siswa tidak ditemukan")
)
