package localdb

import (
	"context"

	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/database"
)

type studentRepository struct {
	db *database.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *database.DB) student.Repository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	err := r.db.View(func(doc *database.Document) error {
		students = append([]student.Student{}, doc.Students...)
		return nil
	})
	return students, err
}

func (r *studentRepository) GetByNamaLengkap(ctx context.Context, namaLengkap string) (*student.Student, error) {
	var found *student.Student
	err := r.db.View(func(doc *database.Document) error {
		for i := range doc.Students {
			if doc.Students[i].NamaLengkap == namaLengkap {
				s := doc.Students[i]
				found = &s
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, student.ErrStudentNotFound
	}
	return found, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int) (*student.Student, error) {
	var found *student.Student
	err := r.db.View(func(doc *database.Document) error {
		for i := range doc.Students {
			if doc.Students[i].ID == id {
				s := doc.Students[i]
				found = &s
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, student.ErrStudentNotFound
	}
	return found, nil
}

func (r *studentRepository) AddXP(ctx context.Context, studentID int, tanggal string, jumlah int, alasan string) error {
	return r.db.Update(func(doc *database.Document) error {
		for i := range doc.Students {
			if doc.Students[i].ID == studentID {
				doc.Students[i].XP += jumlah
				doc.Students[i].Level = LevelForXP(doc.Students[i].XP)
				doc.XPLogs = append(doc.XPLogs, student.XPLog{
					ID:        nextXPLogID(doc.XPLogs),
					StudentID: studentID,
					Tanggal:   tanggal,
					Jumlah:    jumlah,
					Alasan:    alasan,
				})
				return nil
			}
		}
		return student.ErrStudentNotFound
	})
}

func (r *studentRepository) ListXPLogs(ctx context.Context, studentID int) ([]student.XPLog, error) {
	logs := []student.XPLog{}
	err := r.db.View(func(doc *database.Document) error {
		for _, l := range doc.XPLogs {
			if l.StudentID == studentID {
				logs = append(logs, l)
			}
		}
		return nil
	})
	return logs, err
}

// LevelForXP maps accumulated XP to a level, 100 XP per level.
func LevelForXP(xp int) int {
	return xp/100 + 1
}

func nextXPLogID(logs []student.XPLog) int {
	next := 1
	for _, l := range logs {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return next
}
