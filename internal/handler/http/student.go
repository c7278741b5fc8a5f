package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piket-xe8/piket-backend-go/internal/domain/student"
	"github.com/piket-xe8/piket-backend-go/internal/handler/http/response"
)

type StudentHandler interface {
	Leaderboard(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	MyProfile(w http.ResponseWriter, r *http.Request)
	CheckedOutToday(w http.ResponseWriter, r *http.Request)
}

type studentHandlerImpl struct {
	studentService student.Service
}

func NewStudentHandler(studentService student.Service) StudentHandler {
	return &studentHandlerImpl{
		studentService: studentService,
	}
}

// Leaderboard implements StudentHandler.
func (h *studentHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.Ranked(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, students)
}

// Profile implements StudentHandler.
func (h *studentHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	nama := chi.URLParam(r, "nama")

	profile, err := h.studentService.GetProfile(r.Context(), nama)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// MyProfile resolves the calling student from the token.
func (h *studentHandlerImpl) MyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.studentService.GetProfile(r.Context(), claimNama(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// CheckedOutToday implements StudentHandler.
func (h *studentHandlerImpl) CheckedOutToday(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.CheckedOutToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, students)
}
