// internal/handlers/student_handler.go
package handlers

import (
	"net/http"

	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/service"
	"go_5_box_vocab/internal/webutil"
)

type StudentHandler struct {
	service service.StudentService
}

func NewStudentHandler(s service.StudentService) *StudentHandler {
	return &StudentHandler{service: s}
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStudentRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	student, err := h.service.CreateStudent(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, student)
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.ListStudents(r.Context())
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	if students == nil {
		students = []*model.Student{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, students)
}

// GetStudent は生徒コードで生徒を引きます (学習画面へのログインに使う)
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	code, err := studentCodeParam(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	student, err := h.service.GetStudent(r.Context(), code)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, student)
}
