// internal/handlers/study_handler.go
package handlers

import (
	"net/http"
	"strings"

	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/service"
	"go_5_box_vocab/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StudyHandler struct {
	service service.StudyService
}

func NewStudyHandler(s service.StudyService) *StudyHandler {
	return &StudyHandler{service: s}
}

func studentCodeParam(r *http.Request) (string, error) {
	code := strings.TrimSpace(chi.URLParam(r, "student_code"))
	if code == "" {
		return "", model.NewAppError("INVALID_STUDENT_CODE", "生徒コードを指定してください。", "student_code", model.ErrInvalidInput)
	}
	return code, nil
}

// GetNextWord は次に出題する単語を返します。出題対象が無い場合も200で completed=true
func (h *StudyHandler) GetNextWord(w http.ResponseWriter, r *http.Request) {
	code, err := studentCodeParam(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	next, err := h.service.GetNextDueWord(r.Context(), code)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, next)
}

func (h *StudyHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	code, err := studentCodeParam(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), code, &req)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result)
}

func (h *StudyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	code, err := studentCodeParam(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), code)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// EnsureProgress は進捗が無ければ作成します。新規作成なら201、既存なら200
func (h *StudyHandler) EnsureProgress(w http.ResponseWriter, r *http.Request) {
	code, err := studentCodeParam(r)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	wordID, err := uuid.Parse(chi.URLParam(r, "word_id"))
	if err != nil {
		webutil.HandleError(w, r, model.NewAppError("INVALID_WORD_ID", "単語IDの形式が正しくありません。", "word_id", model.ErrInvalidInput))
		return
	}

	rec, created, err := h.service.EnsureProgressRecord(r.Context(), code, wordID)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	webutil.RespondWithJSON(w, status, model.NewProgressResponse(rec, created))
}
