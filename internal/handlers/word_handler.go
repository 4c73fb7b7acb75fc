// internal/handlers/word_handler.go
package handlers

import (
	"net/http"
	"strings"

	"go_5_box_vocab/internal/model"
	"go_5_box_vocab/internal/service"
	"go_5_box_vocab/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.CatalogService
}

func NewWordHandler(s service.CatalogService) *WordHandler {
	return &WordHandler{service: s}
}

// AddWords は単語をクラスのカタログに一括登録します
func (h *WordHandler) AddWords(w http.ResponseWriter, r *http.Request) {
	className := strings.TrimSpace(chi.URLParam(r, "class_name"))

	var req model.AddWordsRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, r, err)
		return
	}

	resp, err := h.service.AddWords(r.Context(), className, &req)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	className := strings.TrimSpace(chi.URLParam(r, "class_name"))

	words, err := h.service.ListWords(r.Context(), className)
	if err != nil {
		webutil.HandleError(w, r, err)
		return
	}
	if words == nil {
		words = []*model.Word{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words)
}
