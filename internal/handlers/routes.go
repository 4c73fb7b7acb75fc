package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes は /api/v1 配下のルートを登録します
func RegisterRoutes(r chi.Router, study *StudyHandler, students *StudentHandler, words *WordHandler) {
	r.Route("/students", func(r chi.Router) {
		r.Post("/", students.CreateStudent)
		r.Get("/", students.ListStudents)

		r.Route("/{student_code}", func(r chi.Router) {
			r.Get("/", students.GetStudent)
			r.Get("/next-word", study.GetNextWord)
			r.Post("/answers", study.SubmitAnswer)
			r.Get("/stats", study.GetStats)
			r.Put("/progress/{word_id}", study.EnsureProgress)
		})
	})

	r.Route("/classes/{class_name}/words", func(r chi.Router) {
		r.Post("/", words.AddWords)
		r.Get("/", words.ListWords)
	})
}
