package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Post("/setup", s.handleSetup)

		r.Get("/languages", s.handleLanguages)
		r.Post("/languages/add", s.handleAddLanguage)
		r.Post("/languages/remove", s.handleRemoveLanguage)
		r.Post("/languages/switch", s.handleSwitchLanguage)

		r.Post("/generate_questions", s.handleGenerateQuestions)
		r.Post("/submit_answer", s.handleSubmitAnswer)
		r.Post("/finish_practice", s.handleFinishPractice)
		r.Get("/practice_result", s.handlePracticeResult)

		r.Get("/mastery_stats", s.handleMasteryStats)
		r.Post("/judge_answer", s.handleJudgeAnswer)
		r.Post("/get_explanation", s.handleGetExplanation)

		r.Get("/progress/export", s.handleExportProgress)
	})

	return r
}
