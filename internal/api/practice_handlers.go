package api

import (
	"net/http"

	"github.com/example/lingodrill/internal/errors"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/services"
)

type generateQuestionsRequest struct {
	Count int `json:"count"`
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateQuestionsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	count := req.Count
	if count <= 0 {
		count = s.SessionSize
	}

	session, err := s.Practice.StartSession(r.Context(), count)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

type submitAnswerRequest struct {
	PracticeID string          `json:"practice_id"`
	Question   models.Question `json:"question"`
	UserAnswer string          `json:"user_answer"`
	// TimeSpent is seconds taken to answer, omitted when the client does not
	// track timing.
	TimeSpent *float64 `json:"time_spent,omitempty"`
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	isCorrect, explanation := s.Practice.Judge(r.Context(), req.Question, req.UserAnswer)

	err := s.Practice.SubmitAnswer(r.Context(), services.SubmitAnswerInput{
		PracticeID: req.PracticeID,
		Question:   req.Question,
		UserAnswer: req.UserAnswer,
		IsCorrect:  isCorrect,
		TimeSpent:  req.TimeSpent,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"is_correct":     isCorrect,
		"correct_answer": req.Question.Answer,
		"explanation":    explanation,
	})
}

type finishPracticeRequest struct {
	PracticeID    string `json:"practice_id"`
	Language      string `json:"language"`
	SourceArticle string `json:"source_article"`
	Difficulty    int    `json:"difficulty"`
	TimeSpent     int    `json:"time_spent"`
}

func (s *Server) handleFinishPractice(w http.ResponseWriter, r *http.Request) {
	var req finishPracticeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Practice.FinishSession(r.Context(), services.FinishPracticeInput{
		PracticeID:    req.PracticeID,
		Language:      req.Language,
		SourceArticle: req.SourceArticle,
		Difficulty:    req.Difficulty,
		TimeSpent:     req.TimeSpent,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handlePracticeResult(w http.ResponseWriter, r *http.Request) {
	practiceID := r.URL.Query().Get("practice_id")
	if practiceID == "" {
		handleError(w, r, errors.NewBadRequestError("practice_id parameter required"))
		return
	}

	result, err := s.Practice.Result(r.Context(), practiceID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

type judgeAnswerRequest struct {
	Question   models.Question `json:"question"`
	UserAnswer string          `json:"user_answer"`
}

func (s *Server) handleJudgeAnswer(w http.ResponseWriter, r *http.Request) {
	var req judgeAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	isCorrect, explanation := s.Practice.Judge(r.Context(), req.Question, req.UserAnswer)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"is_correct":  isCorrect,
		"explanation": explanation,
	})
}

func (s *Server) handleGetExplanation(w http.ResponseWriter, r *http.Request) {
	var req judgeAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	explanation, err := s.Practice.Explain(r.Context(), req.Question, req.UserAnswer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"explanation": explanation})
}
