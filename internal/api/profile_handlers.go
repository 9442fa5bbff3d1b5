package api

import (
	"net/http"

	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/services"
)

type setupRequest struct {
	PreferredLanguage  string `json:"preferred_language"`
	VocabularyLevel    int    `json:"vocabulary_level"`
	DailyMinutes       int    `json:"daily_minutes"`
	LearningGoal       string `json:"learning_goal"`
	QuestionPreference string `json:"question_preference"`
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	err := s.Profiles.Setup(r.Context(), services.SetupInput{
		PreferredLanguage:  req.PreferredLanguage,
		VocabularyLevel:    req.VocabularyLevel,
		DailyMinutes:       req.DailyMinutes,
		LearningGoal:       req.LearningGoal,
		QuestionPreference: req.QuestionPreference,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	overviews, current, err := s.Profiles.Languages(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"languages":        overviews,
		"current_language": current,
	})
}

type languageRequest struct {
	Language           string `json:"language"`
	Level              int    `json:"level"`
	DailyMinutes       int    `json:"daily_minutes"`
	Goal               string `json:"goal"`
	QuestionPreference string `json:"question_preference"`
}

func (s *Server) handleAddLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Profiles.AddLanguage(r.Context(), req.Language, req.Level, req.DailyMinutes, req.Goal, req.QuestionPreference); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleRemoveLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	current, err := s.Profiles.RemoveLanguage(r.Context(), req.Language)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":          true,
		"current_language": current,
	})
}

func (s *Server) handleSwitchLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Profiles.SwitchLanguage(r.Context(), req.Language); err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Debug("current language now %s", req.Language)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"success":          true,
		"current_language": req.Language,
	})
}
