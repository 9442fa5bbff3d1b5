package models

import "time"

// LanguageSettings holds per-language learner settings and counters.
type LanguageSettings struct {
	Level              int    `json:"level"`
	DailyMinutes       int    `json:"daily_minutes"`
	PracticeCount      int    `json:"practice_count"`
	WordsLearned       int    `json:"words_learned"`
	Goal               string `json:"goal"`
	QuestionPreference string `json:"question_preference"`
}

// Profile is the single learner's configuration. CurrentLanguage must be a
// key of Languages.
type Profile struct {
	ID              int64                       `json:"id"`
	CurrentLanguage string                      `json:"current_language"`
	Languages       map[string]LanguageSettings `json:"languages"`
	CreatedAt       time.Time                   `json:"created_at"`
	LastPractice    time.Time                   `json:"last_practice"`
}

// LanguageOverview is a language entry enriched with word mastery counts for
// the languages listing.
type LanguageOverview struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	DailyMinutes  int    `json:"daily_minutes"`
	PracticeCount int    `json:"practice_count"`
	WordsLearned  int    `json:"words_learned"`
	MasteredWords int    `json:"mastered_words"`
	LearningWords int    `json:"learning_words"`
	IsCurrent     bool   `json:"is_current"`
}
