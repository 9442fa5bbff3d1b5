package models

import "time"

// WordProgress is the durable learning record for one (word, language) pair.
// Absence of a record means the word has never been answered; a zero record
// is never written.
type WordProgress struct {
	Word            string    `json:"word"`
	Language        string    `json:"language"`
	TotalAttempts   int       `json:"total_attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	LastReview      time.Time `json:"last_review"`
	NextReview      time.Time `json:"next_review"`
	EaseFactor      float64   `json:"ease_factor"`
	IntervalDays    int       `json:"interval"`
	MasteryLevel    float64   `json:"mastery_level"`
}

// MasteryStats aggregates word progress for one language, or all languages
// when the language filter is empty.
type MasteryStats struct {
	TotalWords     int     `json:"total_words"`
	MasteredWords  int     `json:"mastered_words"`
	LearningWords  int     `json:"learning_words"`
	AverageMastery float64 `json:"average_mastery"`
}
