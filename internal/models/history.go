package models

import "time"

// PracticeRecord is one row of the append-only practice log.
type PracticeRecord struct {
	ID            int64     `json:"id"`
	PracticeID    string    `json:"practice_id"`
	Timestamp     time.Time `json:"timestamp"`
	SourceArticle string    `json:"source_article"`
	WordsLearned  []string  `json:"words_learned"`
	QuestionCount int       `json:"question_count"`
	CorrectCount  int       `json:"correct_count"`
	Accuracy      float64   `json:"accuracy"`
	Difficulty    int       `json:"difficulty"`
	TimeSpent     int       `json:"time_spent"`
	Language      string    `json:"language"`
}

// QuestionRecord is one row of the append-only answer log. Rows are written
// once per submitted answer and never rewritten.
type QuestionRecord struct {
	ID              int64     `json:"id"`
	QuestionID      string    `json:"question_id"`
	PracticeID      string    `json:"practice_id"`
	Timestamp       time.Time `json:"timestamp"`
	QuestionType    string    `json:"question_type"`
	Word            string    `json:"word"`
	QuestionContent string    `json:"question_content"`
	CorrectAnswer   string    `json:"correct_answer"`
	UserAnswer      string    `json:"user_answer"`
	IsCorrect       bool      `json:"is_correct"`
	Difficulty      int       `json:"difficulty"`
	Language        string    `json:"language"`
}

// PracticeResult is the aggregation of one practice's question records.
type PracticeResult struct {
	TotalCount     int             `json:"total_count"`
	CorrectCount   int             `json:"correct_count"`
	Accuracy       int             `json:"accuracy"`
	WordsLearned   []string        `json:"words_learned"`
	WrongQuestions []WrongQuestion `json:"wrong_questions"`
}

// WrongQuestion is a missed question in a practice result.
type WrongQuestion struct {
	QuestionIndex int    `json:"question_index"`
	Type          string `json:"type"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}
