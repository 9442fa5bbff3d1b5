package ai

import (
	"context"

	"github.com/example/lingodrill/internal/models"
)

// GenerationConfig carries the learner parameters every generation request
// is conditioned on.
type GenerationConfig struct {
	VocabularyLevel int
	TargetLanguage  string
	LearningGoal    string
}

// ExplanationRequest asks for a teaching explanation of one answered question.
type ExplanationRequest struct {
	Question      string
	QuestionType  string
	Word          string
	CorrectAnswer string
	UserAnswer    string
}

// Source is the external question/judgment service. Implementations may
// fail, time out, or return malformed output; callers must treat every error
// as a normal degradation path.
type Source interface {
	// GenerateQuestions builds count fresh questions from the article content.
	GenerateQuestions(ctx context.Context, content string, cfg GenerationConfig, count int) ([]models.Question, error)
	// GenerateReviewQuestions builds one or two questions reinforcing a word
	// the learner is due to review.
	GenerateReviewQuestions(ctx context.Context, progress models.WordProgress, cfg GenerationConfig) ([]models.Question, error)
	// JudgeAnswer decides whether a free-text answer is acceptable and may
	// return a short explanation. Never fails: when the model is unreachable
	// it falls back to exact matching.
	JudgeAnswer(ctx context.Context, q models.Question, userAnswer string) (bool, string)
	// ExplainAnswer returns a detailed teaching explanation.
	ExplainAnswer(ctx context.Context, req ExplanationRequest) (string, error)
}
