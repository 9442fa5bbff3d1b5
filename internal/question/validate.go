package question

import "github.com/example/lingodrill/internal/models"

// Validate reports whether a generated question is acceptable. Items that
// fail are dropped by the caller, never repaired.
//
// Required: type, question, answer, word. Multiple-choice items additionally
// need exactly four options, one of which is the answer.
func Validate(q models.Question) bool {
	if q.Question == "" || q.Answer == "" || q.Word == "" {
		return false
	}
	switch q.Type {
	case models.QuestionTypeFillBlank:
		return true
	case models.QuestionTypeMultipleChoice:
		if len(q.Options) != 4 {
			return false
		}
		for _, opt := range q.Options {
			if opt == q.Answer {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Filter returns the subset of qs passing Validate, preserving order.
func Filter(qs []models.Question) []models.Question {
	valid := make([]models.Question, 0, len(qs))
	for _, q := range qs {
		if Validate(q) {
			valid = append(valid, q)
		}
	}
	return valid
}
