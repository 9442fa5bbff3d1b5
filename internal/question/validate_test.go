package question

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/lingodrill/internal/models"
)

func TestValidate(t *testing.T) {
	valid := models.Question{
		Type:     models.QuestionTypeMultipleChoice,
		Question: "Which word means glad?",
		Options:  []string{"sad", "happy", "angry", "tired"},
		Answer:   "happy",
		Word:     "happy",
	}

	tests := []struct {
		name   string
		mutate func(*models.Question)
		want   bool
	}{
		{"valid multiple choice", func(q *models.Question) {}, true},
		{"valid fill blank", func(q *models.Question) {
			q.Type = models.QuestionTypeFillBlank
			q.Options = nil
		}, true},
		{"missing question", func(q *models.Question) { q.Question = "" }, false},
		{"missing answer", func(q *models.Question) { q.Answer = "" }, false},
		{"missing word", func(q *models.Question) { q.Word = "" }, false},
		{"unknown type", func(q *models.Question) { q.Type = "essay" }, false},
		{"empty type", func(q *models.Question) { q.Type = "" }, false},
		{"three options", func(q *models.Question) { q.Options = q.Options[:3] }, false},
		{"five options", func(q *models.Question) { q.Options = append(q.Options, "sleepy") }, false},
		{"answer not among options", func(q *models.Question) { q.Answer = "glad" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			q.Options = append([]string(nil), valid.Options...)
			tt.mutate(&q)
			assert.Equal(t, tt.want, Validate(q))
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	good1 := models.Question{Type: models.QuestionTypeFillBlank, Question: "a _____", Answer: "b", Word: "b"}
	bad := models.Question{Type: models.QuestionTypeFillBlank, Question: "c _____", Word: "d"}
	good2 := models.Question{Type: models.QuestionTypeFillBlank, Question: "e _____", Answer: "f", Word: "f"}

	out := Filter([]models.Question{good1, bad, good2})
	assert.Equal(t, []models.Question{good1, good2}, out)
}

func TestBankIsValidAndFullSized(t *testing.T) {
	bank := Bank()
	assert.Len(t, bank, 15)
	for _, q := range bank {
		assert.True(t, Validate(q), "bank question %q must validate", q.Question)
	}
}

func TestPlaceholderReview(t *testing.T) {
	q := PlaceholderReview("gato")
	assert.True(t, Validate(q))
	assert.Equal(t, "gato", q.Word)
	assert.Contains(t, q.Options, q.Answer)
	assert.Len(t, q.Options, 4)
}
