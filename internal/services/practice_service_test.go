package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/testutil/mocks"
)

func TestResultAggregatesAnswers(t *testing.T) {
	history := new(mocks.MockHistoryRepository)
	history.On("QuestionsForPractice", mock.Anything, "p1").Return([]models.QuestionRecord{
		{QuestionID: "q1", Word: "happy", IsCorrect: true},
		{QuestionID: "q2", Word: "run", IsCorrect: false, QuestionType: models.QuestionTypeFillBlank,
			QuestionContent: "She likes to _____", UserAnswer: "walk", CorrectAnswer: "run"},
		{QuestionID: "q3", Word: "happy", IsCorrect: true},
		{QuestionID: "q4", Word: "", IsCorrect: true},
	}, nil)

	svc := NewPracticeService(nil, nil, history, nil, nil, nil)
	result, err := svc.Result(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalCount)
	assert.Equal(t, 3, result.CorrectCount)
	assert.Equal(t, 75, result.Accuracy)
	assert.Equal(t, []string{"happy", "run"}, result.WordsLearned)
	require.Len(t, result.WrongQuestions, 1)
	assert.Equal(t, 1, result.WrongQuestions[0].QuestionIndex)
	assert.Equal(t, "walk", result.WrongQuestions[0].UserAnswer)
	assert.Equal(t, "run", result.WrongQuestions[0].CorrectAnswer)
}

func TestResultEmptyPractice(t *testing.T) {
	history := new(mocks.MockHistoryRepository)
	history.On("QuestionsForPractice", mock.Anything, "p1").Return([]models.QuestionRecord{}, nil)

	svc := NewPracticeService(nil, nil, history, nil, nil, nil)
	result, err := svc.Result(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 0, result.Accuracy)
	assert.Empty(t, result.WordsLearned)
	assert.Empty(t, result.WrongQuestions)
}

func TestJudgeFallsBackToExactMatch(t *testing.T) {
	svc := NewPracticeService(nil, nil, nil, nil, nil, nil)

	q := models.Question{Type: models.QuestionTypeFillBlank, Question: "a _____", Answer: "Run", Word: "run"}

	correct, _ := svc.Judge(context.Background(), q, "  run ")
	assert.True(t, correct)

	correct, _ = svc.Judge(context.Background(), q, "walk")
	assert.False(t, correct)
}

func TestJudgeMultipleChoiceNeverCallsSource(t *testing.T) {
	source := new(mocks.MockQuestionSource)
	svc := NewPracticeService(nil, nil, nil, nil, source, nil)

	q := models.Question{
		Type:     models.QuestionTypeMultipleChoice,
		Question: "Which word means glad?",
		Options:  []string{"sad", "happy", "angry", "tired"},
		Answer:   "happy",
		Word:     "happy",
	}

	correct, _ := svc.Judge(context.Background(), q, "happy")
	assert.True(t, correct)
	source.AssertNotCalled(t, "JudgeAnswer", mock.Anything, mock.Anything, mock.Anything)
}

func TestJudgeDelegatesFreeText(t *testing.T) {
	source := new(mocks.MockQuestionSource)
	q := models.Question{Type: models.QuestionTypeFillBlank, Question: "a _____", Answer: "run", Word: "run"}
	source.On("JudgeAnswer", mock.Anything, q, "sprint").Return(true, "close enough")

	svc := NewPracticeService(nil, nil, nil, nil, source, nil)
	correct, explanation := svc.Judge(context.Background(), q, "sprint")
	assert.True(t, correct)
	assert.Equal(t, "close enough", explanation)
	source.AssertExpectations(t)
}

func TestSubmitAnswerLogsAndUpdatesProgress(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english"), nil)
	profileSvc := NewProfileService(profiles, nil, nil)

	progress := new(mocks.MockWordProgressRepository)
	progress.On("Get", mock.Anything, "happy", "english").Return(nil, nil)
	progress.On("Upsert", mock.Anything, mock.AnythingOfType("models.WordProgress")).Return(nil)
	reviewSvc := NewReviewService(progress, fixedNow)

	history := new(mocks.MockHistoryRepository)
	var logged models.QuestionRecord
	history.On("AppendQuestion", mock.Anything, mock.AnythingOfType("models.QuestionRecord")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(models.QuestionRecord) }).
		Return(nil)

	svc := NewPracticeService(profileSvc, reviewSvc, history, nil, nil, fixedNow)

	err := svc.SubmitAnswer(context.Background(), SubmitAnswerInput{
		PracticeID: "p1",
		Question: models.Question{
			Type: models.QuestionTypeFillBlank, Question: "I am _____", Answer: "happy",
			Word: "happy", Difficulty: 3,
		},
		UserAnswer: "happy",
		IsCorrect:  true,
	})
	require.NoError(t, err)

	progress.AssertExpectations(t)
	assert.Equal(t, "p1", logged.PracticeID)
	assert.Equal(t, "happy", logged.Word)
	assert.True(t, logged.IsCorrect)
	assert.Equal(t, "english", logged.Language)
	assert.NotEmpty(t, logged.QuestionID)
}

func TestSubmitAnswerWithoutWordSkipsProgress(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english"), nil)
	profileSvc := NewProfileService(profiles, nil, nil)

	progress := new(mocks.MockWordProgressRepository)
	reviewSvc := NewReviewService(progress, fixedNow)

	history := new(mocks.MockHistoryRepository)
	history.On("AppendQuestion", mock.Anything, mock.AnythingOfType("models.QuestionRecord")).Return(nil)

	svc := NewPracticeService(profileSvc, reviewSvc, history, nil, nil, fixedNow)

	err := svc.SubmitAnswer(context.Background(), SubmitAnswerInput{
		PracticeID: "p1",
		Question:   models.Question{Type: models.QuestionTypeFillBlank, Question: "x", Answer: "y"},
		UserAnswer: "y",
		IsCorrect:  true,
	})
	require.NoError(t, err)

	progress.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	history.AssertExpectations(t)
}

func TestFinishSessionLogsPracticeAndCounters(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english"), nil)
	profiles.On("Save", mock.Anything, mock.AnythingOfType("models.Profile")).Return(nil)
	profileSvc := NewProfileService(profiles, nil, nil)

	history := new(mocks.MockHistoryRepository)
	history.On("QuestionsForPractice", mock.Anything, "p1").Return([]models.QuestionRecord{
		{QuestionID: "q1", Word: "happy", IsCorrect: true},
		{QuestionID: "q2", Word: "run", IsCorrect: false},
	}, nil)

	var logged models.PracticeRecord
	history.On("AppendPractice", mock.Anything, mock.AnythingOfType("models.PracticeRecord")).
		Run(func(args mock.Arguments) { logged = args.Get(1).(models.PracticeRecord) }).
		Return(nil)

	svc := NewPracticeService(profileSvc, nil, history, nil, nil, fixedNow)

	result, err := svc.FinishSession(context.Background(), FinishPracticeInput{
		PracticeID:    "p1",
		Language:      "english",
		SourceArticle: "cats.txt",
		Difficulty:    6,
		TimeSpent:     300,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 50, result.Accuracy)

	assert.Equal(t, "p1", logged.PracticeID)
	assert.Equal(t, "cats.txt", logged.SourceArticle)
	assert.Equal(t, 50.0, logged.Accuracy)
	assert.Equal(t, 6, logged.Difficulty)
	assert.Equal(t, 300, logged.TimeSpent)
	assert.Equal(t, []string{"happy", "run"}, logged.WordsLearned)
	assert.True(t, logged.Timestamp.Equal(fixedNow()))
	history.AssertExpectations(t)
}
