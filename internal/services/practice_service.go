package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/lingodrill/internal/ai"
	"github.com/example/lingodrill/internal/errors"
	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
	"github.com/example/lingodrill/internal/session"
)

// SubmitAnswerInput is one answered question within a practice.
type SubmitAnswerInput struct {
	PracticeID string
	Question   models.Question
	UserAnswer string
	IsCorrect  bool
	// TimeSpent is seconds taken to answer, nil when the client did not track it.
	TimeSpent *float64
}

// FinishPracticeInput closes out a practice round.
type FinishPracticeInput struct {
	PracticeID    string
	Language      string
	SourceArticle string
	Difficulty    int
	// TimeSpent is whole seconds for the round.
	TimeSpent int
}

// PracticeService drives practice rounds end to end, from composing a
// session to aggregating its result.
type PracticeService interface {
	StartSession(ctx context.Context, count int) (*models.PracticeSession, error)
	// SubmitAnswer updates the answered word's schedule, then logs the answer.
	// An empty word skips the schedule update but still logs.
	SubmitAnswer(ctx context.Context, in SubmitAnswerInput) error
	Result(ctx context.Context, practiceID string) (*models.PracticeResult, error)
	FinishSession(ctx context.Context, in FinishPracticeInput) (*models.PracticeResult, error)
	// Judge decides whether a free-text answer is acceptable. It degrades to
	// case-insensitive exact matching when no judgment source is configured.
	Judge(ctx context.Context, q models.Question, userAnswer string) (bool, string)
	Explain(ctx context.Context, q models.Question, userAnswer string) (string, error)
}

type practiceService struct {
	profiles ProfileService
	reviews  ReviewService
	history  repository.HistoryRepository
	composer *session.Composer
	source   ai.Source
	now      func() time.Time
}

// NewPracticeService creates a new PracticeService. source may be nil when no
// external judgment service is configured; now may be nil for time.Now.
func NewPracticeService(profiles ProfileService, reviews ReviewService, history repository.HistoryRepository, composer *session.Composer, source ai.Source, now func() time.Time) PracticeService {
	if now == nil {
		now = time.Now
	}
	return &practiceService{
		profiles: profiles,
		reviews:  reviews,
		history:  history,
		composer: composer,
		source:   source,
		now:      now,
	}
}

func (s *practiceService) StartSession(ctx context.Context, count int) (*models.PracticeSession, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	level := s.profiles.AdjustedLevel(ctx, profile)
	questions, sourceArticle, err := s.composer.Compose(ctx, profile, level, count)
	if err != nil {
		return nil, err
	}

	sess := &models.PracticeSession{
		PracticeID:    uuid.NewString(),
		Language:      profile.CurrentLanguage,
		Level:         level,
		SourceArticle: sourceArticle,
		Questions:     questions,
	}
	log.Info("practice started: id=%s, language=%s, level=%d, questions=%d", sess.PracticeID, sess.Language, level, len(questions))
	return sess, nil
}

func (s *practiceService) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) error {
	log := logger.FromContext(ctx)

	if in.PracticeID == "" {
		return errors.NewValidationError("practice_id", "must not be empty")
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	lang := profile.CurrentLanguage

	// Schedule update first, answer log second. The order is fixed so a
	// failed schedule write never leaves a logged answer it did not count.
	if in.Question.Word != "" {
		if err := s.reviews.RecordAnswer(ctx, in.Question.Word, lang, in.IsCorrect, in.TimeSpent); err != nil {
			return err
		}
	} else {
		log.Debug("answer without a word, skipping schedule update: practice=%s", in.PracticeID)
	}

	rec := models.QuestionRecord{
		QuestionID:      uuid.NewString(),
		PracticeID:      in.PracticeID,
		Timestamp:       s.now(),
		QuestionType:    in.Question.Type,
		Word:            in.Question.Word,
		QuestionContent: in.Question.Question,
		CorrectAnswer:   in.Question.Answer,
		UserAnswer:      in.UserAnswer,
		IsCorrect:       in.IsCorrect,
		Difficulty:      in.Question.Difficulty,
		Language:        lang,
	}
	if err := s.history.AppendQuestion(ctx, rec); err != nil {
		log.Error("failed to log answer: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *practiceService) Result(ctx context.Context, practiceID string) (*models.PracticeResult, error) {
	if practiceID == "" {
		return nil, errors.NewValidationError("practice_id", "must not be empty")
	}

	records, err := s.history.QuestionsForPractice(ctx, practiceID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	result := &models.PracticeResult{
		TotalCount:     len(records),
		WordsLearned:   []string{},
		WrongQuestions: []models.WrongQuestion{},
	}
	seenWords := make(map[string]bool)
	for i, rec := range records {
		if rec.IsCorrect {
			result.CorrectCount++
		} else {
			result.WrongQuestions = append(result.WrongQuestions, models.WrongQuestion{
				QuestionIndex: i,
				Type:          rec.QuestionType,
				Question:      rec.QuestionContent,
				UserAnswer:    rec.UserAnswer,
				CorrectAnswer: rec.CorrectAnswer,
			})
		}
		if rec.Word != "" && !seenWords[rec.Word] {
			seenWords[rec.Word] = true
			result.WordsLearned = append(result.WordsLearned, rec.Word)
		}
	}
	if result.TotalCount > 0 {
		result.Accuracy = int(float64(result.CorrectCount)/float64(result.TotalCount)*100 + 0.5)
	}
	return result, nil
}

func (s *practiceService) FinishSession(ctx context.Context, in FinishPracticeInput) (*models.PracticeResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.Result(ctx, in.PracticeID)
	if err != nil {
		return nil, err
	}

	lang := in.Language
	if lang == "" {
		profile, err := s.profiles.Get(ctx)
		if err != nil {
			return nil, err
		}
		lang = profile.CurrentLanguage
	}

	rec := models.PracticeRecord{
		PracticeID:    in.PracticeID,
		Timestamp:     s.now(),
		SourceArticle: in.SourceArticle,
		WordsLearned:  result.WordsLearned,
		QuestionCount: result.TotalCount,
		CorrectCount:  result.CorrectCount,
		Accuracy:      float64(result.Accuracy),
		Difficulty:    in.Difficulty,
		TimeSpent:     in.TimeSpent,
		Language:      lang,
	}
	if err := s.history.AppendPractice(ctx, rec); err != nil {
		log.Error("failed to log practice: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if err := s.profiles.RecordPractice(ctx, lang, len(result.WordsLearned)); err != nil {
		// The round is logged either way; losing the counter bump is not
		// worth failing the request over.
		log.Warn("failed to update practice counters: %v", err)
	}

	log.Info("practice finished: id=%s, accuracy=%d%%, words=%d", in.PracticeID, result.Accuracy, len(result.WordsLearned))
	return result, nil
}

func (s *practiceService) Judge(ctx context.Context, q models.Question, userAnswer string) (bool, string) {
	if q.Type == models.QuestionTypeMultipleChoice || s.source == nil {
		return exactAnswerMatch(q.Answer, userAnswer), ""
	}
	return s.source.JudgeAnswer(ctx, q, userAnswer)
}

func (s *practiceService) Explain(ctx context.Context, q models.Question, userAnswer string) (string, error) {
	if s.source == nil {
		return "", errors.NewUnavailableError("explanation service", nil)
	}
	text, err := s.source.ExplainAnswer(ctx, ai.ExplanationRequest{
		Question:      q.Question,
		QuestionType:  q.Type,
		Word:          q.Word,
		CorrectAnswer: q.Answer,
		UserAnswer:    userAnswer,
	})
	if err != nil {
		return "", errors.NewUnavailableError("explanation service", err)
	}
	return text, nil
}

func exactAnswerMatch(answer, userAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(userAnswer))
}
