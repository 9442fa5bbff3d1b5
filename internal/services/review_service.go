package services

import (
	"context"
	"time"

	"github.com/example/lingodrill/internal/errors"
	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
	"github.com/example/lingodrill/internal/review"
)

// ReviewService applies answers to the word-progress store through the
// spaced-repetition scheduler and reports mastery statistics.
type ReviewService interface {
	// RecordAnswer folds one answer into the word's schedule. timeSpent is
	// seconds taken to answer, nil when unknown.
	RecordAnswer(ctx context.Context, word, language string, isCorrect bool, timeSpent *float64) error
	MasteryStats(ctx context.Context, language string) (*models.MasteryStats, error)
}

type reviewService struct {
	progress repository.WordProgressRepository
	now      func() time.Time
}

// NewReviewService creates a new ReviewService. now may be nil for time.Now.
func NewReviewService(progress repository.WordProgressRepository, now func() time.Time) ReviewService {
	if now == nil {
		now = time.Now
	}
	return &reviewService{progress: progress, now: now}
}

func (s *reviewService) RecordAnswer(ctx context.Context, word, language string, isCorrect bool, timeSpent *float64) error {
	log := logger.FromContext(ctx)
	log.Debug("recording answer: word=%s, language=%s, correct=%t", word, language, isCorrect)

	if word == "" {
		return errors.NewValidationError("word", "must not be empty")
	}
	if language == "" {
		return errors.NewValidationError("language", "must not be empty")
	}

	rec, err := s.progress.Get(ctx, word, language)
	if err != nil {
		log.Error("failed to load word progress: %v", err)
		return errors.NewInternalError(err)
	}

	now := s.now()
	quality := review.QualityFromPerformance(isCorrect, timeSpent)

	correct := 0
	if isCorrect {
		correct = 1
	}

	if rec == nil {
		// First answer ever for this pair: the record is born here.
		upd := review.CalculateNextReview(quality, review.InitialEaseFactor, 0, 0, now)
		rec = &models.WordProgress{
			Word:            word,
			Language:        language,
			TotalAttempts:   1,
			CorrectAttempts: correct,
			LastReview:      now,
			NextReview:      upd.NextReview,
			EaseFactor:      upd.EaseFactor,
			IntervalDays:    upd.IntervalDays,
			MasteryLevel:    float64(correct),
		}
	} else {
		rec.TotalAttempts++
		rec.CorrectAttempts += correct
		rec.MasteryLevel = float64(rec.CorrectAttempts) / float64(rec.TotalAttempts)

		// Repetitions are not carried across updates: every step is scheduled
		// as if it were the first of a chain. Interval growth still compounds
		// through the stored interval and ease factor.
		upd := review.CalculateNextReview(quality, rec.EaseFactor, rec.IntervalDays, 0, now)
		rec.LastReview = now
		rec.NextReview = upd.NextReview
		rec.EaseFactor = upd.EaseFactor
		rec.IntervalDays = upd.IntervalDays
	}

	if err := s.progress.Upsert(ctx, *rec); err != nil {
		log.Error("failed to save word progress: %v", err)
		return errors.NewInternalError(err)
	}
	log.Debug("word progress saved: word=%s, next_review=%s, interval=%d", word, rec.NextReview.Format(time.RFC3339), rec.IntervalDays)
	return nil
}

func (s *reviewService) MasteryStats(ctx context.Context, language string) (*models.MasteryStats, error) {
	stats, err := s.progress.AggregateStats(ctx, language)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}
