package repository

import (
	"context"
	"time"

	"github.com/example/lingodrill/internal/models"
)

// WordProgressRepository is the durable per-(word, language) learning store.
type WordProgressRepository interface {
	// Get returns nil without error when the pair has never been answered.
	Get(ctx context.Context, word, language string) (*models.WordProgress, error)
	// Upsert replaces any record for the same (word, language), inserting otherwise.
	Upsert(ctx context.Context, p models.WordProgress) error
	// ListDue returns records with next_review <= now in registration order,
	// capped at limit. Ties on due date go to the earliest-registered word.
	ListDue(ctx context.Context, language string, now time.Time, limit int) ([]models.WordProgress, error)
	// AggregateStats summarizes mastery for a language, or all languages when
	// language is empty. AverageMastery is a percentage, 0.0 with no records.
	AggregateStats(ctx context.Context, language string) (*models.MasteryStats, error)
	// List returns every record in registration order.
	List(ctx context.Context) ([]models.WordProgress, error)
	Count(ctx context.Context) (int, error)
}

// ProfileRepository persists the single learner profile and its per-language
// settings.
type ProfileRepository interface {
	// Get returns nil without error when no profile has been set up yet.
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, p models.Profile) error
}

// HistoryRepository is the append-only practice and answer log.
type HistoryRepository interface {
	AppendPractice(ctx context.Context, rec models.PracticeRecord) error
	AppendQuestion(ctx context.Context, rec models.QuestionRecord) error
	QuestionsForPractice(ctx context.Context, practiceID string) ([]models.QuestionRecord, error)
	// RecentAccuracies returns the accuracy of the most recent practices for a
	// language, newest first, capped at limit.
	RecentAccuracies(ctx context.Context, language string, limit int) ([]float64, error)
	// UsedArticles returns the set of source articles already drawn on.
	UsedArticles(ctx context.Context) (map[string]bool, error)
}
