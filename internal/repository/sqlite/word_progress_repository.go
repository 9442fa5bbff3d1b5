package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type wordProgressRepository struct {
	db *sql.DB
}

// NewWordProgressRepository creates a new WordProgressRepository implementation
func NewWordProgressRepository(db *sql.DB) repository.WordProgressRepository {
	return &wordProgressRepository{db: db}
}

func (r *wordProgressRepository) Get(ctx context.Context, word, language string) (*models.WordProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting word progress: word=%s, language=%s", word, language)

	var p models.WordProgress
	err := r.db.QueryRowContext(ctx, `
SELECT word, language, total_attempts, correct_attempts, last_review, next_review, ease_factor, interval_days, mastery_level
FROM word_progress
WHERE word = ? AND language = ?
`, word, language).Scan(&p.Word, &p.Language, &p.TotalAttempts, &p.CorrectAttempts, &p.LastReview, &p.NextReview, &p.EaseFactor, &p.IntervalDays, &p.MasteryLevel)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word progress not found: word=%s", word)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word progress: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *wordProgressRepository) Upsert(ctx context.Context, p models.WordProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting word progress: word=%s, language=%s, interval=%d, ease=%.2f",
		p.Word, p.Language, p.IntervalDays, p.EaseFactor)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO word_progress (word, language, total_attempts, correct_attempts, last_review, next_review, ease_factor, interval_days, mastery_level)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (word, language) DO UPDATE SET
    total_attempts = excluded.total_attempts,
    correct_attempts = excluded.correct_attempts,
    last_review = excluded.last_review,
    next_review = excluded.next_review,
    ease_factor = excluded.ease_factor,
    interval_days = excluded.interval_days,
    mastery_level = excluded.mastery_level
`, p.Word, p.Language, p.TotalAttempts, p.CorrectAttempts, p.LastReview, p.NextReview, p.EaseFactor, p.IntervalDays, p.MasteryLevel)
	if err != nil {
		log.Error("failed to upsert word progress: %v", err)
	}
	return err
}

func (r *wordProgressRepository) ListDue(ctx context.Context, language string, now time.Time, limit int) ([]models.WordProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing due words: language=%s, limit=%d", language, limit)

	// rowid order preserves registration order, so ties on due date go to the
	// earliest-registered word rather than the earliest-due one.
	rows, err := r.db.QueryContext(ctx, `
SELECT word, language, total_attempts, correct_attempts, last_review, next_review, ease_factor, interval_days, mastery_level
FROM word_progress
WHERE language = ? AND next_review <= ?
ORDER BY rowid
LIMIT ?
`, language, now, limit)
	if err != nil {
		log.Error("failed to query due words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var due []models.WordProgress
	for rows.Next() {
		var p models.WordProgress
		if err := rows.Scan(&p.Word, &p.Language, &p.TotalAttempts, &p.CorrectAttempts, &p.LastReview, &p.NextReview, &p.EaseFactor, &p.IntervalDays, &p.MasteryLevel); err != nil {
			log.Error("failed to scan due word row: %v", err)
			return nil, err
		}
		due = append(due, p)
	}
	log.Debug("found %d due words", len(due))
	return due, rows.Err()
}

func (r *wordProgressRepository) AggregateStats(ctx context.Context, language string) (*models.MasteryStats, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("aggregating mastery stats: language=%q", language)

	query := sqlBuilder.Select(
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN mastery_level >= 0.8 THEN 1 ELSE 0 END), 0)",
		"COALESCE(AVG(mastery_level), 0)",
	).From("word_progress")
	if language != "" {
		query = query.Where(squirrel.Eq{"language": language})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stats models.MasteryStats
	var avg float64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&stats.TotalWords, &stats.MasteredWords, &avg); err != nil {
		log.Error("failed to aggregate stats: %v", err)
		return nil, err
	}
	stats.LearningWords = stats.TotalWords - stats.MasteredWords
	if stats.TotalWords > 0 {
		// Percentage rounded to one decimal, matching the legacy report format.
		stats.AverageMastery = float64(int(avg*1000+0.5)) / 10
	}
	log.Debug("stats: total=%d, mastered=%d, avg=%.1f%%", stats.TotalWords, stats.MasteredWords, stats.AverageMastery)
	return &stats, nil
}

func (r *wordProgressRepository) List(ctx context.Context) ([]models.WordProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT word, language, total_attempts, correct_attempts, last_review, next_review, ease_factor, interval_days, mastery_level
FROM word_progress
ORDER BY rowid
`)
	if err != nil {
		log.Error("failed to list word progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var all []models.WordProgress
	for rows.Next() {
		var p models.WordProgress
		if err := rows.Scan(&p.Word, &p.Language, &p.TotalAttempts, &p.CorrectAttempts, &p.LastReview, &p.NextReview, &p.EaseFactor, &p.IntervalDays, &p.MasteryLevel); err != nil {
			log.Error("failed to scan word progress row: %v", err)
			return nil, err
		}
		all = append(all, p)
	}
	return all, rows.Err()
}

func (r *wordProgressRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_progress`).Scan(&count)
	return count, err
}
