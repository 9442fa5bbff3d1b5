package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository implementation
func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*models.Profile, error) {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")

	var p models.Profile
	err := r.db.QueryRowContext(ctx, `
SELECT id, current_language, created_at, last_practice
FROM profile
WHERE id = 1
`).Scan(&p.ID, &p.CurrentLanguage, &p.CreatedAt, &p.LastPractice)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no profile configured")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get profile: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT language, level, daily_minutes, practice_count, words_learned, goal, question_preference
FROM language_settings
`)
	if err != nil {
		log.Error("failed to query language settings: %v", err)
		return nil, err
	}
	defer rows.Close()

	p.Languages = map[string]models.LanguageSettings{}
	for rows.Next() {
		var name string
		var s models.LanguageSettings
		if err := rows.Scan(&name, &s.Level, &s.DailyMinutes, &s.PracticeCount, &s.WordsLearned, &s.Goal, &s.QuestionPreference); err != nil {
			log.Error("failed to scan language settings row: %v", err)
			return nil, err
		}
		p.Languages[name] = s
	}
	return &p, rows.Err()
}

func (r *profileRepository) Save(ctx context.Context, p models.Profile) error {
	log := logger.FromContext(ctx).WithPrefix("profile_repo")
	log.Debug("saving profile: current_language=%s, languages=%d", p.CurrentLanguage, len(p.Languages))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		createdAt := p.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		lastPractice := p.LastPractice
		if lastPractice.IsZero() {
			lastPractice = createdAt
		}
		if _, err := t.ExecContext(ctx, `
INSERT INTO profile (id, current_language, created_at, last_practice)
VALUES (1, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    current_language = excluded.current_language,
    last_practice = excluded.last_practice
`, p.CurrentLanguage, createdAt, lastPractice); err != nil {
			return err
		}

		// Language settings are replaced wholesale so removals stick.
		if _, err := t.ExecContext(ctx, `DELETE FROM language_settings`); err != nil {
			return err
		}
		for name, s := range p.Languages {
			if _, err := t.ExecContext(ctx, `
INSERT INTO language_settings (language, level, daily_minutes, practice_count, words_learned, goal, question_preference)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, name, s.Level, s.DailyMinutes, s.PracticeCount, s.WordsLearned, s.Goal, s.QuestionPreference); err != nil {
				return err
			}
		}
		return nil
	})
}
