package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"

	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
)

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository implementation
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) AppendPractice(ctx context.Context, rec models.PracticeRecord) error {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("appending practice record: practice_id=%s, questions=%d", rec.PracticeID, rec.QuestionCount)

	words, err := json.Marshal(rec.WordsLearned)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO practice_history (practice_id, timestamp, source_article, words_learned, question_count, correct_count, accuracy, difficulty, time_spent, language)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rec.PracticeID, rec.Timestamp, rec.SourceArticle, string(words), rec.QuestionCount, rec.CorrectCount, rec.Accuracy, rec.Difficulty, rec.TimeSpent, rec.Language)
	if err != nil {
		log.Error("failed to append practice record: %v", err)
	}
	return err
}

func (r *historyRepository) AppendQuestion(ctx context.Context, rec models.QuestionRecord) error {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("appending question record: practice_id=%s, word=%s, correct=%t", rec.PracticeID, rec.Word, rec.IsCorrect)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO question_history (question_id, practice_id, timestamp, question_type, word, question_content, correct_answer, user_answer, is_correct, difficulty, language)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rec.QuestionID, rec.PracticeID, rec.Timestamp, rec.QuestionType, rec.Word, rec.QuestionContent, rec.CorrectAnswer, rec.UserAnswer, rec.IsCorrect, rec.Difficulty, rec.Language)
	if err != nil {
		log.Error("failed to append question record: %v", err)
	}
	return err
}

func (r *historyRepository) QuestionsForPractice(ctx context.Context, practiceID string) ([]models.QuestionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("fetching question records: practice_id=%s", practiceID)

	rows, err := r.db.QueryContext(ctx, `
SELECT id, question_id, practice_id, timestamp, question_type, word, question_content, correct_answer, user_answer, is_correct, difficulty, language
FROM question_history
WHERE practice_id = ?
ORDER BY id
`, practiceID)
	if err != nil {
		log.Error("failed to query question records: %v", err)
		return nil, err
	}
	defer rows.Close()

	var recs []models.QuestionRecord
	for rows.Next() {
		var rec models.QuestionRecord
		if err := rows.Scan(&rec.ID, &rec.QuestionID, &rec.PracticeID, &rec.Timestamp, &rec.QuestionType, &rec.Word, &rec.QuestionContent, &rec.CorrectAnswer, &rec.UserAnswer, &rec.IsCorrect, &rec.Difficulty, &rec.Language); err != nil {
			log.Error("failed to scan question record row: %v", err)
			return nil, err
		}
		recs = append(recs, rec)
	}
	log.Debug("found %d question records", len(recs))
	return recs, rows.Err()
}

func (r *historyRepository) RecentAccuracies(ctx context.Context, language string, limit int) ([]float64, error) {
	log := logger.FromContext(ctx).WithPrefix("history_repo")
	log.Debug("fetching recent accuracies: language=%s, limit=%d", language, limit)

	query := sqlBuilder.Select("accuracy").
		From("practice_history").
		OrderBy("id DESC").
		Limit(uint64(limit))
	if language != "" {
		query = query.Where(squirrel.Eq{"language": language})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query recent accuracies: %v", err)
		return nil, err
	}
	defer rows.Close()

	var accs []float64
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		accs = append(accs, a)
	}
	return accs, rows.Err()
}

func (r *historyRepository) UsedArticles(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT DISTINCT source_article FROM practice_history WHERE source_article != ''
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	used := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		used[name] = true
	}
	return used, rows.Err()
}
