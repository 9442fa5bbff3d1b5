package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
	"github.com/example/lingodrill/internal/repository/sqlite"
	"github.com/example/lingodrill/internal/testutil"
)

type HistoryRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.HistoryRepository
}

func (s *HistoryRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewHistoryRepository(s.db)
}

func (s *HistoryRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *HistoryRepositorySuite) TestAppendAndFetchQuestions() {
	ctx := context.Background()
	now := time.Now()

	first := models.QuestionRecord{
		QuestionID:      "q1",
		PracticeID:      "p1",
		Timestamp:       now,
		QuestionType:    models.QuestionTypeMultipleChoice,
		Word:            "happy",
		QuestionContent: "Which word means glad?",
		CorrectAnswer:   "happy",
		UserAnswer:      "happy",
		IsCorrect:       true,
		Difficulty:      3,
		Language:        "english",
	}
	second := first
	second.QuestionID = "q2"
	second.Word = "run"
	second.UserAnswer = "walk"
	second.IsCorrect = false

	s.Require().NoError(s.repo.AppendQuestion(ctx, first))
	s.Require().NoError(s.repo.AppendQuestion(ctx, second))
	s.Require().NoError(s.repo.AppendQuestion(ctx, models.QuestionRecord{
		QuestionID: "q3", PracticeID: "p2", Timestamp: now, Language: "english",
	}))

	recs, err := s.repo.QuestionsForPractice(ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(recs, 2)
	s.Assert().Equal("q1", recs[0].QuestionID)
	s.Assert().Equal("q2", recs[1].QuestionID)
	s.Assert().True(recs[0].IsCorrect)
	s.Assert().False(recs[1].IsCorrect)
	s.Assert().Equal("walk", recs[1].UserAnswer)
}

func (s *HistoryRepositorySuite) TestRecentAccuracies() {
	ctx := context.Background()
	now := time.Now()

	practice := func(id, language string, accuracy float64) models.PracticeRecord {
		return models.PracticeRecord{
			PracticeID:    id,
			Timestamp:     now,
			QuestionCount: 10,
			Accuracy:      accuracy,
			Language:      language,
		}
	}

	s.Require().NoError(s.repo.AppendPractice(ctx, practice("p1", "english", 60)))
	s.Require().NoError(s.repo.AppendPractice(ctx, practice("p2", "english", 80)))
	s.Require().NoError(s.repo.AppendPractice(ctx, practice("p3", "spanish", 40)))
	s.Require().NoError(s.repo.AppendPractice(ctx, practice("p4", "english", 90)))

	accs, err := s.repo.RecentAccuracies(ctx, "english", 2)
	s.Require().NoError(err)
	s.Require().Len(accs, 2)
	s.Assert().Equal(90.0, accs[0])
	s.Assert().Equal(80.0, accs[1])

	accs, err = s.repo.RecentAccuracies(ctx, "english", 10)
	s.Require().NoError(err)
	s.Assert().Len(accs, 3)
}

func (s *HistoryRepositorySuite) TestUsedArticles() {
	ctx := context.Background()
	now := time.Now()

	s.Require().NoError(s.repo.AppendPractice(ctx, models.PracticeRecord{
		PracticeID: "p1", Timestamp: now, SourceArticle: "cats.txt", Language: "english",
	}))
	s.Require().NoError(s.repo.AppendPractice(ctx, models.PracticeRecord{
		PracticeID: "p2", Timestamp: now, SourceArticle: "cats.txt", Language: "english",
	}))
	s.Require().NoError(s.repo.AppendPractice(ctx, models.PracticeRecord{
		PracticeID: "p3", Timestamp: now, Language: "english",
	}))

	used, err := s.repo.UsedArticles(ctx)
	s.Require().NoError(err)
	s.Assert().Len(used, 1)
	s.Assert().True(used["cats.txt"])
}

func TestHistoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(HistoryRepositorySuite))
}
