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

type WordProgressRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.WordProgressRepository
}

func (s *WordProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewWordProgressRepository(s.db)
}

func (s *WordProgressRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *WordProgressRepositorySuite) record(word, language string, next time.Time, mastery float64) models.WordProgress {
	return models.WordProgress{
		Word:            word,
		Language:        language,
		TotalAttempts:   4,
		CorrectAttempts: 3,
		LastReview:      next.AddDate(0, 0, -1),
		NextReview:      next,
		EaseFactor:      2.5,
		IntervalDays:    1,
		MasteryLevel:    mastery,
	}
}

func (s *WordProgressRepositorySuite) TestGetMissingReturnsNil() {
	ctx := context.Background()

	rec, err := s.repo.Get(ctx, "nope", "english")
	s.Require().NoError(err)
	s.Assert().Nil(rec)
}

func (s *WordProgressRepositorySuite) TestUpsertRoundTrip() {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	rec := s.record("happy", "english", now, 0.75)
	s.Require().NoError(s.repo.Upsert(ctx, rec))

	got, err := s.repo.Get(ctx, "happy", "english")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(4, got.TotalAttempts)
	s.Assert().Equal(3, got.CorrectAttempts)
	s.Assert().Equal(2.5, got.EaseFactor)
	s.Assert().Equal(1, got.IntervalDays)
	s.Assert().Equal(0.75, got.MasteryLevel)

	// Second upsert for the same pair replaces, never duplicates.
	rec.TotalAttempts = 5
	rec.CorrectAttempts = 4
	rec.EaseFactor = 2.6
	rec.IntervalDays = 6
	rec.MasteryLevel = 0.8
	s.Require().NoError(s.repo.Upsert(ctx, rec))

	got, err = s.repo.Get(ctx, "happy", "english")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(5, got.TotalAttempts)
	s.Assert().Equal(2.6, got.EaseFactor)
	s.Assert().Equal(6, got.IntervalDays)

	count, err := s.repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *WordProgressRepositorySuite) TestListDueOrderAndLimit() {
	ctx := context.Background()
	now := time.Now()

	// Registered in this order; "later" is due after "sooner" but was
	// registered first, so it must still come out first.
	s.Require().NoError(s.repo.Upsert(ctx, s.record("later", "english", now.Add(-1*time.Hour), 0)))
	s.Require().NoError(s.repo.Upsert(ctx, s.record("sooner", "english", now.Add(-2*time.Hour), 0)))
	s.Require().NoError(s.repo.Upsert(ctx, s.record("future", "english", now.Add(24*time.Hour), 0)))
	s.Require().NoError(s.repo.Upsert(ctx, s.record("other", "spanish", now.Add(-1*time.Hour), 0)))

	due, err := s.repo.ListDue(ctx, "english", now, 5)
	s.Require().NoError(err)
	s.Require().Len(due, 2)
	s.Assert().Equal("later", due[0].Word)
	s.Assert().Equal("sooner", due[1].Word)

	due, err = s.repo.ListDue(ctx, "english", now, 1)
	s.Require().NoError(err)
	s.Require().Len(due, 1)
	s.Assert().Equal("later", due[0].Word)
}

func (s *WordProgressRepositorySuite) TestAggregateStats() {
	ctx := context.Background()
	now := time.Now()

	s.Require().NoError(s.repo.Upsert(ctx, s.record("a", "english", now, 0.75)))
	s.Require().NoError(s.repo.Upsert(ctx, s.record("b", "english", now, 0.25)))
	s.Require().NoError(s.repo.Upsert(ctx, s.record("c", "spanish", now, 1.0)))

	stats, err := s.repo.AggregateStats(ctx, "english")
	s.Require().NoError(err)
	s.Assert().Equal(2, stats.TotalWords)
	s.Assert().Equal(0, stats.MasteredWords)
	s.Assert().Equal(2, stats.LearningWords)
	s.Assert().Equal(50.0, stats.AverageMastery)

	stats, err = s.repo.AggregateStats(ctx, "")
	s.Require().NoError(err)
	s.Assert().Equal(3, stats.TotalWords)
	s.Assert().Equal(1, stats.MasteredWords)
	s.Assert().Equal(2, stats.LearningWords)
	s.Assert().Equal(66.7, stats.AverageMastery)
}

func (s *WordProgressRepositorySuite) TestAggregateStatsEmpty() {
	stats, err := s.repo.AggregateStats(context.Background(), "english")
	s.Require().NoError(err)
	s.Assert().Equal(0, stats.TotalWords)
	s.Assert().Equal(0.0, stats.AverageMastery)
}

func (s *WordProgressRepositorySuite) TestListReturnsRegistrationOrder() {
	ctx := context.Background()
	now := time.Now()

	s.Require().NoError(s.repo.Upsert(ctx, s.record("first", "english", now, 0)))
	s.Require().NoError(s.repo.Upsert(ctx, s.record("second", "spanish", now, 0)))

	all, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Assert().Equal("first", all[0].Word)
	s.Assert().Equal("second", all[1].Word)
}

func TestWordProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(WordProgressRepositorySuite))
}
