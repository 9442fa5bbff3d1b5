// Package session assembles practice sessions: a fixed-size, shuffled mix of
// due-review questions and fresh questions generated from source articles,
// degrading to a built-in bank whenever generation cannot deliver.
package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/example/lingodrill/internal/ai"
	"github.com/example/lingodrill/internal/articles"
	"github.com/example/lingodrill/internal/errors"
	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/question"
	"github.com/example/lingodrill/internal/repository"
	"github.com/example/lingodrill/internal/review"
)

// DefaultTargetCount is the session size when the caller does not override it.
const DefaultTargetCount = 15

// maxReviewPerWord caps how many generated questions one due word contributes.
const maxReviewPerWord = 2

// ArticleSource supplies source texts for fresh question generation.
type ArticleSource interface {
	Pick(rng *rand.Rand, used map[string]bool) (name, content string, err error)
}

// Params wires a Composer. Source may be nil when no generation service is
// configured; Rand and Now default to the process-local generator and clock.
type Params struct {
	Due         *review.DueSelector
	History     repository.HistoryRepository
	Articles    ArticleSource
	Source      ai.Source
	ReviewLimit int
	Rand        *rand.Rand
	Now         func() time.Time
}

// Composer builds practice sessions.
type Composer struct {
	due         *review.DueSelector
	history     repository.HistoryRepository
	articles    ArticleSource
	source      ai.Source
	reviewLimit int
	rng         *rand.Rand
	now         func() time.Time
}

// NewComposer creates a Composer from p, filling defaults for unset fields.
func NewComposer(p Params) *Composer {
	if p.ReviewLimit <= 0 {
		p.ReviewLimit = review.DefaultDueLimit
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Composer{
		due:         p.Due,
		history:     p.History,
		articles:    p.Articles,
		source:      p.Source,
		reviewLimit: p.ReviewLimit,
		rng:         p.Rand,
		now:         p.Now,
	}
}

// Compose builds an ordered question list of exactly targetCount items for
// the profile's current language. It returns the source article drawn on, if
// any. External-source failures degrade to placeholders and the built-in
// bank; the only fatal condition is a structurally invalid profile.
func (c *Composer) Compose(ctx context.Context, profile *models.Profile, level, targetCount int) ([]models.Question, string, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	if profile == nil {
		return nil, "", errors.NewValidationError("profile", "not configured")
	}
	lang := profile.CurrentLanguage
	if lang == "" {
		return nil, "", errors.NewValidationError("current_language", "not set")
	}
	if targetCount <= 0 {
		targetCount = DefaultTargetCount
	}

	settings := profile.Languages[lang]
	cfg := ai.GenerationConfig{
		VocabularyLevel: level,
		TargetLanguage:  lang,
		LearningGoal:    settings.Goal,
	}

	// 1. Words due for review. A store failure costs the review slice, not
	// the session.
	due, err := c.due.GetDue(ctx, lang, c.reviewLimit)
	if err != nil {
		log.Warn("failed to fetch due words: %v", err)
		due = nil
	}
	log.Debug("due words: %d", len(due))

	// 2. Review questions, one to two per due word, placeholder on failure so
	// review coverage is never dropped.
	reviewQs := c.reviewQuestions(ctx, due, cfg)

	// 3. Fresh questions for the rest.
	var freshQs []models.Question
	var sourceArticle string
	if remaining := targetCount - len(reviewQs); remaining > 0 {
		freshQs, sourceArticle = c.freshQuestions(ctx, cfg, remaining)
	}

	// 4. Mix. Uniform shuffle, every position equally likely.
	all := append(reviewQs, freshQs...)
	c.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	// 5. Pad from the bank, skipping items already present.
	if len(all) < targetCount {
		log.Debug("under target (%d < %d), padding from built-in bank", len(all), targetCount)
		all = padFromBank(all, targetCount)
	}

	// 6. Never exceed the target.
	if len(all) > targetCount {
		all = all[:targetCount]
	}
	return all, sourceArticle, nil
}

func (c *Composer) reviewQuestions(ctx context.Context, due []models.WordProgress, cfg ai.GenerationConfig) []models.Question {
	log := logger.FromContext(ctx).WithPrefix("session")

	var out []models.Question
	for _, wp := range due {
		if c.source == nil {
			out = append(out, question.PlaceholderReview(wp.Word))
			continue
		}
		generated, err := c.source.GenerateReviewQuestions(ctx, wp, cfg)
		if err != nil {
			log.Warn("review generation failed for %q, using placeholder: %v", wp.Word, err)
			out = append(out, question.PlaceholderReview(wp.Word))
			continue
		}
		valid := question.Filter(generated)
		if len(valid) == 0 {
			log.Warn("no valid review questions for %q, using placeholder", wp.Word)
			out = append(out, question.PlaceholderReview(wp.Word))
			continue
		}
		if len(valid) > maxReviewPerWord {
			valid = valid[:maxReviewPerWord]
		}
		out = append(out, valid...)
	}
	return out
}

func (c *Composer) freshQuestions(ctx context.Context, cfg ai.GenerationConfig, count int) ([]models.Question, string) {
	log := logger.FromContext(ctx).WithPrefix("session")

	if c.source == nil {
		log.Debug("no question source configured, using built-in bank")
		return bankSlice(count), ""
	}

	used, err := c.history.UsedArticles(ctx)
	if err != nil {
		log.Warn("failed to load used articles: %v", err)
		used = nil
	}

	name, content, err := c.articles.Pick(c.rng, used)
	if err != nil {
		if err != articles.ErrNoArticles {
			log.Warn("failed to pick article: %v", err)
		} else {
			log.Debug("no articles available, using built-in bank")
		}
		return bankSlice(count), ""
	}

	// One attempt, no retry: a failed batch falls straight back to the bank
	// to bound worst-case latency.
	generated, err := c.source.GenerateQuestions(ctx, content, cfg, count)
	if err != nil {
		log.Warn("fresh generation failed, using built-in bank: %v", err)
		return bankSlice(count), ""
	}
	valid := question.Filter(generated)
	if len(valid) == 0 {
		log.Warn("generation produced no valid questions, using built-in bank")
		return bankSlice(count), ""
	}
	if len(valid) > count {
		valid = valid[:count]
	}
	return valid, name
}

func bankSlice(count int) []models.Question {
	bank := question.Bank()
	if count > len(bank) {
		count = len(bank)
	}
	return bank[:count]
}

// padFromBank tops qs up to target with bank items, in bank order, skipping
// any item already present by word plus question text.
func padFromBank(qs []models.Question, target int) []models.Question {
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		seen[q.Word+"\x00"+q.Question] = true
	}
	for _, b := range question.Bank() {
		if len(qs) >= target {
			break
		}
		key := b.Word + "\x00" + b.Question
		if seen[key] {
			continue
		}
		seen[key] = true
		qs = append(qs, b)
	}
	return qs
}
