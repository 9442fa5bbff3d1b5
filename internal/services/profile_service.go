package services

import (
	"context"
	"time"

	"github.com/example/lingodrill/internal/errors"
	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/repository"
)

const (
	defaultLevel        = 5
	defaultDailyMinutes = 15
	minLevel            = 1
	maxLevel            = 10

	// Number of recent practices the difficulty heuristic looks at.
	accuracyWindow = 5
)

// SetupInput is the first-time learner configuration.
type SetupInput struct {
	PreferredLanguage  string
	VocabularyLevel    int
	DailyMinutes       int
	LearningGoal       string
	QuestionPreference string
}

// ProfileService manages the learner profile and its languages.
type ProfileService interface {
	Setup(ctx context.Context, in SetupInput) error
	// Get returns the profile, or a validation error when setup has not been
	// completed. A missing profile is the one fatal condition surfaced to
	// callers.
	Get(ctx context.Context) (*models.Profile, error)
	Languages(ctx context.Context) ([]models.LanguageOverview, string, error)
	AddLanguage(ctx context.Context, name string, level, dailyMinutes int, goal, preference string) error
	RemoveLanguage(ctx context.Context, name string) (newCurrent string, err error)
	SwitchLanguage(ctx context.Context, name string) error
	// AdjustedLevel applies the accuracy-based difficulty heuristic to the
	// current language's base level.
	AdjustedLevel(ctx context.Context, profile *models.Profile) int
	// RecordPractice bumps the per-language practice counters.
	RecordPractice(ctx context.Context, language string, wordsLearned int) error
}

type profileService struct {
	profiles repository.ProfileRepository
	progress repository.WordProgressRepository
	history  repository.HistoryRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository, progress repository.WordProgressRepository, history repository.HistoryRepository) ProfileService {
	return &profileService{profiles: profiles, progress: progress, history: history}
}

func (s *profileService) Setup(ctx context.Context, in SetupInput) error {
	log := logger.FromContext(ctx)

	if in.PreferredLanguage == "" {
		return errors.NewValidationError("preferred_language", "must not be empty")
	}
	level := clampLevel(in.VocabularyLevel)
	minutes := in.DailyMinutes
	if minutes <= 0 {
		minutes = defaultDailyMinutes
	}

	profile := models.Profile{
		CurrentLanguage: in.PreferredLanguage,
		Languages: map[string]models.LanguageSettings{
			in.PreferredLanguage: {
				Level:              level,
				DailyMinutes:       minutes,
				Goal:               in.LearningGoal,
				QuestionPreference: in.QuestionPreference,
			},
		},
		CreatedAt: time.Now(),
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		log.Error("failed to save profile: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("profile created: language=%s, level=%d", in.PreferredLanguage, level)
	return nil
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewValidationError("profile", "setup not completed")
	}
	if profile.CurrentLanguage == "" {
		return nil, errors.NewValidationError("current_language", "not set")
	}
	return profile, nil
}

func (s *profileService) Languages(ctx context.Context) ([]models.LanguageOverview, string, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	log := logger.FromContext(ctx)
	overviews := make([]models.LanguageOverview, 0, len(profile.Languages))
	for name, settings := range profile.Languages {
		stats, err := s.progress.AggregateStats(ctx, name)
		if err != nil {
			log.Warn("failed to aggregate stats for %s: %v", name, err)
			stats = &models.MasteryStats{}
		}
		overviews = append(overviews, models.LanguageOverview{
			Name:          name,
			Level:         settings.Level,
			DailyMinutes:  settings.DailyMinutes,
			PracticeCount: settings.PracticeCount,
			WordsLearned:  settings.WordsLearned,
			MasteredWords: stats.MasteredWords,
			LearningWords: stats.LearningWords,
			IsCurrent:     name == profile.CurrentLanguage,
		})
	}
	return overviews, profile.CurrentLanguage, nil
}

func (s *profileService) AddLanguage(ctx context.Context, name string, level, dailyMinutes int, goal, preference string) error {
	if name == "" {
		return errors.NewValidationError("language", "must not be empty")
	}
	profile, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if _, exists := profile.Languages[name]; exists {
		return errors.NewBadRequestError("language already added: " + name)
	}
	if dailyMinutes <= 0 {
		dailyMinutes = defaultDailyMinutes
	}
	profile.Languages[name] = models.LanguageSettings{
		Level:              clampLevel(level),
		DailyMinutes:       dailyMinutes,
		Goal:               goal,
		QuestionPreference: preference,
	}
	if err := s.profiles.Save(ctx, *profile); err != nil {
		return errors.NewInternalError(err)
	}
	logger.FromContext(ctx).Info("language added: %s", name)
	return nil
}

func (s *profileService) RemoveLanguage(ctx context.Context, name string) (string, error) {
	profile, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	if _, exists := profile.Languages[name]; !exists {
		return "", errors.NewNotFoundError("language", name)
	}
	if len(profile.Languages) <= 1 {
		return "", errors.NewBadRequestError("cannot remove the only language")
	}

	delete(profile.Languages, name)
	if profile.CurrentLanguage == name {
		for other := range profile.Languages {
			profile.CurrentLanguage = other
			break
		}
	}
	if err := s.profiles.Save(ctx, *profile); err != nil {
		return "", errors.NewInternalError(err)
	}
	logger.FromContext(ctx).Info("language removed: %s, current now %s", name, profile.CurrentLanguage)
	return profile.CurrentLanguage, nil
}

func (s *profileService) SwitchLanguage(ctx context.Context, name string) error {
	profile, err := s.Get(ctx)
	if err != nil {
		return err
	}
	if _, exists := profile.Languages[name]; !exists {
		return errors.NewNotFoundError("language", name)
	}
	profile.CurrentLanguage = name
	if err := s.profiles.Save(ctx, *profile); err != nil {
		return errors.NewInternalError(err)
	}
	logger.FromContext(ctx).Info("switched current language to %s", name)
	return nil
}

// AdjustedLevel raises or lowers the base level by up to two steps based on
// the average accuracy of the last few practices in the current language.
func (s *profileService) AdjustedLevel(ctx context.Context, profile *models.Profile) int {
	log := logger.FromContext(ctx)

	base := defaultLevel
	if settings, ok := profile.Languages[profile.CurrentLanguage]; ok {
		base = settings.Level
	}

	accs, err := s.history.RecentAccuracies(ctx, profile.CurrentLanguage, accuracyWindow)
	if err != nil {
		log.Warn("failed to load recent accuracies: %v", err)
		return base
	}
	if len(accs) == 0 {
		return base
	}

	var sum float64
	for _, a := range accs {
		sum += a
	}
	avg := sum / float64(len(accs))

	adjusted := base
	switch {
	case avg >= 90:
		adjusted = base + 2
	case avg >= 80:
		adjusted = base + 1
	case avg <= 40:
		adjusted = base - 2
	case avg <= 50:
		adjusted = base - 1
	}
	if adjusted < minLevel {
		adjusted = minLevel
	}
	if adjusted > maxLevel {
		adjusted = maxLevel
	}

	if adjusted != base {
		log.Info("difficulty adjusted for %s: %d -> %d (avg accuracy %.1f%%)", profile.CurrentLanguage, base, adjusted, avg)
	}
	return adjusted
}

func (s *profileService) RecordPractice(ctx context.Context, language string, wordsLearned int) error {
	profile, err := s.Get(ctx)
	if err != nil {
		return err
	}
	settings, ok := profile.Languages[language]
	if !ok {
		return errors.NewNotFoundError("language", language)
	}
	settings.PracticeCount++
	settings.WordsLearned += wordsLearned
	profile.Languages[language] = settings
	profile.LastPractice = time.Now()
	if err := s.profiles.Save(ctx, *profile); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func clampLevel(level int) int {
	if level < minLevel {
		return defaultLevel
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
