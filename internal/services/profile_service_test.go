package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/lingodrill/internal/models"
	"github.com/example/lingodrill/internal/testutil/mocks"
)

func newProfileService(profiles *mocks.MockProfileRepository, progress *mocks.MockWordProgressRepository, history *mocks.MockHistoryRepository) ProfileService {
	if profiles == nil {
		profiles = new(mocks.MockProfileRepository)
	}
	if progress == nil {
		progress = new(mocks.MockWordProgressRepository)
	}
	if history == nil {
		history = new(mocks.MockHistoryRepository)
	}
	return NewProfileService(profiles, progress, history)
}

func profileWith(languages ...string) *models.Profile {
	p := &models.Profile{
		CurrentLanguage: languages[0],
		Languages:       map[string]models.LanguageSettings{},
	}
	for _, l := range languages {
		p.Languages[l] = models.LanguageSettings{Level: 5, DailyMinutes: 15}
	}
	return p
}

func TestSetupRequiresLanguage(t *testing.T) {
	svc := newProfileService(nil, nil, nil)
	err := svc.Setup(context.Background(), SetupInput{})
	assert.Error(t, err)
}

func TestSetupSavesProfile(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	svc := newProfileService(profiles, nil, nil)

	var saved models.Profile
	profiles.On("Save", mock.Anything, mock.AnythingOfType("models.Profile")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.Profile) }).
		Return(nil)

	err := svc.Setup(context.Background(), SetupInput{
		PreferredLanguage: "english",
		VocabularyLevel:   7,
		DailyMinutes:      20,
		LearningGoal:      "travel",
	})
	require.NoError(t, err)

	assert.Equal(t, "english", saved.CurrentLanguage)
	require.Contains(t, saved.Languages, "english")
	assert.Equal(t, 7, saved.Languages["english"].Level)
	assert.Equal(t, 20, saved.Languages["english"].DailyMinutes)
	assert.Equal(t, "travel", saved.Languages["english"].Goal)
	profiles.AssertExpectations(t)
}

func TestGetWithoutSetupFails(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(nil, nil)
	svc := newProfileService(profiles, nil, nil)

	_, err := svc.Get(context.Background())
	assert.Error(t, err)
}

func TestAddLanguageRejectsDuplicate(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english"), nil)
	svc := newProfileService(profiles, nil, nil)

	err := svc.AddLanguage(context.Background(), "english", 5, 15, "", "")
	assert.Error(t, err)
}

func TestRemoveLanguageKeepsAtLeastOne(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english"), nil)
	svc := newProfileService(profiles, nil, nil)

	_, err := svc.RemoveLanguage(context.Background(), "english")
	assert.Error(t, err)
}

func TestRemoveCurrentLanguageSwitches(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english", "spanish"), nil)

	var saved models.Profile
	profiles.On("Save", mock.Anything, mock.AnythingOfType("models.Profile")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.Profile) }).
		Return(nil)

	svc := newProfileService(profiles, nil, nil)
	current, err := svc.RemoveLanguage(context.Background(), "english")
	require.NoError(t, err)
	assert.Equal(t, "spanish", current)
	assert.Equal(t, "spanish", saved.CurrentLanguage)
	assert.NotContains(t, saved.Languages, "english")
}

func TestSwitchLanguageUnknownFails(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	profiles.On("Get", mock.Anything).Return(profileWith("english"), nil)
	svc := newProfileService(profiles, nil, nil)

	err := svc.SwitchLanguage(context.Background(), "klingon")
	assert.Error(t, err)
}

func TestAdjustedLevel(t *testing.T) {
	tests := []struct {
		name       string
		base       int
		accuracies []float64
		want       int
	}{
		{"no history", 5, nil, 5},
		{"high accuracy", 5, []float64{95, 90, 92}, 7},
		{"good accuracy", 5, []float64{85, 80, 82}, 6},
		{"middling accuracy", 5, []float64{70, 65}, 5},
		{"poor accuracy", 5, []float64{50, 45}, 4},
		{"very poor accuracy", 5, []float64{30, 20}, 3},
		{"clamped high", 9, []float64{100, 100}, 10},
		{"clamped low", 1, []float64{0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := new(mocks.MockHistoryRepository)
			history.On("RecentAccuracies", mock.Anything, "english", 5).Return(tt.accuracies, nil)

			svc := newProfileService(nil, nil, history)
			profile := profileWith("english")
			settings := profile.Languages["english"]
			settings.Level = tt.base
			profile.Languages["english"] = settings

			assert.Equal(t, tt.want, svc.AdjustedLevel(context.Background(), profile))
		})
	}
}

func TestRecordPracticeBumpsCounters(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	p := profileWith("english")
	settings := p.Languages["english"]
	settings.PracticeCount = 2
	settings.WordsLearned = 9
	p.Languages["english"] = settings
	profiles.On("Get", mock.Anything).Return(p, nil)

	var saved models.Profile
	profiles.On("Save", mock.Anything, mock.AnythingOfType("models.Profile")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(models.Profile) }).
		Return(nil)

	svc := newProfileService(profiles, nil, nil)
	require.NoError(t, svc.RecordPractice(context.Background(), "english", 3))

	assert.Equal(t, 3, saved.Languages["english"].PracticeCount)
	assert.Equal(t, 12, saved.Languages["english"].WordsLearned)
	assert.False(t, saved.LastPractice.IsZero())
}
