package progresscsv

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lingodrill/internal/models"
)

func TestReadLegacyRows(t *testing.T) {
	input := strings.Join([]string{
		"word,language,total_attempts,correct_attempts,last_review,next_review,ease_factor,interval,mastery_level",
		"happy,english,4,3,2024-01-02T10:30:00.123456,2024-01-08T10:30:00.123456,2.5,6,0.75",
		"correr,spanish,1,1,2024-01-02T10:30:00,2024-01-03T10:30:00,2.6,1,1",
	}, "\n")

	records, skipped, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 2)

	assert.Equal(t, "happy", records[0].Word)
	assert.Equal(t, "english", records[0].Language)
	assert.Equal(t, 4, records[0].TotalAttempts)
	assert.Equal(t, 3, records[0].CorrectAttempts)
	assert.Equal(t, 2.5, records[0].EaseFactor)
	assert.Equal(t, 6, records[0].IntervalDays)
	assert.Equal(t, 0.75, records[0].MasteryLevel)
	assert.Equal(t, 2024, records[0].LastReview.Year())

	assert.Equal(t, "correr", records[1].Word)
	assert.Equal(t, 1.0, records[1].MasteryLevel)
}

func TestReadSkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"word,language,total_attempts,correct_attempts,last_review,next_review,ease_factor,interval,mastery_level",
		"short,english,1",
		"happy,english,notanumber,3,2024-01-02T10:30:00,2024-01-08T10:30:00,2.5,6,0.75",
		"happy,english,4,3,not-a-date,2024-01-08T10:30:00,2.5,6,0.75",
		",english,4,3,2024-01-02T10:30:00,2024-01-08T10:30:00,2.5,6,0.75",
		"good,english,4,3,2024-01-02T10:30:00,2024-01-08T10:30:00,2.5,6,0.75",
	}, "\n")

	records, skipped, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "good", records[0].Word)
}

func TestWriteReadRoundTrip(t *testing.T) {
	last := time.Date(2024, 1, 2, 10, 30, 0, 123456000, time.Local)
	next := last.AddDate(0, 0, 6)
	in := []models.WordProgress{
		{
			Word: "happy", Language: "english",
			TotalAttempts: 4, CorrectAttempts: 3,
			LastReview: last, NextReview: next,
			EaseFactor: 2.36, IntervalDays: 6, MasteryLevel: 0.75,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(Header, ","), lines[0])
	assert.Equal(t, "happy,english,4,3,2024-01-02T10:30:00.123456,2024-01-08T10:30:00.123456,2.36,6,0.75", lines[1])

	out, skipped, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Word, out[0].Word)
	assert.Equal(t, in[0].EaseFactor, out[0].EaseFactor)
	assert.True(t, in[0].LastReview.Equal(out[0].LastReview))
	assert.True(t, in[0].NextReview.Equal(out[0].NextReview))
}
