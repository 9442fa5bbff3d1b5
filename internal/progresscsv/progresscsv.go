// Package progresscsv reads and writes the legacy word-progress CSV layout:
// one row per (word, language), fields in the order
//
//	word, language, total_attempts, correct_attempts, last_review,
//	next_review, ease_factor, interval, mastery_level
//
// with ISO-8601 local-time timestamps and decimal-text floats. The layout is
// kept byte-compatible so existing data files keep working.
package progresscsv

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/example/lingodrill/internal/models"
)

// Header is the exact column order of the legacy file.
var Header = []string{
	"word", "language", "total_attempts", "correct_attempts",
	"last_review", "next_review", "ease_factor", "interval", "mastery_level",
}

// timeLayout matches ISO-8601 local time with an optional fractional part and
// no zone offset, as written by the original tool.
const timeLayout = "2006-01-02T15:04:05.999999"

// Read parses legacy rows from r. Malformed rows (wrong field count,
// unparseable numerics or timestamps) are skipped and counted, never fatal;
// only an unreadable stream returns an error.
func Read(r io.Reader) (records []models.WordProgress, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A mangled line is a bad row, not a broken file.
			skipped++
			continue
		}
		if header {
			header = false
			if len(row) > 0 && row[0] == "word" {
				continue
			}
		}
		rec, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func parseRow(row []string) (models.WordProgress, bool) {
	var p models.WordProgress
	if len(row) != len(Header) {
		return p, false
	}

	p.Word = row[0]
	p.Language = row[1]
	if p.Word == "" || p.Language == "" {
		return p, false
	}

	var err error
	if p.TotalAttempts, err = strconv.Atoi(row[2]); err != nil {
		return p, false
	}
	if p.CorrectAttempts, err = strconv.Atoi(row[3]); err != nil {
		return p, false
	}
	if p.LastReview, err = parseTime(row[4]); err != nil {
		return p, false
	}
	if p.NextReview, err = parseTime(row[5]); err != nil {
		return p, false
	}
	if p.EaseFactor, err = strconv.ParseFloat(row[6], 64); err != nil {
		return p, false
	}
	if p.IntervalDays, err = strconv.Atoi(row[7]); err != nil {
		return p, false
	}
	if p.MasteryLevel, err = strconv.ParseFloat(row[8], 64); err != nil {
		return p, false
	}
	return p, true
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Write writes records to w in the legacy layout, header first.
func Write(w io.Writer, records []models.WordProgress) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range records {
		row := []string{
			p.Word,
			p.Language,
			strconv.Itoa(p.TotalAttempts),
			strconv.Itoa(p.CorrectAttempts),
			formatTime(p.LastReview),
			formatTime(p.NextReview),
			strconv.FormatFloat(p.EaseFactor, 'g', -1, 64),
			strconv.Itoa(p.IntervalDays),
			strconv.FormatFloat(p.MasteryLevel, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
