package models

// Question types.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeFillBlank      = "fill_blank"
)

// Question is one drill item. Questions are generated fresh per session and
// are not persisted as entities; only the answers to them are recorded.
type Question struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Hint        string   `json:"hint,omitempty"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Word        string   `json:"word"`
	Difficulty  int      `json:"difficulty"`
}

// PracticeSession is an ordered, fixed-size set of questions for one round.
type PracticeSession struct {
	PracticeID    string     `json:"practice_id"`
	Language      string     `json:"language"`
	Level         int        `json:"adjusted_level"`
	SourceArticle string     `json:"source_article,omitempty"`
	Questions     []Question `json:"questions"`
}
