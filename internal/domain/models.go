package domain

import "sort"

// AwardTable maps an award year to the winner's name. The table is fixed
// when loaded and never mutated during play.
type AwardTable map[int]string

// Years returns the table's years in ascending order.
func (t AwardTable) Years() []int {
	years := make([]int, 0, len(t))
	for year := range t {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Winner returns the recorded winner for a year.
func (t AwardTable) Winner(year int) (string, bool) {
	name, ok := t[year]
	return name, ok
}

// Phase enumerates the session lifecycle.
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseAwaitingAnswer  Phase = "awaiting_answer"
	PhaseShowingFeedback Phase = "showing_feedback"
	PhaseCompleted       Phase = "completed"
)

// AnswerRecord captures the outcome of one question. The json field names
// define the serialized history format in the record store.
type AnswerRecord struct {
	Year    int    `json:"year"`
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// Snapshot is a view-friendly copy of session state. Year is only set while
// a question is on screen; NextGameIn only once the day is completed.
type Snapshot struct {
	Phase         Phase          `json:"phase"`
	Date          string         `json:"date"`
	QuestionIndex int            `json:"questionIndex"`
	QuestionCount int            `json:"questionCount"`
	Year          int            `json:"year,omitempty"`
	Score         int            `json:"score"`
	BestScore     int            `json:"bestScore"`
	Feedback      string         `json:"feedback,omitempty"`
	History       []AnswerRecord `json:"history"`
	NextGameIn    string         `json:"nextGameIn,omitempty"`
}
