package app

import (
	"fmt"
	"strings"
	"time"

	"mvp-challenge/internal/domain"
)

const (
	glyphCorrect   = "🟩"
	glyphIncorrect = "🟥"
)

// FormatShare renders the shareable result block: a title line with the
// M/D/YYYY date, a score/10 line, a blank line, then one glyph per answer
// in play order.
func FormatShare(date time.Time, score int, history []domain.AnswerRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NFL MVP Challenge %s\n", ShareDate(date))
	fmt.Fprintf(&b, "%d/%d\n\n", score, questionCount)
	for _, rec := range history {
		if rec.Correct {
			b.WriteString(glyphCorrect)
		} else {
			b.WriteString(glyphIncorrect)
		}
	}
	return b.String()
}
