package questionnaire

import (
	"github.com/abhisek/bilan/internal/interview"
)

// questionReadyMsg is sent when the next question has been generated.
type questionReadyMsg struct {
	Question *interview.Question
	Err      error
}
