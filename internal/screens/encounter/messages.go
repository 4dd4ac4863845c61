package encounter

import (
	"time"

	"github.com/avyukth/medsim/internal/interview"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/session"
)

// caseReadyMsg is sent when patient generation finishes.
type caseReadyMsg struct {
	Case *patient.Case
	Err  error
}

// answerReadyMsg is sent when the patient's reply arrives.
type answerReadyMsg struct {
	Turn *interview.Turn
	Err  error
}

// reportReadyMsg is sent when diagnosis evaluation finishes.
type reportReadyMsg struct {
	Report *session.Report
	Err    error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time
