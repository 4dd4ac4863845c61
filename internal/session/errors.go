package session

import "errors"

// State violation errors. The UIs disable the offending controls; the
// manager still rejects out-of-state calls so other frontends cannot
// corrupt a session.
var (
	// ErrNoActiveCase is returned when an operation needs an active case
	// and none exists.
	ErrNoActiveCase = errors.New("no active case")

	// ErrCaseActive is returned when starting a case while one is already
	// in progress.
	ErrCaseActive = errors.New("a case is already active")

	// ErrDiagnosisSubmitted is returned when an interview action arrives
	// after the diagnosis has been submitted.
	ErrDiagnosisSubmitted = errors.New("diagnosis already submitted")
)
