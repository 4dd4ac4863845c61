package evaluate

// Evaluation is the structured result of grading a submitted diagnosis.
// It is produced once per submission and never recomputed.
type Evaluation struct {
	// Correct reports whether the submission matches the hidden diagnosis
	// or an acceptable synonym of it.
	Correct bool `json:"correct"`

	// Score grades the whole encounter 0-100: diagnosis accuracy plus
	// the quality of the information gathering that led to it.
	Score int `json:"score"`

	// Feedback is a short narrative addressed to the student.
	Feedback string `json:"feedback"`

	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	MissedFindings []string `json:"missed_findings"`
}
