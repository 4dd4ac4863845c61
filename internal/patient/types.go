package patient

// VitalSigns holds the patient's vital signs as display-ready strings.
// They are generated once with the case and never change during an
// encounter; every vitals check returns these exact values.
type VitalSigns struct {
	Temperature      string `json:"temperature"`
	HeartRate        string `json:"heart_rate"`
	BloodPressure    string `json:"blood_pressure"`
	RespiratoryRate  string `json:"respiratory_rate"`
	OxygenSaturation string `json:"oxygen_saturation"`
}

// Case is a complete synthetic patient case. It is immutable after
// generation; starting a new case replaces it wholesale.
type Case struct {
	// ID identifies the case. Assigned locally, not by the LLM.
	ID string `json:"id"`

	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	ChiefComplaint string `json:"chief_complaint"`

	// History is the narrative history of the present illness. The
	// interview persona draws its answers from here.
	History string `json:"history"`

	PastConditions []string `json:"past_conditions"`
	Medications    []string `json:"medications"`
	Allergies      []string `json:"allergies"`
	FamilyHistory  []string `json:"family_history"`
	SocialHistory  string   `json:"social_history"`

	Vitals VitalSigns `json:"vitals"`

	// ExamFindings is a single narrative covering the physical exam.
	// Exam requests return it regardless of the requested area.
	ExamFindings string `json:"exam_findings"`

	// Diagnosis is the hidden ground truth the student must reach.
	Diagnosis        string   `json:"diagnosis"`
	Differentials    []string `json:"differentials"`
	RecommendedTests []string `json:"recommended_tests"`
	RedFlags         []string `json:"red_flags"`

	// Personality shapes how the simulated patient speaks, e.g.
	// "anxious and talkative" or "stoic, answers briefly".
	Personality string `json:"personality"`
}
