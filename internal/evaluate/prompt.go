package evaluate

import (
	"bytes"
	"text/template"
	"unicode/utf8"
)

const evaluationSystemPrompt = `You are an attending physician grading a medical student's performance on a simulated patient encounter.

Instructions:
- Judge the submitted diagnosis against the actual diagnosis. Accept synonyms and equivalent clinical terms (e.g. "heart attack" for "acute myocardial infarction").
- Score the whole encounter 0-100: weigh diagnostic accuracy most, then the quality and focus of the questions asked, use of vitals, and exams performed.
- A correct diagnosis reached with sloppy information gathering does not merit a high score.
- Feedback is addressed directly to the student, specific to what they did, 2-4 sentences.
- Missed findings are facts in the case the student never uncovered, not generic advice.`

// excerptLen caps the history and exam excerpts in the prompt. The full
// question list always goes through uncut.
const excerptLen = 200

// Input carries everything the evaluator sees about the encounter.
type Input struct {
	ActualDiagnosis    string
	Differentials      []string
	VitalsSummary      string
	History            string
	ExamFindings       string
	QuestionsAsked     []string
	ExamsPerformed     []string
	VitalsChecked      bool
	SubmittedDiagnosis string
	Reasoning          string
}

var evaluationUserTemplate = template.Must(template.New("evaluation").Parse(`Actual diagnosis: {{.ActualDiagnosis}}
Reasonable differentials:{{range .Differentials}}
- {{.}}{{else}} none{{end}}

Case history (excerpt): {{.History}}
Exam findings (excerpt): {{.ExamFindings}}
Vitals: {{.VitalsSummary}}

Student's encounter:
Vitals checked: {{.VitalsChecked}}
Exams performed:{{range .ExamsPerformed}}
- {{.}}{{else}} none{{end}}
Questions asked ({{len .QuestionsAsked}}):{{range .QuestionsAsked}}
- {{.}}{{else}} none{{end}}

Student's diagnosis: {{.SubmittedDiagnosis}}
Student's reasoning: {{.Reasoning}}`))

// buildEvaluationMessage renders the user message, truncating the long
// narrative fields first.
func buildEvaluationMessage(in Input) (string, error) {
	in.History = truncate(in.History, excerptLen)
	in.ExamFindings = truncate(in.ExamFindings, excerptLen)

	var buf bytes.Buffer
	if err := evaluationUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}
