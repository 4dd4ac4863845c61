// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CaseEvent is the predicate function for caseevent builders.
type CaseEvent func(*sql.Selector)

// DiagnosisEvent is the predicate function for diagnosisevent builders.
type DiagnosisEvent func(*sql.Selector)

// ExamEvent is the predicate function for examevent builders.
type ExamEvent func(*sql.Selector)

// HintEvent is the predicate function for hintevent builders.
type HintEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionEvent is the predicate function for questionevent builders.
type QuestionEvent func(*sql.Selector)
