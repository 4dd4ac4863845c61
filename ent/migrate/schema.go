// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaseEventsColumns holds the columns for the "case_events" table.
	CaseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "patient_age", Type: field.TypeInt},
		{Name: "patient_gender", Type: field.TypeString},
		{Name: "chief_complaint", Type: field.TypeString},
		{Name: "diagnosis", Type: field.TypeString},
	}
	// CaseEventsTable holds the schema information for the "case_events" table.
	CaseEventsTable = &schema.Table{
		Name:       "case_events",
		Columns:    CaseEventsColumns,
		PrimaryKey: []*schema.Column{CaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CaseEventsColumns[1]},
			},
			{
				Name:    "caseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CaseEventsColumns[2]},
			},
			{
				Name:    "caseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CaseEventsColumns[3]},
			},
		},
	}
	// DiagnosisEventsColumns holds the columns for the "diagnosis_events" table.
	DiagnosisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "submitted_diagnosis", Type: field.TypeString},
		{Name: "actual_diagnosis", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeInt},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "questions_asked", Type: field.TypeInt, Default: 0},
		{Name: "exams_performed", Type: field.TypeInt, Default: 0},
		{Name: "vitals_checked", Type: field.TypeBool, Default: false},
		{Name: "duration_mins", Type: field.TypeFloat64, Default: 0},
	}
	// DiagnosisEventsTable holds the schema information for the "diagnosis_events" table.
	DiagnosisEventsTable = &schema.Table{
		Name:       "diagnosis_events",
		Columns:    DiagnosisEventsColumns,
		PrimaryKey: []*schema.Column{DiagnosisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[1]},
			},
			{
				Name:    "diagnosisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[2]},
			},
			{
				Name:    "diagnosisevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[3]},
			},
			{
				Name:    "diagnosisevent_correct",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[6]},
			},
		},
	}
	// ExamEventsColumns holds the columns for the "exam_events" table.
	ExamEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "area", Type: field.TypeString},
		{Name: "findings", Type: field.TypeString, Size: 2147483647},
	}
	// ExamEventsTable holds the schema information for the "exam_events" table.
	ExamEventsTable = &schema.Table{
		Name:       "exam_events",
		Columns:    ExamEventsColumns,
		PrimaryKey: []*schema.Column{ExamEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[1]},
			},
			{
				Name:    "examevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[2]},
			},
			{
				Name:    "examevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[3]},
			},
			{
				Name:    "examevent_area",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[4]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "hint_text", Type: field.TypeString, Size: 2147483647},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionEventsColumns holds the columns for the "question_events" table.
	QuestionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "tone", Type: field.TypeString, Default: ""},
	}
	// QuestionEventsTable holds the schema information for the "question_events" table.
	QuestionEventsTable = &schema.Table{
		Name:       "question_events",
		Columns:    QuestionEventsColumns,
		PrimaryKey: []*schema.Column{QuestionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[1]},
			},
			{
				Name:    "questionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[2]},
			},
			{
				Name:    "questionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaseEventsTable,
		DiagnosisEventsTable,
		ExamEventsTable,
		HintEventsTable,
		LlmRequestEventsTable,
		QuestionEventsTable,
	}
)

func init() {
}
