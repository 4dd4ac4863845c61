package api

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avyukth/medsim/internal/llm"
)

const caseJSON = `{
	"name": "Margaret Chen",
	"age": 62,
	"gender": "female",
	"chief_complaint": "It feels like an elephant is sitting on my chest",
	"history": "Crushing substernal chest pain for 2 hours.",
	"past_conditions": ["hypertension"],
	"medications": ["lisinopril 10mg daily"],
	"allergies": [],
	"family_history": ["father died of heart attack at 58"],
	"social_history": "Former smoker.",
	"vitals": {
		"temperature": "37.0 C",
		"heart_rate": "104 bpm",
		"blood_pressure": "152/94 mmHg",
		"respiratory_rate": "22/min",
		"oxygen_saturation": "94% on room air"
	},
	"exam_findings": "Diaphoretic. Tachycardic, S4 gallop.",
	"diagnosis": "Acute myocardial infarction",
	"differentials": ["unstable angina"],
	"recommended_tests": ["12-lead ECG"],
	"red_flags": ["diaphoresis"],
	"personality": "anxious"
}`

const replyJSON = `{
	"response": "It started about two hours ago.",
	"revealed_facts": ["onset 2 hours ago"],
	"tone": "anxious"
}`

const evaluationJSON = `{
	"correct": true,
	"score": 82,
	"feedback": "Solid diagnostic reasoning.",
	"strengths": ["focused questioning"],
	"improvements": ["ask about medications"],
	"missed_findings": []
}`

func newTestRouter(t *testing.T, responses ...llm.MockResponse) (*gin.Engine, *llm.MockProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mock := llm.NewMockProvider(responses...)
	srv := NewServer(Options{
		Config:   DefaultConfig(),
		Provider: mock,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	})
	return srv.Router(), mock
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/session", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	assert.Equal(t, "no-case", resp.State)
	return resp.ID
}

func TestCreateSession(t *testing.T) {
	r, _ := newTestRouter(t)
	createSession(t, r)
}

func TestUnknownSession(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/session/nope/case", startCaseRequest{Topic: "chest pain"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartCase_HidesDiagnosis(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Margaret Chen")
	assert.Contains(t, body, "elephant")
	assert.NotContains(t, body, "myocardial infarction")
	assert.NotContains(t, body, "unstable angina")
	assert.NotContains(t, body, "S4 gallop")
}

func TestStartCase_ConflictWhileActive(t *testing.T) {
	r, mock := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "headache"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, mock.CallCount())
}

func TestStartCase_ProviderFailure(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAskQuestion(t *testing.T) {
	r, _ := newTestRouter(t,
		llm.MockResponse{Content: json.RawMessage(caseJSON)},
		llm.MockResponse{Content: json.RawMessage(replyJSON)},
	)
	id := createSession(t, r)
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/question",
		askQuestionRequest{Question: "When did the pain start?"})
	require.Equal(t, http.StatusOK, w.Code)

	var turn turnView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turn))
	assert.Equal(t, "It started about two hours ago.", turn.Answer)
	assert.Equal(t, "anxious", turn.Tone)
	assert.Equal(t, []string{"onset 2 hours ago"}, turn.RevealedFacts)
}

func TestAskQuestion_RequiresBody(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	id := createSession(t, r)
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/question", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskQuestion_NoActiveCase(t *testing.T) {
	r, mock := newTestRouter(t)
	id := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/question",
		askQuestionRequest{Question: "When did it start?"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, mock.CallCount())
}

func TestVitalSigns(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	id := createSession(t, r)
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})

	w := doJSON(t, r, http.MethodGet, "/api/session/"+id+"/vitals", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "104 bpm")

	// Vitals are fixed at generation time.
	w2 := doJSON(t, r, http.MethodGet, "/api/session/"+id+"/vitals", nil)
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func TestPerformExam(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	id := createSession(t, r)
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/exam",
		performExamRequest{Area: "cardiovascular"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "S4 gallop")
	assert.Contains(t, w.Body.String(), "cardiovascular")
}

func TestSubmitDiagnosis_FullFlow(t *testing.T) {
	r, _ := newTestRouter(t,
		llm.MockResponse{Content: json.RawMessage(caseJSON)},
		llm.MockResponse{Content: json.RawMessage(replyJSON)},
		llm.MockResponse{Content: json.RawMessage(evaluationJSON)},
	)
	id := createSession(t, r)
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/question",
		askQuestionRequest{Question: "When did the pain start?"})

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/diagnosis",
		submitDiagnosisRequest{Diagnosis: "heart attack", Reasoning: "classic presentation"})
	require.Equal(t, http.StatusOK, w.Code)

	var report reportView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Acute myocardial infarction", report.CorrectDiagnosis)
	assert.True(t, report.Correct)
	assert.Equal(t, 82, report.Score)
	assert.Equal(t, 1, report.QuestionsAsked)

	// The session reflects the submitted state.
	w = doJSON(t, r, http.MethodGet, "/api/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "diagnosis-submitted")
}

func TestSubmitDiagnosis_SecondSubmissionConflicts(t *testing.T) {
	r, _ := newTestRouter(t,
		llm.MockResponse{Content: json.RawMessage(caseJSON)},
		llm.MockResponse{Content: json.RawMessage(evaluationJSON)},
	)
	id := createSession(t, r)
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})
	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/diagnosis",
		submitDiagnosisRequest{Diagnosis: "heart attack"})

	w := doJSON(t, r, http.MethodPost, "/api/session/"+id+"/diagnosis",
		submitDiagnosisRequest{Diagnosis: "angina"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHint(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	id := createSession(t, r)

	// No case yet.
	w := doJSON(t, r, http.MethodGet, "/api/session/"+id+"/hint", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	doJSON(t, r, http.MethodPost, "/api/session/"+id+"/case", startCaseRequest{Topic: "chest pain"})
	w = doJSON(t, r, http.MethodGet, "/api/session/"+id+"/hint", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Hint string `json:"hint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, strings.TrimSpace(resp.Hint))
}

func TestSessionsAreIsolated(t *testing.T) {
	r, _ := newTestRouter(t, llm.MockResponse{Content: json.RawMessage(caseJSON)})
	first := createSession(t, r)
	second := createSession(t, r)
	require.NotEqual(t, first, second)

	doJSON(t, r, http.MethodPost, "/api/session/"+first+"/case", startCaseRequest{Topic: "chest pain"})

	// The second session is untouched by the first one's case.
	w := doJSON(t, r, http.MethodGet, "/api/session/"+second, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no-case")
	assert.NotContains(t, w.Body.String(), "Margaret Chen")
}
