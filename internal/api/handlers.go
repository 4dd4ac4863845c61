package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avyukth/medsim/internal/llm"
	"github.com/avyukth/medsim/internal/patient"
	"github.com/avyukth/medsim/internal/session"
)

type startCaseRequest struct {
	// Topic is optional; empty draws a random one.
	Topic string `json:"topic"`
}

type askQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

type performExamRequest struct {
	Area string `json:"area" binding:"required"`
}

type submitDiagnosisRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
	Reasoning string `json:"reasoning"`
}

// caseView is the case as the student sees it. The diagnosis, the
// differentials, and the exam findings stay server-side until submission.
type caseView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	ChiefComplaint string `json:"chief_complaint"`
}

type turnView struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	RevealedFacts []string `json:"revealed_facts"`
	Tone          string   `json:"tone"`
}

type sessionView struct {
	ID    string     `json:"id"`
	State string     `json:"state"`
	Case  *caseView  `json:"case,omitempty"`
	Turns []turnView `json:"turns,omitempty"`
}

type reportView struct {
	CorrectDiagnosis   string   `json:"correct_diagnosis"`
	Differentials      []string `json:"differentials"`
	SubmittedDiagnosis string   `json:"submitted_diagnosis"`
	Reasoning          string   `json:"reasoning,omitempty"`
	Correct            bool     `json:"correct"`
	Score              int      `json:"score"`
	Feedback           string   `json:"feedback"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
	MissedFindings     []string `json:"missed_findings"`
	QuestionsAsked     int      `json:"questions_asked"`
	VitalsChecked      bool     `json:"vitals_checked"`
	ExamsPerformed     []string `json:"exams_performed"`
	DurationMinutes    float64  `json:"duration_minutes"`
}

func newCaseView(c *patient.Case) *caseView {
	if c == nil {
		return nil
	}
	return &caseView{
		ID:             c.ID,
		Name:           c.Name,
		Age:            c.Age,
		Gender:         c.Gender,
		ChiefComplaint: c.ChiefComplaint,
	}
}

func (s *Server) createSession(c *gin.Context) {
	m := s.newSession()
	c.JSON(http.StatusCreated, sessionView{ID: m.ID(), State: m.State().String()})
}

func (s *Server) getSession(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	view := sessionView{
		ID:    m.ID(),
		State: m.State().String(),
		Case:  newCaseView(m.Case()),
	}
	for _, t := range m.Turns() {
		view.Turns = append(view.Turns, turnView{
			Question:      t.Question,
			Answer:        t.Answer,
			RevealedFacts: t.RevealedFacts,
			Tone:          t.Tone,
		})
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) startCase(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	var req startCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc, err := m.StartCase(c.Request.Context(), req.Topic)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCaseView(pc))
}

func (s *Server) askQuestion(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	var req askQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turn, err := m.AskQuestion(c.Request.Context(), req.Question)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, turnView{
		Question:      turn.Question,
		Answer:        turn.Answer,
		RevealedFacts: turn.RevealedFacts,
		Tone:          turn.Tone,
	})
}

func (s *Server) vitalSigns(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	vitals, err := m.VitalSigns()
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, vitals)
}

func (s *Server) performExam(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	var req performExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	findings, err := m.PerformExam(c.Request.Context(), req.Area)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": req.Area, "findings": findings})
}

func (s *Server) submitDiagnosis(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	var req submitDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := m.SubmitDiagnosis(c.Request.Context(), req.Diagnosis, req.Reasoning)
	if err != nil {
		s.renderError(c, err)
		return
	}
	ev := report.Evaluation
	c.JSON(http.StatusOK, reportView{
		CorrectDiagnosis:   report.CorrectDiagnosis,
		Differentials:      report.Differentials,
		SubmittedDiagnosis: report.SubmittedDiagnosis,
		Reasoning:          report.Reasoning,
		Correct:            ev.Correct,
		Score:              ev.Score,
		Feedback:           ev.Feedback,
		Strengths:          ev.Strengths,
		Improvements:       ev.Improvements,
		MissedFindings:     ev.MissedFindings,
		QuestionsAsked:     report.Stats.QuestionsAsked,
		VitalsChecked:      report.Stats.VitalsChecked,
		ExamsPerformed:     report.Stats.ExamsPerformed,
		DurationMinutes:    report.Stats.DurationMinutes,
	})
}

func (s *Server) hint(c *gin.Context) {
	m := s.lookup(c.Param("id"))
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	hint, err := m.Hint(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hint": hint})
}

// renderError maps domain errors to status codes: lifecycle violations are
// conflicts, upstream LLM failures are bad gateways.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNoActiveCase),
		errors.Is(err, session.ErrCaseActive),
		errors.Is(err, session.ErrDiagnosisSubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	var (
		rateLimit   *llm.ErrRateLimit
		unavailable *llm.ErrProviderUnavailable
	)
	if errors.As(err, &rateLimit) || errors.As(err, &unavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	s.log.Error().Err(err).Msg("operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
