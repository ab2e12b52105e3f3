package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mochilabs/mochi/internal/quizgen"
)

type generateRequest struct {
	GameTopic   string `json:"gameTopic"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// Generate runs the full pipeline: question generation followed by image
// enrichment. It always answers 200 with an array; pipeline failures show
// up as an empty array or null images, never as an HTTP error.
func (s *Server) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.GameTopic == "" {
		req.GameTopic = "General Knowledge"
	}
	if req.Subject == "" {
		req.Subject = "General"
	}

	ctx := c.Request.Context()
	questions := s.generator.GenerateQuestions(ctx, quizgen.GenerationRequest{
		Topic:       req.GameTopic,
		Subject:     req.Subject,
		Description: req.Description,
	})
	questions = s.enricher.Enrich(ctx, questions)

	c.JSON(http.StatusOK, questions)
}

type feedbackRequest struct {
	UserAnswer    string `json:"user_answer" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
	TargetItem    string `json:"target_item"`
}

// Feedback answers 200 with a fully populated feedback object; the
// pipeline's deterministic fallback guarantees there is always one.
func (s *Server) Feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fb := s.feedback.GenerateFeedback(c.Request.Context(), req.UserAnswer, req.CorrectAnswer, req.TargetItem)
	c.JSON(http.StatusOK, fb)
}
