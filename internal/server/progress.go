package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mochilabs/mochi/internal/store"
)

type saveProgressRequest struct {
	CategoryID     uint   `json:"category_id" binding:"required"`
	StudentSession string `json:"student_session" binding:"required"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

func (s *Server) SaveProgress(c *gin.Context) {
	var req saveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := store.GameProgress{
		CategoryID:     req.CategoryID,
		StudentSession: req.StudentSession,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	}
	if err := s.progress.Create(c.Request.Context(), &p); err != nil {
		s.log.Error("save progress", "session", req.StudentSession, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save progress"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) ProgressBySession(c *gin.Context) {
	session := c.Param("session")
	records, err := s.progress.BySession(c.Request.Context(), session)
	if err != nil {
		s.log.Error("progress by session", "session", session, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load progress"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) RecentProgress(c *gin.Context) {
	records, err := s.progress.Recent(c.Request.Context(), 5)
	if err != nil {
		s.log.Error("recent progress", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load progress"})
		return
	}
	c.JSON(http.StatusOK, records)
}
