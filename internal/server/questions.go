package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mochilabs/mochi/internal/store"
)

func (s *Server) ListQuestions(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	questions, err := s.questions.ListByCategory(c.Request.Context(), id)
	if err != nil {
		s.log.Error("list questions", "category_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

type createQuestionRequest struct {
	TargetItem    string `json:"target_item" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
	AudioURL      string `json:"audio_url"`
	Options       []struct {
		Label    string `json:"label"`
		ImageURL string `json:"image_url"`
	} `json:"options"`
}

func (s *Server) CreateQuestion(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := store.Question{
		CategoryID:    id,
		TargetItem:    req.TargetItem,
		CorrectAnswer: req.CorrectAnswer,
		AudioURL:      req.AudioURL,
	}
	for _, opt := range req.Options {
		q.Options = append(q.Options, store.QuestionOption{
			Label:    opt.Label,
			ImageURL: opt.ImageURL,
		})
	}
	if err := s.questions.Create(c.Request.Context(), &q); err != nil {
		s.log.Error("create question", "category_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save question"})
		return
	}
	c.JSON(http.StatusCreated, q)
}

type saveActivityRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
	Description  string `json:"description"`
	IconURL      string `json:"icon_url"`
	Color        string `json:"color"`
	Questions    []struct {
		TargetItem    string `json:"target_item"`
		CorrectAnswer string `json:"correct_answer"`
		Options       []struct {
			Label    string `json:"label"`
			ImageURL string `json:"image_url"`
		} `json:"options"`
	} `json:"questions"`
}

// SaveActivity stores a generated question set as a category with its
// questions and options, in one transaction.
func (s *Server) SaveActivity(c *gin.Context) {
	var req saveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat := store.Category{
		Name:        req.CategoryName,
		Description: req.Description,
		IconURL:     req.IconURL,
		Color:       req.Color,
	}
	questions := make([]store.Question, 0, len(req.Questions))
	for _, qd := range req.Questions {
		q := store.Question{
			TargetItem:    qd.TargetItem,
			CorrectAnswer: qd.CorrectAnswer,
		}
		for _, opt := range qd.Options {
			q.Options = append(q.Options, store.QuestionOption{
				Label:    opt.Label,
				ImageURL: opt.ImageURL,
			})
		}
		questions = append(questions, q)
	}

	if err := s.questions.SaveActivity(c.Request.Context(), &cat, questions); err != nil {
		s.log.Error("save activity", "category", req.CategoryName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save activity"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}
