package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all routes. The /api prefix matches what the frontend
// expects.
func NewRouter(s *Server, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/categories", s.ListCategories)
		api.POST("/categories", s.CreateCategory)
		api.GET("/categories/:id/questions", s.ListQuestions)
		api.POST("/categories/:id/questions", s.CreateQuestion)

		api.POST("/generate", s.Generate)
		api.POST("/feedback", s.Feedback)

		api.POST("/activities", s.SaveActivity)
		api.GET("/activities/recent", s.RecentActivities)

		api.POST("/progress", s.SaveProgress)
		api.GET("/progress/recent", s.RecentProgress)
		api.GET("/progress/:session", s.ProgressBySession)
	}

	return router
}
