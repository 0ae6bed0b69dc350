package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/internal/security"
	"github.com/mroshb/quiz_bot/pkg/errors"
)

type themeRequest struct {
	Title string `json:"title" binding:"required"`
}

type answerPayload struct {
	Title     string `json:"title" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type questionRequest struct {
	Title   string          `json:"title" binding:"required"`
	ThemeID uint            `json:"theme_id" binding:"required"`
	Answers []answerPayload `json:"answers" binding:"required"`
}

func (s *Server) createTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := s.quiz.CreateTheme(security.SanitizeTitle(req.Title))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": theme.ID, "title": theme.Title})
}

func (s *Server) listThemes(c *gin.Context) {
	themes, err := s.quiz.ListThemes()
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(themes))
	for _, theme := range themes {
		out = append(out, gin.H{"id": theme.ID, "title": theme.Title})
	}
	c.JSON(http.StatusOK, gin.H{"themes": out})
}

func (s *Server) createQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.Answer{
			Title:     security.SanitizeTitle(a.Title),
			IsCorrect: a.IsCorrect,
		})
	}

	question, err := s.quiz.CreateQuestion(security.SanitizeTitle(req.Title), req.ThemeID, answers)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, questionResponse(question))
}

func (s *Server) listQuestions(c *gin.Context) {
	var (
		questions []models.Question
		err       error
	)

	if raw := c.Query("theme_id"); raw != "" {
		themeID, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			abortWithError(c, errors.New(errors.ErrCodeValidation, "invalid theme_id"))
			return
		}
		questions, err = s.quiz.ListQuestionsByThemeID(uint(themeID))
	} else {
		questions, err = s.quiz.ListQuestions()
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(questions))
	for i := range questions {
		out = append(out, questionResponse(&questions[i]))
	}
	c.JSON(http.StatusOK, gin.H{"questions": out})
}

func questionResponse(q *models.Question) gin.H {
	answers := make([]gin.H, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, gin.H{"title": a.Title, "is_correct": a.IsCorrect})
	}
	return gin.H{
		"id":       q.ID,
		"title":    q.Title,
		"theme_id": q.ThemeID,
		"answers":  answers,
	}
}
