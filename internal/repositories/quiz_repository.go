package repositories

import (
	"strings"

	"github.com/mroshb/quiz_bot/internal/models"
	"github.com/mroshb/quiz_bot/pkg/errors"
	"gorm.io/gorm"
)

// QuizRepository owns the theme/question catalog the bot reads and the
// admin API writes.
type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateTheme adds a theme with a unique title.
func (r *QuizRepository) CreateTheme(title string) (*models.Theme, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New(errors.ErrCodeValidation, "theme title is required")
	}

	var existing models.Theme
	if err := r.db.Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "theme already exists")
	}

	theme := &models.Theme{Title: title}
	if err := r.db.Create(theme).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create theme")
	}

	return theme, nil
}

func (r *QuizRepository) GetThemeByID(id uint) (*models.Theme, error) {
	var theme models.Theme
	result := r.db.First(&theme, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "theme not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get theme")
	}

	return &theme, nil
}

func (r *QuizRepository) GetThemeByTitle(title string) (*models.Theme, error) {
	var theme models.Theme
	result := r.db.Where("title = ?", title).First(&theme)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "theme not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get theme")
	}

	return &theme, nil
}

func (r *QuizRepository) ListThemes() ([]models.Theme, error) {
	var themes []models.Theme
	if err := r.db.Order("id ASC").Find(&themes).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list themes")
	}
	return themes, nil
}

// CreateQuestion adds a question with its answers. At least two answers with
// exactly one marked correct are required; the rest of the system relies on
// that invariant when resolving answers.
func (r *QuizRepository) CreateQuestion(title string, themeID uint, answers []models.Answer) (*models.Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New(errors.ErrCodeValidation, "question title is required")
	}
	if len(answers) < 2 {
		return nil, errors.New(errors.ErrCodeValidation, "question needs at least 2 answers")
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return nil, errors.New(errors.ErrCodeValidation, "question needs exactly 1 correct answer")
	}

	if _, err := r.GetThemeByID(themeID); err != nil {
		return nil, err
	}

	var existing models.Question
	if err := r.db.Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "question already exists")
	}

	question := &models.Question{
		Title:   title,
		ThemeID: themeID,
		Answers: answers,
	}
	if err := r.db.Create(question).Error; err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create question")
	}

	return question, nil
}

// GetQuestionByTitle loads a question with its answers, ordered by answer id.
func (r *QuizRepository) GetQuestionByTitle(title string) (*models.Question, error) {
	var question models.Question
	result := r.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id ASC")
	}).Where("title = ?", title).First(&question)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "question not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get question")
	}

	return &question, nil
}

func (r *QuizRepository) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id ASC")
	}).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list questions")
	}
	return questions, nil
}

// ListQuestionsByThemeTitle returns all questions under the named theme.
func (r *QuizRepository) ListQuestionsByThemeTitle(themeTitle string) ([]models.Question, error) {
	theme, err := r.GetThemeByTitle(themeTitle)
	if err != nil {
		return nil, err
	}
	return r.ListQuestionsByThemeID(theme.ID)
}

func (r *QuizRepository) ListQuestionsByThemeID(themeID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id ASC")
	}).Where("theme_id = ?", themeID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list questions by theme")
	}
	return questions, nil
}
