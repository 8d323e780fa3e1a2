package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/quizmaker-api/internal/domain/entity"
	"github.com/yourusername/quizmaker-api/internal/domain/repository"
	"github.com/yourusername/quizmaker-api/internal/handler/dto"
	apperrors "github.com/yourusername/quizmaker-api/internal/pkg/errors"
	"github.com/yourusername/quizmaker-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// CreateQuizRequest представляет запрос на создание викторины.
// Правила полей здесь намеренно не навешаны через binding-теги:
// вся структурная валидация живет в service.ValidateQuizInput,
// которая возвращает полный список нарушений разом.
type CreateQuizRequest struct {
	Title     string `json:"title"`
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex *int     `json:"correctIndex"`
	} `json:"questions"`
}

// SubmitQuizRequest представляет запрос на сдачу викторины.
// Элемент answers — индекс варианта или null ("не отвечен").
type SubmitQuizRequest struct {
	Answers []*int `json:"answers" binding:"required"`
}

// CreateQuiz обрабатывает запрос на создание викторины
// POST /api/quizzes
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{err.Error()}))
		return
	}

	questions := make([]entity.Question, len(req.Questions))
	for i, q := range req.Questions {
		correctIndex := -1 // Отсутствующий correctIndex отвергнет валидация
		if q.CorrectIndex != nil {
			correctIndex = *q.CorrectIndex
		}
		questions[i] = entity.Question{
			Text:         q.Question,
			Options:      entity.StringArray(q.Options),
			CorrectIndex: correctIndex,
		}
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, questions)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewQuizResponse(quiz)))
}

// ListQuizzes возвращает список викторин (новые первыми)
// GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	summaries, err := h.quizService.ListQuizzes()
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewQuizSummaryList(summaries)))
}

// GetQuiz возвращает викторину с вопросами
// GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	quiz, err := h.quizService.GetQuizByID(quizID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewQuizResponse(quiz)))
}

// SubmitQuiz подсчитывает результат по присланным ответам
// POST /api/quizzes/:id/submit
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(uint) // Получаем из контекста

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{"answers must be provided"}))
		return
	}

	result, err := h.quizService.SubmitQuiz(quizID, req.Answers)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// ExportQuizzes экспортирует каталог викторин в CSV или Excel формате
// GET /api/quizzes/export?format=csv|xlsx
func (h *QuizHandler) ExportQuizzes(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	summaries, err := h.quizService.ListQuizzes()
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	filename := fmt.Sprintf("quizzes_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, summaries, filename)
	default:
		h.exportCSV(c, summaries, filename)
	}
}

// exportCSV экспортирует каталог в CSV с правильным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, summaries []repository.QuizSummary, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// Заголовки
	writer.Write([]string{"ID", "Название", "Вопросов", "Создана"})

	// Данные
	for _, s := range summaries {
		writer.Write([]string{
			strconv.FormatUint(uint64(s.ID), 10),
			sanitizeForExcel(s.Title),
			strconv.Itoa(s.QuestionCount),
			s.CreatedAt.Format(time.RFC3339),
		})
	}
}

// exportXLSX экспортирует каталог в Excel с использованием StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, summaries []repository.QuizSummary, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Викторины"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create Excel file"))
		return
	}

	// Заголовки
	headers := []interface{}{"ID", "Название", "Вопросов", "Создана"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuizHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, s := range summaries {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		row := []interface{}{s.ID, sanitizeForExcel(s.Title), s.QuestionCount, s.CreatedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}

	// Записываем в response
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// handleQuizError преобразует доменные ошибки в HTTP статусы
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(verr.Messages))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Quiz not found."))
	default:
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
