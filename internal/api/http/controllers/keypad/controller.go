package keypad

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

// Controller — маршруты клавиатуры: нажатия, дисплей, сброс сессии, история.
type Controller struct {
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт контроллер клавиатуры.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/sessions/:id/keys", c.press)
	api.GET("/sessions/:id", c.display)
	api.DELETE("/sessions/:id", c.reset)
	api.GET("/history", c.history)
}

// @Summary Нажать клавиши
// @Description Применяет клавиши к сессии по порядку и возвращает дисплей. Разрешённые операции сохраняются в историю.
// @Tags keypad
// @Accept json
// @Produce json
// @Param id path string true "ID сессии"
// @Param request body PressRequest true "Клавиши"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/keys [post]
func (c *Controller) press(ctx *gin.Context) {
	var req PressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("press bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	id := ctx.Param("id")
	state, err := c.uc.Press(ctx.Request.Context(), id, req.Labels()...)
	if err != nil {
		c.fail(ctx, "press", err)
		return
	}
	ctx.JSON(http.StatusOK, newStateResponse(id, state))
}

// @Summary Текущий дисплей
// @Tags keypad
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} StateResponse
// @Router /api/v1/sessions/{id} [get]
func (c *Controller) display(ctx *gin.Context) {
	id := ctx.Param("id")
	state, err := c.uc.Display(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, "display", err)
		return
	}
	ctx.JSON(http.StatusOK, newStateResponse(id, state))
}

// @Summary Сбросить сессию
// @Tags keypad
// @Param id path string true "ID сессии"
// @Success 204
// @Router /api/v1/sessions/{id} [delete]
func (c *Controller) reset(ctx *gin.Context) {
	if err := c.uc.Reset(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.fail(ctx, "reset", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Получить историю операций
// @Description Возвращает разрешённые операции всех сессий, новые первыми
// @Tags keypad
// @Produce json
// @Success 200 {object} HistoryResponse "Список операций"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, "history", err)
		return
	}
	items := make([]HistoryItem, len(list))
	for i, op := range list {
		items[i] = newHistoryItem(op)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// fail переводит ошибку юзкейса в HTTP-статус: ErrInvalidRequest → 400, остальное → 500.
func (c *Controller) fail(ctx *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrInvalidRequest) {
		c.log.Warn(op+" invalid request", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.log.Error(op+" failed", "error", err)
	_ = ctx.Error(err)
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
