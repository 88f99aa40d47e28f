package monthview

import (
	"net/http"
	"strconv"
	"time"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"
	"github.com/k1slee/worktime-tracking/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("monthview.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("monthview.handler")
	}
	return &Handler{service: service, logger: l}
}

// yearMonth reads the year/month query parameters. Invalid or absent
// values fall back to the current date rather than erroring, so a bare
// GET always renders the current month.
func yearMonth(c *gin.Context) (int, int) {
	now := time.Now().UTC()

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, month
}

func (h *Handler) View(c *gin.Context) {
	h.render(c, NewScope(c.GetString("user_id"), c.GetString("role")))
}

// Print renders the same view with every cell read-only.
func (h *Handler) Print(c *gin.Context) {
	h.render(c, NewScope(c.GetString("user_id"), c.GetString("role")).ReadOnly())
}

func (h *Handler) render(c *gin.Context, scope Scope) {
	year, month := yearMonth(c)
	filter := Filter{
		DepartmentID: c.Query("department_id"),
		MasterID:     c.Query("master_id"),
	}

	view, err := h.service.BuildMonth(c.Request.Context(), year, month, filter, scope)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status >= http.StatusInternalServerError {
			h.logger.Error("month view build failed",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Error(err),
			)
		}
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, view, nil)
}
