package calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"
	"github.com/k1slee/worktime-tracking/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListYear(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", ""))
	if err != nil || year < 1 {
		year = time.Now().UTC().Year()
	}

	resp, err := h.service.ListYear(c.Request.Context(), year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Import accepts an xlsx workbook of dates (multipart field "file").
// The kind query parameter selects which importer ran: holiday cells or
// preholiday cells.
func (h *Handler) Import(c *gin.Context) {
	kind := c.DefaultQuery("kind", KindHoliday)

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required", err.Error())
		return
	}
	defer file.Close()

	resp, err := h.service.ImportWorkbook(c.Request.Context(), file, kind)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
