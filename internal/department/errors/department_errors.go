package departmenterrors

import (
	"net/http"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Подразделение не найдено",
		http.StatusNotFound,
	)
	ErrDepartmentCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Подразделение с таким кодом уже существует",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный идентификатор подразделения",
		http.StatusBadRequest,
	)
)
