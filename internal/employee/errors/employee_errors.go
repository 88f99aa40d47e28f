package employeeerrors

import (
	"net/http"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Сотрудник не найден",
		http.StatusNotFound,
	)
	ErrBadgeNumberTaken = apperror.New(
		apperror.CodeConflict,
		"Сотрудник с таким табельным номером уже существует",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный идентификатор сотрудника",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректная дата приёма, ожидается формат ГГГГ-ММ-ДД",
		http.StatusBadRequest,
	)
	ErrInvalidMasterID = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный идентификатор мастера",
		http.StatusBadRequest,
	)
)
