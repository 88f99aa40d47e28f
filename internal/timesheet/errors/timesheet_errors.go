package timesheeterrors

import (
	"net/http"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Запись табеля не найдена",
		http.StatusNotFound,
	)
	ErrTimesheetAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Запись на эту дату для сотрудника уже существует",
		http.StatusConflict,
	)
	ErrRecordLocked = apperror.New(
		apperror.CodeInvalidState,
		"Запись нельзя изменить в текущем статусе",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Недопустимый переход статуса",
		http.StatusConflict,
	)
	ErrNotRecordOwner = apperror.New(
		apperror.CodeForbidden,
		"Запись принадлежит другому мастеру",
		http.StatusForbidden,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректная дата, ожидается формат ГГГГ-ММ-ДД",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный идентификатор сотрудника",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный идентификатор пользователя",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный месяц",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidInput,
		"Действие должно быть save или delete",
		http.StatusBadRequest,
	)
	ErrInvalidBulkAction = apperror.New(
		apperror.CodeInvalidInput,
		"Действие должно быть approve или unapprove",
		http.StatusBadRequest,
	)
)
