package timesheet

import (
	"errors"
	"strings"

	timesheeterrors "github.com/k1slee/worktime-tracking/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_timesheets_date_employee" {
			return timesheeterrors.ErrTimesheetAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_timesheets_date_employee") {
		return timesheeterrors.ErrTimesheetAlreadyExists
	}

	return err
}
