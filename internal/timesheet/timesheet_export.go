package timesheet

import (
	"bytes"
	"context"
	"encoding/csv"

	timesheeterrors "github.com/k1slee/worktime-tracking/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var exportHeader = []string{
	"Дата",
	"Табельный номер",
	"ФИО",
	"Должность",
	"Подразделение",
	"Мастер",
	"Значение",
	"Статус",
	"Утвердил",
	"Дата утверждения",
}

// ExportCSV renders filtered records as a semicolon-separated file, the
// format the planning department feeds into their spreadsheets.
func (s *service) ExportCSV(ctx context.Context, filter ExportFilter) ([]byte, error) {
	from, err := parseDate(filter.From)
	if err != nil {
		return nil, timesheeterrors.ErrInvalidDate
	}
	to, err := parseDate(filter.To)
	if err != nil {
		return nil, timesheeterrors.ErrInvalidDate
	}
	// Inclusive range in the API, half-open in the repo.
	to = to.AddDate(0, 0, 1)

	records, err := s.repo.ListForExport(ctx, from, to, filter.MasterID, filter.DepartmentID, filter.Status)
	if err != nil {
		s.logger.Error("export list failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	userNames, err := s.resolveUserNames(ctx, records)
	if err != nil {
		s.logger.Error("export name lookup failed", zap.Error(err))
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, rec := range records {
		row := []string{
			rec.Date.Format("02.01.2006"),
			"", // badge
			"", // full name
			"", // position
			"", // department
			userNames[rec.MasterID],
			rec.Value,
			StatusLabel(rec.Status),
			"",
			"",
		}
		if rec.Employee != nil {
			row[1] = rec.Employee.BadgeNumber
			row[2] = rec.Employee.FullName
			row[3] = rec.Employee.Position
			if rec.Employee.Department != nil {
				row[4] = rec.Employee.Department.Name
			}
		}
		if rec.ApprovedBy != nil {
			row[8] = userNames[*rec.ApprovedBy]
		}
		if rec.ApprovedAt != nil {
			row[9] = rec.ApprovedAt.Format("02.01.2006 15:04")
		}

		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.logger.Info("export csv success",
		zap.Int("records", len(records)),
		zap.Time("from", from),
		zap.Time("to", to),
	)
	return buf.Bytes(), nil
}

// resolveUserNames batch-resolves the master and approver columns. The
// export promises full names, not ids.
func (s *service) resolveUserNames(ctx context.Context, records []Timesheet) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(records))
	ids := make([]uuid.UUID, 0, len(records))

	collect := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, rec := range records {
		collect(rec.MasterID)
		if rec.ApprovedBy != nil {
			collect(*rec.ApprovedBy)
		}
	}

	return s.users.FindFullNamesByIDs(ctx, ids)
}
