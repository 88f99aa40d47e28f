package calendar

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/k1slee/worktime-tracking/internal/shared/apperror"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrInvalidKind = apperror.New(
	apperror.CodeInvalidInput,
	"kind must be holiday or preholiday",
	http.StatusBadRequest,
)

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	ListYear(ctx context.Context, year int) ([]HolidayResponse, error)
	SnapshotWindow(ctx context.Context, from, to time.Time) (*Resolver, error)
	ImportWorkbook(ctx context.Context, src io.Reader, kind string) (ImportResultResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	rows, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		resp[i] = HolidayResponse{
			Date: h.Date.Format("2006-01-02"),
			Kind: h.Kind,
			Name: h.Name,
		}
	}
	return resp, nil
}

// SnapshotWindow loads the registry once for [from, to] and returns a
// local resolver over it.
func (s *service) SnapshotWindow(ctx context.Context, from, to time.Time) (*Resolver, error) {
	rows, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return NewResolver(rows), nil
}

// ImportWorkbook walks every cell of every sheet and registers each
// parseable date. Non-date cells are skipped with a warning; the import
// never fails on bad cells.
func (s *service) ImportWorkbook(ctx context.Context, src io.Reader, kind string) (ImportResultResponse, error) {
	var name string
	switch kind {
	case KindHoliday:
		name = "Выходной"
	case KindPreHoliday:
		name = "Предпраздничный день"
	default:
		return ImportResultResponse{}, ErrInvalidKind
	}

	f, err := excelize.OpenReader(src)
	if err != nil {
		return ImportResultResponse{}, apperror.Wrap(err, apperror.CodeInvalidInput,
			"file is not a readable xlsx workbook", http.StatusBadRequest)
	}
	defer f.Close()

	var result ImportResultResponse
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			s.logger.Warn("read sheet failed", zap.String("sheet", sheet), zap.Error(err))
			continue
		}

		for _, row := range rows {
			for _, cell := range row {
				if cell == "" {
					continue
				}

				date, ok := parseCellDate(cell)
				if !ok {
					s.logger.Warn("skipped non-date cell",
						zap.String("sheet", sheet),
						zap.String("cell", cell),
					)
					result.Skipped++
					continue
				}

				created, err := s.repo.GetOrCreate(ctx, date, kind, name)
				if err != nil {
					return result, err
				}
				if created {
					result.Imported++
				} else {
					result.Existing++
				}
			}
		}
	}

	s.logger.Info("calendar import finished",
		zap.String("kind", kind),
		zap.Int("imported", result.Imported),
		zap.Int("existing", result.Existing),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

var cellDateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"2/1/2006",
	"01-02-06",
	"1/2/06",
	"2006/01/02",
	"02-Jan-06",
	"2006-01-02T15:04:05Z",
}

func parseCellDate(cell string) (time.Time, bool) {
	for _, layout := range cellDateFormats {
		if t, err := time.Parse(layout, cell); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
