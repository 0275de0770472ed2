package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/society-service/internal/model"
)

func (r *Repository) CreateReport(ctx context.Context, report *model.Report) (uuid.UUID, error) {
	query, args, err := sq.Insert("reports").
		Columns("reporter_id", "reported_id", "target_type", "reason", "status").
		Values(report.ReporterID, report.ReportedID, report.TargetType, report.Reason, model.ReportStatusOpen).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reportID uuid.UUID
	err = r.Chk(ctx).GetContext(ctx, &reportID, query, args...)
	if err != nil {
		return uuid.Nil, err
	}

	return reportID, nil
}

func (r *Repository) GetReports(ctx context.Context, status string) (*model.ReportList, error) {
	builder := sq.Select("id", "reporter_id", "reported_id", "target_type", "reason", "status", "created_at").
		From("reports").
		OrderBy("created_at DESC")

	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reports model.ReportList
	err = r.Chk(ctx).SelectContext(ctx, &reports, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %v", err)
	}

	return &reports, nil
}

func (r *Repository) UpdateReportStatus(ctx context.Context, reportID uuid.UUID, status string) error {
	query, args, err := sq.Update("reports").
		Set("status", status).
		Where(sq.Eq{"id": reportID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
