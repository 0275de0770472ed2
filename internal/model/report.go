package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportTargetPost    = "post"
	ReportTargetComment = "comment"
	ReportTargetUser    = "user"

	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"
)

type ReportList []Report

type Report struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ReporterID uuid.UUID `db:"reporter_id" json:"reporter_id"`
	ReportedID uuid.UUID `db:"reported_id" json:"reported_id"`
	TargetType string    `db:"target_type" json:"target_type"`
	Reason     string    `db:"reason" json:"reason"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
