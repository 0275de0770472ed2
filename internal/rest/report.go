package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/society-service/internal/config"
	"github.com/s21platform/society-service/internal/model"
)

type CreateReportRequest struct {
	ReportedID uuid.UUID `json:"reported_id"`
	TargetType string    `json:"target_type"`
	Reason     string    `json:"reason"`
}

type UpdateReportRequest struct {
	Status string `json:"status"`
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateReport")

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.TargetType != model.ReportTargetPost && req.TargetType != model.ReportTargetComment && req.TargetType != model.ReportTargetUser {
		h.writeError(w, "invalid target type", http.StatusBadRequest)
		return
	}

	reporterID := requesterID(r)
	if reporterID == nil {
		h.writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	report := &model.Report{
		ReporterID: *reporterID,
		ReportedID: req.ReportedID,
		TargetType: req.TargetType,
		Reason:     req.Reason,
		Status:     model.ReportStatusOpen,
	}

	reportID, err := h.repository.CreateReport(r.Context(), report)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create report: %v", err))
		h.writeDomainError(w, err)
		return
	}
	report.ID = reportID

	h.notifyAdmins(r, logger, report)

	h.writeJSON(w, report, http.StatusOK)
}

// notifyAdmins pushes a new_report event to every admin's notification
// socket. Best-effort.
func (h *Handler) notifyAdmins(r *http.Request, logger logger_lib.LoggerInterface, report *model.Report) {
	adminIDs, err := h.repository.GetAdminUserIDs(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get admins: %v", err))
		return
	}

	event := model.NewReportEvent(report)
	for _, adminID := range adminIDs {
		h.dispatcher.Notify(adminID, event)
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListReports")

	if !h.requireModerator(w, r, logger) {
		return
	}

	reports, err := h.repository.GetReports(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list reports: %v", err))
		h.writeDomainError(w, err)
		return
	}

	h.writeJSON(w, reports, http.StatusOK)
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateReport")

	if !h.requireModerator(w, r, logger) {
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "reportId"))
	if err != nil {
		h.writeError(w, "invalid report id", http.StatusBadRequest)
		return
	}

	var req UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Status != model.ReportStatusOpen && req.Status != model.ReportStatusResolved {
		h.writeError(w, "invalid report status", http.StatusBadRequest)
		return
	}

	if err := h.repository.UpdateReportStatus(r.Context(), reportID, req.Status); err != nil {
		logger.Error(fmt.Sprintf("failed to update report %s: %v", reportID, err))
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireModerator resolves the requester's role and rejects everyone
// below moderator.
func (h *Handler) requireModerator(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface) bool {
	role, err := h.guard.ResolveRole(r.Context(), requesterID(r))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to resolve role: %v", err))
		h.writeDomainError(w, err)
		return false
	}

	if role != model.RoleAdmin && role != model.RoleModerator {
		h.writeError(w, "moderator access required", http.StatusForbidden)
		return false
	}

	return true
}
