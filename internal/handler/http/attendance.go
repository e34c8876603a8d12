package http

import (
	"encoding/json"
	"net/http"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/report"
	"github.com/gymrepublic/gym-console/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Clock(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

func queryRequest(r *http.Request) attendance.QueryRequest {
	q := r.URL.Query()
	return attendance.QueryRequest{
		StaffID: q.Get("staff_id"),
		From:    q.Get("from"),
		To:      q.Get("to"),
	}
}

// List returns the filtered records, each with its derived status and hours,
// plus the summary of the same records.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	req := queryRequest(r)
	filter, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Query(r.Context(), sess, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToQueryResponse(result))
}

func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	req := queryRequest(r)
	filter, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Query(r.Context(), sess, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := attendance.ToQueryResponse(result)
	response.Success(w, attendance.SummaryOnlyResponse{
		Summary:  resp.Summary,
		Warnings: resp.Warnings,
	})
}

func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Clock(r.Context(), sess, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock "+req.ClockType+" successful", nil)
}

func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Mark(r.Context(), sess, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", nil)
}

func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	req := queryRequest(r)
	filter, err := req.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}
	exportReq := report.ExportRequest{Format: r.URL.Query().Get("format")}
	format, err := exportReq.Validate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.AttendanceReport(r.Context(), sess, filter, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeDocument(w, doc)
}
