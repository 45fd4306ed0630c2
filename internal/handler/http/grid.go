package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/payment"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	"github.com/stafftrack/attendance-backend-go/internal/service/overlay"
)

// GridHandler exposes the two editable grids: the month-by-department
// attendance table ("table-YYYY-MM-<dept>") and the month's payment
// tracking table ("salary-YYYY-MM"). A grid is view-only until an edit is
// started; staged changes only persist on save.
type GridHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	StartEdit(w http.ResponseWriter, r *http.Request)
	PatchCell(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type gridHandlerImpl struct {
	attendance *overlay.AttendanceGrid
	payments   *overlay.PaymentTracker
	loader     roster.Loader
}

func NewGridHandler(attendance *overlay.AttendanceGrid, payments *overlay.PaymentTracker, loader roster.Loader) GridHandler {
	return &gridHandlerImpl{
		attendance: attendance,
		payments:   payments,
		loader:     loader,
	}
}

type gridResponse struct {
	TableID string        `json:"table_id"`
	State   overlay.State `json:"state"`
	Cells   interface{}   `json:"cells"`
}

type saveResponse struct {
	TableID    string              `json:"table_id"`
	CellErrors []overlay.CellError `json:"cell_errors,omitempty"`
}

// cellPatch is the union of the attendance and payment cell patches; the
// table ID decides which fields apply.
type cellPatch struct {
	Type      *entry.WorkType `json:"type,omitempty"`
	StartTime *string         `json:"start_time,omitempty"`
	EndTime   *string         `json:"end_time,omitempty"`
	Hours     *float64        `json:"hours,omitempty"`
	Status    *string         `json:"status,omitempty"`
	Method    *string         `json:"method,omitempty"`
}

func (h *gridHandlerImpl) horizon() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (h *gridHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")

	if month, ok := overlay.PaymentTableMonth(tableID); ok {
		state := h.payments.StateOf(tableID)
		cells, editing := h.payments.Buffer(tableID)
		if !editing {
			snap, err := h.loader.Load(r.Context(), h.horizon())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if cells, err = overlay.BuildPaymentCells(snap, month); err != nil {
				response.BadRequest(w, "Invalid table ID", nil)
				return
			}
		}
		response.Success(w, gridResponse{TableID: tableID, State: state, Cells: cells})
		return
	}

	if month, dept, ok := overlay.SplitAttendanceTableID(tableID); ok {
		state := h.attendance.StateOf(tableID)
		cells, editing := h.attendance.Buffer(tableID)
		if !editing {
			snap, err := h.loader.Load(r.Context(), h.horizon())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if cells, err = overlay.BuildAttendanceCells(snap, month, dept); err != nil {
				response.BadRequest(w, "Invalid table ID", nil)
				return
			}
		}
		response.Success(w, gridResponse{TableID: tableID, State: state, Cells: cells})
		return
	}

	response.NotFound(w, "Unknown table ID")
}

func (h *gridHandlerImpl) StartEdit(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")

	snap, err := h.loader.Load(r.Context(), h.horizon())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if month, ok := overlay.PaymentTableMonth(tableID); ok {
		err = h.payments.StartMonth(snap, month)
	} else if month, dept, ok := overlay.SplitAttendanceTableID(tableID); ok {
		err = h.attendance.StartMonth(snap, month, dept)
	} else {
		response.NotFound(w, "Unknown table ID")
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Editing started", nil)
}

func (h *gridHandlerImpl) PatchCell(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")

	key := chi.URLParam(r, "key")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}

	var patch cellPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var err error
	if _, ok := overlay.PaymentTableMonth(tableID); ok {
		err = h.payments.Mutate(tableID, key, payment.StatusPatch{
			Status: patch.Status,
			Method: patch.Method,
		})
	} else if _, _, ok := overlay.SplitAttendanceTableID(tableID); ok {
		err = h.attendance.Mutate(tableID, key, entry.WorkPatch{
			Type:      patch.Type,
			StartTime: patch.StartTime,
			EndTime:   patch.EndTime,
			Hours:     patch.Hours,
		})
	} else {
		response.NotFound(w, "Unknown table ID")
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cell updated", nil)
}

func (h *gridHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")

	var cellErrors []overlay.CellError
	var err error
	if _, ok := overlay.PaymentTableMonth(tableID); ok {
		cellErrors, err = h.payments.Save(r.Context(), tableID)
	} else if _, _, ok := overlay.SplitAttendanceTableID(tableID); ok {
		cellErrors, err = h.attendance.Save(r.Context(), tableID)
	} else {
		response.NotFound(w, "Unknown table ID")
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Table saved"
	if len(cellErrors) > 0 {
		message = "Table saved with cell errors"
	}
	response.SuccessWithMessage(w, message, saveResponse{TableID: tableID, CellErrors: cellErrors})
}

func (h *gridHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")

	var err error
	if _, ok := overlay.PaymentTableMonth(tableID); ok {
		err = h.payments.Cancel(tableID)
	} else if _, _, ok := overlay.SplitAttendanceTableID(tableID); ok {
		err = h.attendance.Cancel(tableID)
	} else {
		response.NotFound(w, "Unknown table ID")
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Editing cancelled", nil)
}
