package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stafftrack/attendance-backend-go/internal/service/summary"
)

type SummaryHandler interface {
	Months(w http.ResponseWriter, r *http.Request)
	ForMonth(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService *summary.Service
}

func NewSummaryHandler(summaryService *summary.Service) SummaryHandler {
	return &summaryHandlerImpl{
		summaryService: summaryService,
	}
}

func (h *summaryHandlerImpl) Months(w http.ResponseWriter, r *http.Request) {
	months, err := h.summaryService.Months(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, months)
}

func (h *summaryHandlerImpl) ForMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "Month must be YYYY-MM", nil)
		return
	}

	results, err := h.summaryService.ForMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
