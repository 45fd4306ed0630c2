package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/stafftrack/attendance-backend-go/internal/domain/entry"
	"github.com/stafftrack/attendance-backend-go/internal/domain/roster"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
	"github.com/stafftrack/attendance-backend-go/internal/service/backfill"
	entrysvc "github.com/stafftrack/attendance-backend-go/internal/service/entry"
)

type EntryHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	MassEntry(w http.ResponseWriter, r *http.Request)
	Backfill(w http.ResponseWriter, r *http.Request)
}

type entryHandlerImpl struct {
	entryService    *entrysvc.Service
	backfillService *backfill.Service
	loader          roster.Loader
}

func NewEntryHandler(entryService *entrysvc.Service, backfillService *backfill.Service, loader roster.Loader) EntryHandler {
	return &entryHandlerImpl{
		entryService:    entryService,
		backfillService: backfillService,
		loader:          loader,
	}
}

func (h *entryHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req entry.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.entryService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry saved successfully", entry.ToResponse(result))
}

func (h *entryHandlerImpl) MassEntry(w http.ResponseWriter, r *http.Request) {
	var req entry.MassEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.entryService.MassEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mass entry completed", result)
}

// Backfill runs one on-demand backfill pass, the same one the scheduler
// runs in the background.
func (h *entryHandlerImpl) Backfill(w http.ResponseWriter, r *http.Request) {
	result, err := h.backfillService.RunWithLoader(r.Context(), h.loader, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Backfill completed", result)
}
