package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/domain/ledger"
	"github.com/contabilidade-ledger/internal/domain/shared"
	"github.com/contabilidade-ledger/internal/posting"
	"github.com/contabilidade-ledger/internal/server/service"
)

// EntryHandler handles HTTP requests for ledger entry operations
type EntryHandler struct {
	entryService service.EntryService
	logger       *slog.Logger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(logger *slog.Logger, entryService service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		logger:       logger,
	}
}

// ProcessEvent posts a business event as a balanced entry
func (h *EntryHandler) ProcessEvent(c *gin.Context) {
	var req ProcessEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	// Date parsing is the transport's job; the engine only sees typed values.
	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	event := &shared.AccountingEvent{
		Type:        req.Type,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
		Metadata:    req.Metadata,
	}

	entry, err := h.entryService.ProcessEvent(c.Request.Context(), event)
	if err != nil {
		h.respondPostingError(c, err)
		return
	}

	RespondCreated(c, mapEntryToResponse(entry))
}

// CreateManual posts a manually supplied entry with explicit lines
func (h *EntryHandler) CreateManual(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}

	lines := make([]shared.LineRequest, 0, len(req.Lines))
	for _, item := range req.Lines {
		lines = append(lines, shared.LineRequest{
			AccountID: item.AccountID,
			Side:      ledger.Side(item.Side),
			Amount:    item.Amount,
			Memo:      item.Memo,
		})
	}

	entryReq := &shared.EntryRequest{
		Date:           date,
		DocumentNumber: req.DocumentNumber,
		Description:    req.Description,
		Lines:          lines,
		SourceEvent:    req.SourceEvent,
		Metadata:       req.Metadata,
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), entryReq)
	if err != nil {
		h.respondPostingError(c, err)
		return
	}

	RespondCreated(c, mapEntryToResponse(entry))
}

// GetByID retrieves an entry by its ID, returning 404 if not found
func (h *EntryHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get entry", "id", id, "error", err)
		RespondInternalError(c)
		return
	}
	if entry == nil {
		RespondNotFound(c, "Entry not found")
		return
	}

	RespondOK(c, mapEntryToResponse(entry))
}

// List returns all ledger entries
func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list entries", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	RespondOK(c, responses)
}

// respondPostingError maps posting engine failures to HTTP responses.
// Validation and integrity failures are the caller's fault; everything else
// is a server error.
func (h *EntryHandler) respondPostingError(c *gin.Context, err error) {
	var (
		invalidEvent    shared.ErrInvalidEvent
		invalidRequest  shared.ErrInvalidRequest
		unsupportedType posting.ErrUnsupportedEventType
		accountNotFound account.ErrAccountNotFound
		inactiveAccount account.ErrInactiveAccount
		unbalancedEntry ledger.ErrUnbalancedEntry
	)

	switch {
	case errors.As(err, &invalidEvent),
		errors.As(err, &invalidRequest),
		errors.As(err, &unsupportedType),
		errors.As(err, &accountNotFound),
		errors.As(err, &inactiveAccount),
		errors.As(err, &unbalancedEntry):
		h.logger.Warn("Posting rejected", "error", err)
		RespondBadRequest(c, err.Error())
	default:
		h.logger.Error("Failed to post entry", "error", err)
		RespondInternalError(c)
	}
}

// parseDate parses an optional RFC 3339 date string, responding with 400 on
// malformed input. The zero time means "not supplied".
func parseDate(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}

	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		RespondBadRequest(c, "Invalid date: must be RFC 3339, got "+raw)
		return time.Time{}, false
	}

	return date, true
}

// mapEntryToResponse maps a ledger entry to its response DTO
func mapEntryToResponse(entry *ledger.Entry) EntryResponse {
	lines := make([]EntryLineResponse, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		lines = append(lines, EntryLineResponse{
			ID:        line.ID,
			AccountID: line.AccountID,
			Side:      string(line.Side),
			Amount:    line.Amount,
			Memo:      line.Memo,
		})
	}

	return EntryResponse{
		ID:             entry.ID,
		Date:           entry.Date.Format(time.RFC3339),
		DocumentNumber: entry.DocumentNumber,
		Description:    entry.Description,
		Lines:          lines,
		Status:         string(entry.Status),
		SourceEvent:    entry.SourceEvent,
		Metadata:       entry.Metadata,
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      entry.UpdatedAt.Format(time.RFC3339),
	}
}
