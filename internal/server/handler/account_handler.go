package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/server/service"
)

// AccountHandler handles HTTP requests for chart-of-accounts operations
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Create registers a new account, rejecting duplicate codes
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	acc, err := h.accountService.CreateAccount(
		c.Request.Context(),
		req.Code,
		req.Name,
		account.Type(req.Type),
		account.Nature(req.Nature),
		req.Description,
		req.ParentID,
	)
	if err != nil {
		var duplicateErr account.ErrDuplicateCode
		if errors.As(err, &duplicateErr) {
			h.logger.Warn("Attempt to register account with duplicate code", "code", duplicateErr.Code)
			RespondConflict(c, "Account with this code already exists: "+duplicateErr.Code)
			return
		}
		if errors.Is(err, account.ErrEmptyCode) || errors.Is(err, account.ErrEmptyName) ||
			errors.Is(err, account.ErrInvalidType) || errors.Is(err, account.ErrInvalidNature) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to register account", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapAccountToResponse(acc))
}

// GetByID retrieves an account by its ID, returning 404 if not found
func (h *AccountHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	acc, err := h.accountService.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get account", "id", id, "error", err)
		RespondInternalError(c)
		return
	}
	if acc == nil {
		RespondNotFound(c, "Account not found")
		return
	}

	RespondOK(c, mapAccountToResponse(acc))
}

// List returns the full chart of accounts
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list accounts", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, mapAccountToResponse(acc))
	}

	RespondOK(c, responses)
}

// mapAccountToResponse maps an account entity to its response DTO
func mapAccountToResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.ID,
		Code:        acc.Code,
		Name:        acc.Name,
		Type:        string(acc.Type),
		Nature:      string(acc.Nature),
		Description: acc.Description,
		ParentID:    acc.ParentID,
		Active:      acc.Active,
		CreatedAt:   acc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   acc.UpdatedAt.Format(time.RFC3339),
	}
}
