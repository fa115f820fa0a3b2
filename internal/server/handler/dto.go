package handler

// CreateAccountRequest registers a new chart-of-accounts entry
type CreateAccountRequest struct {
	Code        string `json:"codigo" binding:"required"`
	Name        string `json:"nome" binding:"required"`
	Type        string `json:"tipo" binding:"required,oneof=ATIVO PASSIVO PATRIMONIO_LIQUIDO RECEITA DESPESA"`
	Nature      string `json:"natureza" binding:"required,oneof=DEVEDORA CREDORA"`
	Description string `json:"descricao,omitempty"`
	ParentID    string `json:"contaPai,omitempty"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	Name        string `json:"nome"`
	Type        string `json:"tipo"`
	Nature      string `json:"natureza"`
	Description string `json:"descricao,omitempty"`
	ParentID    string `json:"contaPai,omitempty"`
	Active      bool   `json:"ativo"`
	CreatedAt   string `json:"criadoEm"`
	UpdatedAt   string `json:"atualizadoEm"`
}

// ProcessEventRequest carries a business event to post.
// Date, when supplied, must be RFC 3339.
type ProcessEventRequest struct {
	Type        string                 `json:"tipo" binding:"required"`
	Date        string                 `json:"data,omitempty"`
	Amount      float64                `json:"valor" binding:"required,gt=0"`
	Description string                 `json:"descricao" binding:"required"`
	Metadata    map[string]interface{} `json:"metadados,omitempty"`
}

// EntryLineRequest is one debit or credit row of a manual entry
type EntryLineRequest struct {
	AccountID string  `json:"contaId" binding:"required"`
	Side      string  `json:"tipo" binding:"required,oneof=DEBITO CREDITO"`
	Amount    float64 `json:"valor" binding:"required,gt=0"`
	Memo      string  `json:"historico,omitempty"`
}

// CreateEntryRequest carries a manually supplied entry
type CreateEntryRequest struct {
	Date           string                 `json:"data,omitempty"`
	DocumentNumber string                 `json:"numeroDocumento,omitempty"`
	Description    string                 `json:"historico" binding:"required"`
	Lines          []EntryLineRequest     `json:"itens" binding:"required,min=2,dive"`
	SourceEvent    string                 `json:"eventoOrigem,omitempty"`
	Metadata       map[string]interface{} `json:"metadados,omitempty"`
}

// EntryLineResponse represents an entry line in API responses
type EntryLineResponse struct {
	ID        string  `json:"id"`
	AccountID string  `json:"contaId"`
	Side      string  `json:"tipo"`
	Amount    float64 `json:"valor"`
	Memo      string  `json:"historico"`
}

// EntryResponse represents a ledger entry in API responses
type EntryResponse struct {
	ID             string                 `json:"id"`
	Date           string                 `json:"data"`
	DocumentNumber string                 `json:"numeroDocumento,omitempty"`
	Description    string                 `json:"historico"`
	Lines          []EntryLineResponse    `json:"itens"`
	Status         string                 `json:"status"`
	SourceEvent    string                 `json:"eventoOrigem,omitempty"`
	Metadata       map[string]interface{} `json:"metadados,omitempty"`
	CreatedAt      string                 `json:"criadoEm"`
	UpdatedAt      string                 `json:"atualizadoEm"`
}
