package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest carries user credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest updates the current user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// TransactionFilter narrows ListTransactions. Zero values are omitted from the query.
type TransactionFilter struct {
	Limit     int
	Offset    int
	Category  string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// TransactionInput creates or updates a transaction.
type TransactionInput struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Account     string  `json:"account"`
	Type        string  `json:"type"`
}

// ChatRequest is a message to the assistant.
type ChatRequest struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// PrivacyDeleteRequest asks the backend to purge data categories.
type PrivacyDeleteRequest struct {
	Categories []string `json:"categories"`
	Confirm    bool     `json:"confirm"`
}

// InsightsRequest asks for AI insights over the permitted data.
type InsightsRequest struct {
	Prompt      string      `json:"prompt"`
	Permissions Permissions `json:"permissions"`
}

// BudgetInput creates or updates a budget.
type BudgetInput struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Period    string  `json:"period"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
}
