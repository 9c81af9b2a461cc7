package types

// ------------------------------
// Response Types
// ------------------------------

// Object is an untyped JSON document, used for aggregate endpoints whose
// shape the backend does not pin down.
type Object = map[string]any

// LoginResponse is returned by /api/auth/login.
type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	UserInfo     UserInfo `json:"user_info"`
}

// RefreshResponse is returned by /api/auth/refresh.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// DashboardSummary mirrors /api/dashboard.
type DashboardSummary struct {
	TotalBalance     float64 `json:"total_balance"`
	MonthlySpending  float64 `json:"monthly_spending"`
	SavingsProgress  float64 `json:"savings_progress"`
	SavingsGoal      float64 `json:"savings_goal"`
	InvestmentValue  float64 `json:"investment_value"`
	NetWorth         float64 `json:"net_worth"`
	BalanceChange    float64 `json:"balance_change"`
	SpendingChange   float64 `json:"spending_change"`
	InvestmentChange float64 `json:"investment_change"`
	Timestamp        string  `json:"timestamp"`
}

// Pagination describes a page of results.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// TransactionSummary totals a page of transactions.
type TransactionSummary struct {
	TotalAmount      float64 `json:"total_amount"`
	IncomeAmount     float64 `json:"income_amount"`
	ExpenseAmount    float64 `json:"expense_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// TransactionList mirrors /api/transactions.
type TransactionList struct {
	Transactions []Transaction      `json:"transactions"`
	Pagination   Pagination         `json:"pagination"`
	Summary      TransactionSummary `json:"summary"`
	Timestamp    string             `json:"timestamp"`
}

// AccountList mirrors /api/accounts.
type AccountList struct {
	Accounts     []Account `json:"accounts"`
	TotalBalance float64   `json:"total_balance"`
	Timestamp    string    `json:"timestamp"`
}

// InvestmentList mirrors /api/investments.
type InvestmentList struct {
	Investments []Investment `json:"investments"`
	TotalValue  float64      `json:"total_value"`
	Timestamp   string       `json:"timestamp"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response     string         `json:"response"`
	ChatID       string         `json:"chat_id"`
	Intent       string         `json:"intent"`
	AnalysisType string         `json:"analysis_type"`
	Confidence   map[string]any `json:"confidence,omitempty"`
	Timestamp    string         `json:"timestamp"`
}

// ChatHistory mirrors /api/chat/history.
type ChatHistory struct {
	History    []ChatEntry `json:"history"`
	TotalCount int         `json:"total_count"`
}

// PrivacySettings mirrors /api/privacy/settings.
type PrivacySettings struct {
	Settings            Permissions    `json:"settings"`
	AvailableCategories map[string]any `json:"available_categories,omitempty"`
	DataAccessLevel     string         `json:"data_access_level,omitempty"`
	PermissionSummary   map[string]any `json:"permission_summary,omitempty"`
	Timestamp           string         `json:"timestamp,omitempty"`
}

// BudgetList mirrors /api/budgets.
type BudgetList struct {
	Budgets []Budget `json:"budgets"`
}

// NotificationList mirrors /api/notifications.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// Message is the generic {"message": "..."} acknowledgement.
type Message struct {
	Message string `json:"message"`
}
