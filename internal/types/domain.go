package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Transaction is a single ledger line. Negative amounts are expenses.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Account     string  `json:"account"`
	Type        string  `json:"type"`
}

// Account is a bank or cash account.
type Account struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency,omitempty"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// Investment is a holding in a portfolio.
type Investment struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"current_price"`
	TotalValue   float64 `json:"total_value"`
	Currency     string  `json:"currency,omitempty"`
}

// Asset is a non-cash asset such as real estate.
type Asset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Currency    string  `json:"currency,omitempty"`
	LastUpdated string  `json:"last_updated,omitempty"`
}

// Liability is a debt.
type Liability struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	Currency       string  `json:"currency,omitempty"`
}

// Budget caps spending for a category over a period.
type Budget struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Period    string  `json:"period"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
}

// Notification is a user-facing alert (budget exceeded, unusual spend, ...).
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// ChatEntry is one exchange in the assistant history.
type ChatEntry struct {
	ID           string         `json:"id"`
	UserMessage  string         `json:"user_message"`
	AIResponse   string         `json:"ai_response"`
	Intent       string         `json:"intent"`
	AnalysisType string         `json:"analysis_type"`
	Timestamp    string         `json:"timestamp"`
	Context      map[string]any `json:"context,omitempty"`
}

// Permissions toggles which data categories the assistant may read.
type Permissions struct {
	Transactions      bool `json:"transactions"`
	Accounts          bool `json:"accounts"`
	Assets            bool `json:"assets"`
	Liabilities       bool `json:"liabilities"`
	EPFBalance        bool `json:"epf_balance"`
	CreditScore       bool `json:"credit_score"`
	Investments       bool `json:"investments"`
	SpendingTrends    bool `json:"spending_trends"`
	CategoryBreakdown bool `json:"category_breakdown"`
	DashboardInsights bool `json:"dashboard_insights"`
}

// UserInfo describes the authenticated user.
type UserInfo struct {
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
	IsActive    bool     `json:"is_active"`
}
