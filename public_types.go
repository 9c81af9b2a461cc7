package client

import (
	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

// Public type aliases so callers can import only the client package.
type (
	// Requests
	LoginRequest          = types.LoginRequest
	ChangePasswordRequest = types.ChangePasswordRequest
	TransactionFilter     = types.TransactionFilter
	TransactionInput      = types.TransactionInput
	ChatRequest           = types.ChatRequest
	PrivacyDeleteRequest  = types.PrivacyDeleteRequest
	InsightsRequest       = types.InsightsRequest
	BudgetInput           = types.BudgetInput

	// Domain entities
	Transaction  = types.Transaction
	Account      = types.Account
	Investment   = types.Investment
	Asset        = types.Asset
	Liability    = types.Liability
	Budget       = types.Budget
	Notification = types.Notification
	ChatEntry    = types.ChatEntry
	Permissions  = types.Permissions
	UserInfo     = types.UserInfo

	// Responses
	Object             = types.Object
	LoginResponse      = types.LoginResponse
	RefreshResponse    = types.RefreshResponse
	DashboardSummary   = types.DashboardSummary
	Pagination         = types.Pagination
	TransactionSummary = types.TransactionSummary
	TransactionList    = types.TransactionList
	AccountList        = types.AccountList
	InvestmentList     = types.InvestmentList
	ChatResponse       = types.ChatResponse
	ChatHistory        = types.ChatHistory
	PrivacySettings    = types.PrivacySettings
	BudgetList         = types.BudgetList
	NotificationList   = types.NotificationList
	Message            = types.Message

	// Raw calls
	RequestOptions = request.Options
	Result         = request.Result
)

// NoRetry disables retries for one call when set as RequestOptions.Retries.
const NoRetry = request.NoRetry
