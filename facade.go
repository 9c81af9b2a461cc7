package client

import (
	"context"

	"github.com/mintellifunds/mintellifunds/client/internal/api"
)

// --------------------------------------------------------------------
// Auth
// --------------------------------------------------------------------

// Login authenticates and stores the returned access token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	resp, err := api.Login(ctx, c, LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		c.tokens.Save(resp.AccessToken)
	}
	return resp, nil
}

// Logout ends the session. The local token is cleared even if the backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.tokens.Clear()
	return api.Logout(ctx, c)
}

// RefreshToken exchanges refreshToken for a new access token and stores it.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	resp, err := api.RefreshToken(ctx, c, refreshToken)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		c.tokens.Save(resp.AccessToken)
	}
	return resp, nil
}

// CurrentUser returns the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*UserInfo, error) {
	return api.CurrentUser(ctx, c)
}

// VerifyToken asks the backend whether the stored token is still valid.
func (c *Client) VerifyToken(ctx context.Context) (*Object, error) {
	return api.VerifyToken(ctx, c)
}

// AuthPermissions lists the permissions granted to the current user.
func (c *Client) AuthPermissions(ctx context.Context) (*Object, error) {
	return api.AuthPermissions(ctx, c)
}

// ChangePassword updates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*Message, error) {
	return api.ChangePassword(ctx, c, req)
}

// AuthAuditLog returns recent authentication events for the current user.
func (c *Client) AuthAuditLog(ctx context.Context) (*Object, error) {
	return api.AuthAuditLog(ctx, c)
}

// --------------------------------------------------------------------
// Dashboard and analytics
// --------------------------------------------------------------------

// GetDashboard returns the headline figures shown on the dashboard.
func (c *Client) GetDashboard(ctx context.Context) (*DashboardSummary, error) {
	return api.GetDashboard(ctx, c)
}

// GetSpendingTrend returns monthly spending totals, newest last.
func (c *Client) GetSpendingTrend(ctx context.Context, months int) (*Object, error) {
	return api.GetSpendingTrend(ctx, c, months)
}

// GetCategoryBreakdown splits spending by category for period ("week", "month", "year").
func (c *Client) GetCategoryBreakdown(ctx context.Context, period string) (*Object, error) {
	return api.GetCategoryBreakdown(ctx, c, period)
}

// GetDashboardInsights returns the short insights shown on the dashboard.
func (c *Client) GetDashboardInsights(ctx context.Context) (*Object, error) {
	return api.GetDashboardInsights(ctx, c)
}

// GetSpendingAnalytics returns detailed spending analytics for period.
func (c *Client) GetSpendingAnalytics(ctx context.Context, period string) (*Object, error) {
	return api.GetSpendingAnalytics(ctx, c, period)
}

// GetTrendAnalytics returns income and spending trends month by month.
func (c *Client) GetTrendAnalytics(ctx context.Context, months int) (*Object, error) {
	return api.GetTrendAnalytics(ctx, c, months)
}

// --------------------------------------------------------------------
// Transactions
// --------------------------------------------------------------------

// ListTransactions returns a filtered page of transactions.
func (c *Client) ListTransactions(ctx context.Context, f TransactionFilter) (*TransactionList, error) {
	return api.ListTransactions(ctx, c, f)
}

// RecentTransactions returns the latest limit transactions.
func (c *Client) RecentTransactions(ctx context.Context, limit int) (*TransactionList, error) {
	return api.RecentTransactions(ctx, c, limit)
}

// GetTransaction fetches one transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return api.GetTransaction(ctx, c, id)
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, in TransactionInput) (*Transaction, error) {
	return api.CreateTransaction(ctx, c, in)
}

// UpdateTransaction replaces the transaction with the given ID.
func (c *Client) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (*Transaction, error) {
	return api.UpdateTransaction(ctx, c, id, in)
}

// DeleteTransaction removes the transaction with the given ID.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return api.DeleteTransaction(ctx, c, id)
}

// --------------------------------------------------------------------
// Accounts, investments, assets and liabilities
// --------------------------------------------------------------------

// ListAccounts returns every account with its balance.
func (c *Client) ListAccounts(ctx context.Context) (*AccountList, error) {
	return api.ListAccounts(ctx, c)
}

// GetAccountBalance returns the balance of one account.
func (c *Client) GetAccountBalance(ctx context.Context, accountID string) (*Object, error) {
	return api.GetAccountBalance(ctx, c, accountID)
}

// GetNetWorth returns assets minus liabilities.
func (c *Client) GetNetWorth(ctx context.Context) (*Object, error) {
	return api.GetNetWorth(ctx, c)
}

// ListInvestments returns the investment portfolio.
func (c *Client) ListInvestments(ctx context.Context) (*InvestmentList, error) {
	return api.ListInvestments(ctx, c)
}

// GetInvestmentPerformance returns the performance history of one holding.
func (c *Client) GetInvestmentPerformance(ctx context.Context, investmentID string) (*Object, error) {
	return api.GetInvestmentPerformance(ctx, c, investmentID)
}

// ListAssets returns non-cash assets.
func (c *Client) ListAssets(ctx context.Context) (*Object, error) {
	return api.ListAssets(ctx, c)
}

// ListLiabilities returns outstanding debts.
func (c *Client) ListLiabilities(ctx context.Context) (*Object, error) {
	return api.ListLiabilities(ctx, c)
}

// --------------------------------------------------------------------
// Assistant
// --------------------------------------------------------------------

// SendChatMessage asks the financial assistant a question. chatContext may be nil.
func (c *Client) SendChatMessage(ctx context.Context, message string, chatContext map[string]any) (*ChatResponse, error) {
	return api.SendChatMessage(ctx, c, ChatRequest{Message: message, Context: chatContext})
}

// GetChatHistory returns up to limit previous assistant exchanges.
func (c *Client) GetChatHistory(ctx context.Context, limit int) (*ChatHistory, error) {
	return api.GetChatHistory(ctx, c, limit)
}

// ClearChatHistory deletes the assistant history.
func (c *Client) ClearChatHistory(ctx context.Context) error {
	return api.ClearChatHistory(ctx, c)
}

// GetInsights asks for AI insights over the permitted data categories.
func (c *Client) GetInsights(ctx context.Context, req InsightsRequest) (*Object, error) {
	return api.GetInsights(ctx, c, req)
}

// GenerateInsights asks the backend to produce fresh insights.
func (c *Client) GenerateInsights(ctx context.Context) (*Object, error) {
	return api.GenerateInsights(ctx, c)
}

// GetAIStatus reports whether the assistant backend is available.
func (c *Client) GetAIStatus(ctx context.Context) (*Object, error) {
	return api.GetAIStatus(ctx, c)
}

// GetDataSummary summarizes the data the assistant can see.
func (c *Client) GetDataSummary(ctx context.Context) (*Object, error) {
	return api.GetDataSummary(ctx, c)
}

// --------------------------------------------------------------------
// Privacy
// --------------------------------------------------------------------

// GetPrivacySettings returns the data categories the assistant may read.
func (c *Client) GetPrivacySettings(ctx context.Context) (*PrivacySettings, error) {
	return api.GetPrivacySettings(ctx, c)
}

// UpdatePrivacySettings replaces the data categories the assistant may read.
func (c *Client) UpdatePrivacySettings(ctx context.Context, p Permissions) (*Object, error) {
	return api.UpdatePrivacySettings(ctx, c, p)
}

// GetPrivacyCategories lists the data categories that can be toggled.
func (c *Client) GetPrivacyCategories(ctx context.Context) (*Object, error) {
	return api.GetPrivacyCategories(ctx, c)
}

// DeletePrivacyData purges the given categories. The backend requires Confirm.
func (c *Client) DeletePrivacyData(ctx context.Context, req PrivacyDeleteRequest) (*Object, error) {
	return api.DeletePrivacyData(ctx, c, req)
}

// GetPrivacyAudit returns the log of privacy-related changes.
func (c *Client) GetPrivacyAudit(ctx context.Context) (*Object, error) {
	return api.GetPrivacyAudit(ctx, c)
}

// --------------------------------------------------------------------
// Budgets and notifications
// --------------------------------------------------------------------

// ListBudgets returns all budgets with their spending.
func (c *Client) ListBudgets(ctx context.Context) (*BudgetList, error) {
	return api.ListBudgets(ctx, c)
}

// CreateBudget adds a budget.
func (c *Client) CreateBudget(ctx context.Context, in BudgetInput) (*Budget, error) {
	return api.CreateBudget(ctx, c, in)
}

// UpdateBudget replaces the budget with the given ID.
func (c *Client) UpdateBudget(ctx context.Context, id string, in BudgetInput) (*Budget, error) {
	return api.UpdateBudget(ctx, c, id, in)
}

// DeleteBudget removes the budget with the given ID.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return api.DeleteBudget(ctx, c, id)
}

// ListNotifications returns alerts; unreadOnly filters to unread ones.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) (*NotificationList, error) {
	return api.ListNotifications(ctx, c, unreadOnly)
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return api.MarkNotificationRead(ctx, c, id)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return api.MarkAllNotificationsRead(ctx, c)
}

// Health probes the backend without credentials.
func (c *Client) Health(ctx context.Context) (*Object, error) {
	return api.Health(ctx, c)
}
