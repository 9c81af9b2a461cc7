package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mintellifunds/mintellifunds/client/internal/request"
	"github.com/mintellifunds/mintellifunds/client/internal/types"
)

func TestPaths(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cases := []struct {
		name   string
		call   func(Doer) error
		path   string
		method string
	}{
		{"dashboard", func(d Doer) error { _, err := GetDashboard(ctx, d); return err }, "/api/dashboard", ""},
		{"spending trend", func(d Doer) error { _, err := GetSpendingTrend(ctx, d, 6); return err }, "/api/spending-trend?months=6", ""},
		{"spending trend default", func(d Doer) error { _, err := GetSpendingTrend(ctx, d, 0); return err }, "/api/spending-trend", ""},
		{"category breakdown", func(d Doer) error { _, err := GetCategoryBreakdown(ctx, d, "month"); return err }, "/api/category-breakdown?period=month", ""},
		{"dashboard insights", func(d Doer) error { _, err := GetDashboardInsights(ctx, d); return err }, "/api/insights/dashboard", ""},
		{"recent", func(d Doer) error { _, err := RecentTransactions(ctx, d, 5); return err }, "/api/transactions/recent?limit=5", ""},
		{"get txn", func(d Doer) error { _, err := GetTransaction(ctx, d, "txn 1/2"); return err }, "/api/transactions/txn%201%2F2", ""},
		{"delete txn", func(d Doer) error { return DeleteTransaction(ctx, d, "txn_1") }, "/api/transactions/txn_1", http.MethodDelete},
		{"accounts", func(d Doer) error { _, err := ListAccounts(ctx, d); return err }, "/api/accounts", ""},
		{"balance", func(d Doer) error { _, err := GetAccountBalance(ctx, d, "acc_001"); return err }, "/api/accounts/acc_001/balance", ""},
		{"net worth", func(d Doer) error { _, err := GetNetWorth(ctx, d); return err }, "/api/net-worth", ""},
		{"investments", func(d Doer) error { _, err := ListInvestments(ctx, d); return err }, "/api/investments", ""},
		{"performance", func(d Doer) error { _, err := GetInvestmentPerformance(ctx, d, "inv_001"); return err }, "/api/investments/inv_001/performance", ""},
		{"assets", func(d Doer) error { _, err := ListAssets(ctx, d); return err }, "/api/assets", ""},
		{"liabilities", func(d Doer) error { _, err := ListLiabilities(ctx, d); return err }, "/api/liabilities", ""},
		{"chat history", func(d Doer) error { _, err := GetChatHistory(ctx, d, 20); return err }, "/api/chat/history?limit=20", ""},
		{"clear chat", func(d Doer) error { return ClearChatHistory(ctx, d) }, "/api/chat/history", http.MethodDelete},
		{"privacy settings", func(d Doer) error { _, err := GetPrivacySettings(ctx, d); return err }, "/api/privacy/settings", ""},
		{"privacy categories", func(d Doer) error { _, err := GetPrivacyCategories(ctx, d); return err }, "/api/privacy/categories", ""},
		{"privacy audit", func(d Doer) error { _, err := GetPrivacyAudit(ctx, d); return err }, "/api/privacy/audit", ""},
		{"generate insights", func(d Doer) error { _, err := GenerateInsights(ctx, d); return err }, "/api/insights/generate", http.MethodPost},
		{"ai status", func(d Doer) error { _, err := GetAIStatus(ctx, d); return err }, "/api/ai/status", ""},
		{"data summary", func(d Doer) error { _, err := GetDataSummary(ctx, d); return err }, "/api/data/summary", ""},
		{"health", func(d Doer) error { _, err := Health(ctx, d); return err }, "/api/health", ""},
		{"spending analytics", func(d Doer) error { _, err := GetSpendingAnalytics(ctx, d, "quarter"); return err }, "/api/analytics/spending?period=quarter", ""},
		{"trend analytics", func(d Doer) error { _, err := GetTrendAnalytics(ctx, d, 12); return err }, "/api/analytics/trends?months=12", ""},
		{"budgets", func(d Doer) error { _, err := ListBudgets(ctx, d); return err }, "/api/budgets", ""},
		{"delete budget", func(d Doer) error { return DeleteBudget(ctx, d, "b1") }, "/api/budgets/b1", http.MethodDelete},
		{"notifications", func(d Doer) error { _, err := ListNotifications(ctx, d, false); return err }, "/api/notifications", ""},
		{"unread notifications", func(d Doer) error { _, err := ListNotifications(ctx, d, true); return err }, "/api/notifications?unread_only=true", ""},
		{"mark read", func(d Doer) error { return MarkNotificationRead(ctx, d, "n1") }, "/api/notifications/n1/read", http.MethodPut},
		{"mark all read", func(d Doer) error { return MarkAllNotificationsRead(ctx, d) }, "/api/notifications/read-all", http.MethodPut},
		{"me", func(d Doer) error { _, err := CurrentUser(ctx, d); return err }, "/api/auth/me", ""},
		{"verify", func(d Doer) error { _, err := VerifyToken(ctx, d); return err }, "/api/auth/verify", ""},
		{"permissions", func(d Doer) error { _, err := AuthPermissions(ctx, d); return err }, "/api/auth/permissions", ""},
		{"audit log", func(d Doer) error { _, err := AuthAuditLog(ctx, d); return err }, "/api/auth/audit-log", ""},
		{"logout", func(d Doer) error { return Logout(ctx, d) }, "/api/auth/logout", http.MethodPost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDoer(`{}`)
			if err := tc.call(d); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.path != tc.path {
				t.Fatalf("path: got %q want %q", d.path, tc.path)
			}
			if d.opts.Method != tc.method {
				t.Fatalf("method: got %q want %q", d.opts.Method, tc.method)
			}
		})
	}
}

func TestListTransactions_Query(t *testing.T) {
	t.Parallel()
	d := newDoer(`{"transactions":[{"id":"txn_001","amount":-150.5,"category":"Food & Dining"}],"pagination":{"limit":10,"total":1}}`)
	got, err := ListTransactions(context.Background(), d, types.TransactionFilter{
		Limit:     10,
		Category:  "Food & Dining",
		StartDate: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	want := "/api/transactions?category=Food+%26+Dining&limit=10&start_date=2024-01-01"
	if d.path != want {
		t.Fatalf("path: got %q want %q", d.path, want)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].Amount != -150.5 || got.Pagination.Total != 1 {
		t.Fatalf("unexpected decode: %+v", got)
	}
}

func TestCreateTransaction_Body(t *testing.T) {
	t.Parallel()
	d := newDoer(`{"id":"txn_new","amount":42}`)
	in := types.TransactionInput{Date: "2024-02-01", Amount: 42, Description: "Refund", Category: "Shopping", Type: "income"}
	got, err := CreateTransaction(context.Background(), d, in)
	if err != nil || got.ID != "txn_new" {
		t.Fatalf("CreateTransaction unexpected: got=%+v err=%v", got, err)
	}
	if d.opts.Method != http.MethodPost || d.opts.Data != in {
		t.Fatalf("unexpected options: %+v", d.opts)
	}
}

func TestUpdateTransaction_Body(t *testing.T) {
	t.Parallel()
	d := newDoer(`{"id":"txn_1"}`)
	in := types.TransactionInput{Amount: -10}
	if _, err := UpdateTransaction(context.Background(), d, "txn_1", in); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	if d.path != "/api/transactions/txn_1" || d.opts.Method != http.MethodPut {
		t.Fatalf("unexpected call: %s %+v", d.path, d.opts)
	}
}

func TestLogin_NotRetried(t *testing.T) {
	t.Parallel()
	d := newDoer(`{"access_token":"jwt","token_type":"bearer","user_info":{"user_id":"u1","username":"demo"}}`)
	got, err := Login(context.Background(), d, types.LoginRequest{Username: "demo", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.AccessToken != "jwt" || got.UserInfo.Username != "demo" {
		t.Fatalf("unexpected login response: %+v", got)
	}
	if d.path != "/api/auth/login" || d.opts.Method != http.MethodPost || d.opts.Retries != request.NoRetry {
		t.Fatalf("unexpected call: %s %+v", d.path, d.opts)
	}
}

func TestSendChatMessage(t *testing.T) {
	t.Parallel()
	d := newDoer(`{"response":"You spent $420 on dining.","intent":"spending_analysis"}`)
	got, err := SendChatMessage(context.Background(), d, types.ChatRequest{Message: "dining?"})
	if err != nil {
		t.Fatalf("SendChatMessage: %v", err)
	}
	if got.Intent != "spending_analysis" || d.opts.Timeout != chatTimeout {
		t.Fatalf("unexpected: %+v %+v", got, d.opts)
	}
}

func TestBudgetsAndPrivacyWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := newDoer(`{"id":"b1","category":"Food","limit":500}`)
	b, err := CreateBudget(ctx, d, types.BudgetInput{Category: "Food", Limit: 500, Period: "monthly"})
	if err != nil || b.Limit != 500 || d.opts.Method != http.MethodPost {
		t.Fatalf("CreateBudget unexpected: %+v %v %+v", b, err, d.opts)
	}
	if _, err := UpdateBudget(ctx, d, "b1", types.BudgetInput{Limit: 600}); err != nil || d.path != "/api/budgets/b1" || d.opts.Method != http.MethodPut {
		t.Fatalf("UpdateBudget unexpected: %v %s %+v", err, d.path, d.opts)
	}

	d = newDoer(`{"status":"ok"}`)
	if _, err := UpdatePrivacySettings(ctx, d, types.Permissions{Transactions: true}); err != nil || d.opts.Method != http.MethodPut {
		t.Fatalf("UpdatePrivacySettings unexpected: %v %+v", err, d.opts)
	}
	if _, err := DeletePrivacyData(ctx, d, types.PrivacyDeleteRequest{Categories: []string{"transactions"}, Confirm: true}); err != nil ||
		d.path != "/api/privacy/delete" || d.opts.Retries != request.NoRetry {
		t.Fatalf("DeletePrivacyData unexpected: %v %s %+v", err, d.path, d.opts)
	}
	if _, err := GetInsights(ctx, d, types.InsightsRequest{Prompt: "save more"}); err != nil || d.path != "/api/insights" {
		t.Fatalf("GetInsights unexpected: %v %s", err, d.path)
	}
	if _, err := ChangePassword(ctx, d, types.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"}); err != nil ||
		d.path != "/api/auth/change-password" {
		t.Fatalf("ChangePassword unexpected: %v %s", err, d.path)
	}
	if _, err := RefreshToken(ctx, d, "r"); err != nil || d.path != "/api/auth/refresh" {
		t.Fatalf("RefreshToken unexpected: %v %s", err, d.path)
	}
}

func TestErrorsPropagate(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	d := &recordingDoer{err: boom}
	if _, err := GetDashboard(context.Background(), d); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := DeleteBudget(context.Background(), d, "b1"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
