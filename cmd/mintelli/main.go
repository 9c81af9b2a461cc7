package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mintellifunds/mintellifunds/client"
	"github.com/mintellifunds/mintellifunds/client/internal/config"
)

var (
	cfg        *config.Config
	baseURL    string
	debug      bool
	devMode    bool
	tokenStore string
)

const commandTimeout = 60 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mintelli",
		Short:         "Command line access to the MintelliFunds dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger()

			loaded, err := config.New()
			if err != nil {
				return err
			}
			cfg = loaded

			flags := cmd.Flags()
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("dev-mode") {
				cfg.DevMode = devMode
			}
			if flags.Changed("token-store") {
				cfg.TokenStoreURL = tokenStore
			}

			if debug {
				cfg.Debug = true
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(config.ParseLogLevel(cfg.LogLevel))
			}
			return cfg.Validate()
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend origin (default $MINTELLI_BASE_URL or http://localhost:8000)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output including HTTP dumps")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev-mode", false, "Serve mock data when the backend is unreachable")
	rootCmd.PersistentFlags().StringVar(&tokenStore, "token-store", "", "afs URL where the auth token is kept (default: user config dir)")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newTransactionsCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newPrivacyCmd())
	rootCmd.AddCommand(newBudgetsCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newGetCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	return client.NewFromConfig(cfg, client.WithUnauthorizedHandler(func() {
		log.Warn().Msg("session expired, run `mintelli login` again")
	}))
}

// run builds a client, runs fn under the command timeout and prints its result.
func run(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	start := time.Now()
	out, err := fn(ctx, c)
	log.Debug().Str("command", cmd.Name()).Dur("elapsed", time.Since(start)).Err(err).Msg("command finished")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				resp, err := c.Login(ctx, username, password)
				if err != nil {
					return nil, err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.UserInfo.Username)
				return nil, nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				if err := c.Logout(ctx); err != nil {
					// token is gone locally either way
					log.Warn().Err(err).Msg("backend logout failed")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil, nil
			})
		},
	}
}

// tokenStatus is printed by the status command.
type tokenStatus struct {
	BaseURL       string     `json:"base_url"`
	DevMode       bool       `json:"dev_mode"`
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Expired       bool       `json:"expired,omitempty"`
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the configured backend and the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return describeToken(c.BaseURL(), c.DevMode(), c.AuthToken(), time.Now()), nil
			})
		},
	}
}

// describeToken reads the claims of token without verifying its signature;
// the result is for display only.
func describeToken(base string, dev bool, token string, now time.Time) tokenStatus {
	st := tokenStatus{BaseURL: base, DevMode: dev, Authenticated: token != ""}
	if token == "" {
		return st
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Debug().Err(err).Msg("stored token is not a JWT")
		return st
	}
	if sub, err := claims.GetSubject(); err == nil {
		st.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time.UTC()
		st.ExpiresAt = &t
		st.Expired = now.After(t)
	}
	return st
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetDashboard(ctx)
			})
		},
	}
}

func newTransactionsCmd() *cobra.Command {
	var f client.TransactionFilter

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListTransactions(ctx, f)
			})
		},
	}

	cmd.Flags().IntVar(&f.Limit, "limit", 20, "Maximum number of transactions")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "Number of transactions to skip")
	cmd.Flags().StringVar(&f.Category, "category", "", "Only this category")
	cmd.Flags().StringVar(&f.StartDate, "start-date", "", "YYYY-MM-DD")
	cmd.Flags().StringVar(&f.EndDate, "end-date", "", "YYYY-MM-DD")
	return cmd
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the financial assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.SendChatMessage(ctx, strings.Join(args, " "), nil)
			})
		},
	}
}

func newPrivacyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "privacy",
		Short: "Show which data categories the assistant may read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetPrivacySettings(ctx)
			})
		},
	}
}

func newBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListBudgets(ctx)
			})
		},
	}
}

func newNotificationsCmd() *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListNotifications(ctx, unreadOnly)
			})
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread notifications")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "GET an arbitrary backend path, e.g. /api/net-worth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			return run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				res, err := c.Do(ctx, path, client.RequestOptions{})
				if err != nil {
					return nil, err
				}
				return res.Value, nil
			})
		},
	}
}
