package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wolfeidau/node-quotas/internal/quotaclient"
)

type ctxKey string

const clientKey ctxKey = "quotaclient"

// quotaAPI - то, что команды используют от quotaclient.Client.
type quotaAPI interface {
	Check(ctx context.Context, subject, category string) (quotaclient.Decision, error)
	Inspect(ctx context.Context, subject, category string) (quotaclient.Counter, error)
	Reset(ctx context.Context, subject, category string) error
	Flush(ctx context.Context) (int64, error)
	Expiry(ctx context.Context, category string) (time.Duration, error)
	ListCategories(ctx context.Context) ([]quotaclient.Category, error)
	SetCategory(ctx context.Context, name string, limit int64, expires time.Duration) error
	DeleteCategory(ctx context.Context, name string) error
	Close() error
}

var _ quotaAPI = (*quotaclient.Client)(nil)

var addr string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quotactl",
		Short: "Quotas admin CLI",
		Example: `	quotactl --addr 127.0.0.1:50051 check --subject 1234 --category emails
	quotactl --addr 127.0.0.1:50051 category set --name sms --limit 20 --expires 1h
	quotactl --addr 127.0.0.1:50051 flush`,
		SilenceUsage: true,
		// Создаём клиента и кладём его в context перед выполнением любой команды
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := quotaclient.New(addr)
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), clientKey, quotaAPI(c)))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if c := getClient(cmd); c != nil {
				return c.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(
		&addr,
		"addr",
		getenv("QUOTAS_ADDR", "127.0.0.1:50051"),
		"gRPC address (or QUOTAS_ADDR)",
	)

	root.AddCommand(
		newCheckCmd(),
		newInspectCmd(),
		newResetCmd(),
		newFlushCmd(),
		newExpiryCmd(),
		newCategoryCmd(),
		newVersionCmd(),
	)
	return root
}

func getClient(cmd *cobra.Command) quotaAPI {
	c, _ := cmd.Context().Value(clientKey).(quotaAPI)
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// subjectFlags - общие флаги для команд над одним счётчиком.
func subjectFlags(c *cobra.Command, subject, category *string) {
	c.Flags().StringVar(subject, "subject", "", "Subject (user or account id)")
	_ = c.MarkFlagRequired("subject")
	c.Flags().StringVar(category, "category", "", "Quota category")
	_ = c.MarkFlagRequired("category")
}
