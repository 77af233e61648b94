package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var subject, category string
	c := &cobra.Command{
		Use:   "check",
		Short: "Consume one unit of quota and print the remaining count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := getClient(cmd).Check(cmd.Context(), subject, category)
			if err != nil {
				return err
			}
			cmd.Printf("remaining: %d\n", d.Remaining)
			if d.Exhausted {
				cmd.Println("Quota is exhausted")
			}
			return nil
		},
	}
	subjectFlags(c, &subject, &category)
	return c
}

func newInspectCmd() *cobra.Command {
	var subject, category string
	c := &cobra.Command{
		Use:   "inspect",
		Short: "Show counter state without consuming quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cnt, err := getClient(cmd).Inspect(cmd.Context(), subject, category)
			if err != nil {
				return err
			}
			cmd.Printf("remaining: %d\nttl: %s\nactive: %t\n", cnt.Remaining, cnt.TTL, cnt.Active)
			return nil
		},
	}
	subjectFlags(c, &subject, &category)
	return c
}

func newResetCmd() *cobra.Command {
	var subject, category string
	c := &cobra.Command{
		Use:   "reset",
		Short: "Drop the counter so the next check starts a new window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getClient(cmd).Reset(cmd.Context(), subject, category); err != nil {
				return err
			}
			cmd.Println("Counter reset")
			return nil
		},
	}
	subjectFlags(c, &subject, &category)
	return c
}

func newFlushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Delete every counter under the service prefix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := getClient(cmd).Flush(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("deleted: %d\n", n)
			return nil
		},
	}
}

func newExpiryCmd() *cobra.Command {
	var category string
	c := &cobra.Command{
		Use:   "expiry",
		Short: "Print the window length of a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := getClient(cmd).Expiry(cmd.Context(), category)
			if err != nil {
				return err
			}
			cmd.Printf("%s (%d seconds)\n", d, int64(d.Seconds()))
			return nil
		},
	}
	c.Flags().StringVar(&category, "category", "", "Quota category")
	_ = c.MarkFlagRequired("category")
	return c
}
