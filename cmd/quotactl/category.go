package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage quota categories",
	}
	cmd.AddCommand(
		newCategoryListCmd(),
		newCategorySetCmd(),
		newCategoryDeleteCmd(),
	)
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effective categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := getClient(cmd).ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLIMIT\tEXPIRES\tMANAGED")
			for _, c := range cats {
				fmt.Fprintf(w, "%s\t%d\t%s\t%t\n", c.Name, c.Limit, c.Expires, c.Managed)
			}
			return w.Flush()
		},
	}
}

func newCategorySetCmd() *cobra.Command {
	var (
		name    string
		limit   int64
		expires time.Duration
	)
	c := &cobra.Command{
		Use:   "set",
		Short: "Create or update a category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getClient(cmd).SetCategory(cmd.Context(), name, limit, expires); err != nil {
				return err
			}
			cmd.Printf("Category %s saved\n", name)
			return nil
		},
	}
	c.Flags().StringVar(&name, "name", "", "Category name")
	_ = c.MarkFlagRequired("name")
	c.Flags().Int64Var(&limit, "limit", 0, "Units per window")
	_ = c.MarkFlagRequired("limit")
	c.Flags().DurationVar(&expires, "expires", 0, "Window length, 0 - service default")
	return c
}

func newCategoryDeleteCmd() *cobra.Command {
	var name string
	c := &cobra.Command{
		Use:   "delete",
		Short: "Delete a managed category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getClient(cmd).DeleteCategory(cmd.Context(), name); err != nil {
				return err
			}
			cmd.Printf("Category %s deleted\n", name)
			return nil
		},
	}
	c.Flags().StringVar(&name, "name", "", "Category name")
	_ = c.MarkFlagRequired("name")
	return c
}
