package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nurpe/nomina-settlement/internal/model"
)

func newHolidaysCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage the holiday table (requires DB_DSN)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored holidays",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				repo, err := a.holidays()
				if err != nil {
					return err
				}
				holidays, err := repo.ListHolidays(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, h := range holidays {
					fmt.Fprintf(w, "%s\t%s\n", h.Date.Format("2006-01-02"), h.Name)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "add DATE [NAME...]",
			Short: "Add or rename a holiday",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				date, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q", args[0])
				}
				repo, err := a.holidays()
				if err != nil {
					return err
				}
				name := strings.Join(args[1:], " ")
				if err := repo.UpsertHoliday(cmd.Context(), model.Holiday{Date: date, Name: name}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove DATE",
			Short: "Delete a holiday",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				date, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q", args[0])
				}
				repo, err := a.holidays()
				if err != nil {
					return err
				}
				removed, err := repo.DeleteHoliday(cmd.Context(), date)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("%s is not in the holiday table", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
