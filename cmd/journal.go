package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appointmentsService "github.com/m04kA/SMC-DoctorBooking/internal/service/appointments"
)

var errJournalDisabled = errors.New("booking journal is disabled in config")

func journalCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect or prune the booking attempts journal",
	}

	var (
		doctorID string
		limit    uint64
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent booking attempts for a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			svc := appointmentsService.NewService(a.clinic, a.attemptsJournal(), a.log)
			result, err := svc.ListAttempts(cmd.Context(), doctorID, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, at := range result.Attempts {
				fmt.Fprintf(out, "%s  %-18s %s %s  %s\n",
					at.CreatedAt.Format(time.RFC3339), at.Outcome, at.SlotDate, at.SlotTime, at.Message)
			}
			fmt.Fprintf(out, "total: %d\n", result.Total)
			return nil
		},
	}
	listCmd.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID")
	listCmd.Flags().Uint64Var(&limit, "limit", 0, "Max attempts to print (default 50)")
	_ = listCmd.MarkFlagRequired("doctor")

	var olderThan time.Duration
	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete attempts older than the given age",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return errors.New("--older-than must be positive")
			}

			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			if a.journal == nil {
				return errJournalDisabled
			}

			deleted, err := a.journal.DeleteOlderThan(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}

			a.log.Info("Journal pruned: deleted=%d older_than=%s", deleted, olderThan)
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d attempts\n", deleted)
			return nil
		},
	}
	pruneCmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Age threshold, e.g. 720h")

	cmd.AddCommand(listCmd, pruneCmd)
	return cmd
}
