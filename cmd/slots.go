package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-DoctorBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/selection"
	createBookingUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

const envToken = "CLINIC_TOKEN"

func slotsCmd(configPath *string) *cobra.Command {
	var doctorID string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the free week of a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			resp, err := getAvailableSlotsUC.NewUseCase(a.clinic, a.policy, a.log).Execute(cmd.Context(), &getAvailableSlotsUC.Request{
				DoctorID: doctorID,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s), fees %.2f\n", resp.DoctorName, resp.Speciality, resp.Fees)
			if !resp.Available {
				fmt.Fprintln(out, "doctor is not accepting appointments")
			}
			printDays(out, resp.Days)
			return nil
		},
	}

	cmd.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID")
	_ = cmd.MarkFlagRequired("doctor")
	return cmd
}

func bookCmd(configPath *string) *cobra.Command {
	var (
		doctorID string
		day      int
		label    string
		token    string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Select a day and time and book it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv(envToken)
			}

			a, err := newApp(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			slots, err := getAvailableSlotsUC.NewUseCase(a.clinic, a.policy, a.log).Execute(ctx, &getAvailableSlotsUC.Request{
				DoctorID: doctorID,
			})
			if err != nil {
				return err
			}

			sel := selection.New(doctorID, slots.Days)
			if err := sel.SelectDay(day); err != nil {
				printDays(out, sel.Days())
				return err
			}
			if label != "" {
				parsed, err := types.ParseTimeLabel(label)
				if err != nil {
					return err
				}
				if err := sel.SelectTime(parsed); err != nil {
					printDays(out, sel.Days())
					return err
				}
			}

			choice, err := sel.Choice()
			if err != nil {
				return err
			}

			booking := createBookingUC.NewUseCase(a.clinic, a.bookingJournal(), nil, a.policy, a.log)
			resp, err := booking.Execute(ctx, &createBookingUC.Request{
				Session:  middleware.NewSession(token),
				DoctorID: doctorID,
				DateKey:  choice.DateKey,
				Time:     choice.Time,
			})

			var conflict *createBookingUC.ConflictError
			if errors.As(err, &conflict) {
				sel.Refresh(conflict.Days)
				fmt.Fprintf(out, "slot %s on %s was taken, current availability:\n", conflict.Time, conflict.DateKey)
				printDays(out, sel.Days())
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "booked %s on %s: %s\n", resp.Time, resp.DateKey, resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID")
	cmd.Flags().IntVar(&day, "day", 0, "Index of the day in the free week")
	cmd.Flags().StringVar(&label, "time", "", `Time label, e.g. "2:30 PM"`)
	cmd.Flags().StringVar(&token, "token", "", "Session token (defaults to $"+envToken+")")
	_ = cmd.MarkFlagRequired("doctor")
	return cmd
}

func printDays(out io.Writer, days []domain.Day) {
	if len(days) == 0 {
		fmt.Fprintln(out, "no free slots")
		return
	}

	for i, d := range days {
		labels := make([]string, 0, len(d.Slots))
		for _, s := range d.Slots {
			labels = append(labels, s.Time.String())
		}
		fmt.Fprintf(out, "[%d] %s %s: %s\n", i, d.Date.Format("Mon"), d.DateKey, strings.Join(labels, ", "))
	}
}
