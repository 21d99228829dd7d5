package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// NewAlertsCommand creates the alerts command group.
func NewAlertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage alerts",
		Long:  "List, inspect, snooze and delete Wavefront alerts",
	}

	cmd.AddCommand(newAlertsListCommand())
	cmd.AddCommand(newAlertsGetCommand())
	cmd.AddCommand(newAlertsSnoozeCommand())
	cmd.AddCommand(newAlertsUnsnoozeCommand())
	cmd.AddCommand(newAlertsDeleteCommand())
	cmd.AddCommand(newAlertsSummaryCommand())

	return cmd
}

func newAlertsListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alerts, err := client.Alerts().List(cmd.Context(), &wavefront.ListOptions{
				Offset: offset,
				Limit:  limit,
				All:    allPages,
			})
			if err != nil {
				return fmt.Errorf("listing alerts: %w", err)
			}

			return renderOutput(alerts, func() error {
				if len(alerts) == 0 {
					_, _ = os.Stdout.WriteString("No alerts found\n")

					return nil
				}

				table := newTable("ID", "Name", "Severity", "Status", "Snoozed")
				for _, alert := range alerts {
					_ = table.Append(alert.ID, alert.Name, alert.Severity, alertStatus(alert), epochMillisString(alert.SnoozedUntil))
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of alerts to fetch")
	cmd.Flags().IntVar(&offset, "offset", 0, "offset to start listing from")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func alertStatus(alert wavefront.Alert) string {
	if len(alert.Status) == 0 {
		return NotAvailable
	}

	status := alert.Status[0]
	for _, s := range alert.Status[1:] {
		status += "," + s
	}

	return status
}

func newAlertsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ALERT_ID",
		Short: "Show one alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alert, err := client.Alerts().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting alert: %w", err)
			}

			return renderOutput(alert, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", alert.ID)
				_ = table.Append("Name", alert.Name)
				_ = table.Append("Condition", alert.Condition)
				_ = table.Append("Severity", alert.Severity)
				_ = table.Append("Minutes", fmt.Sprintf("%d", alert.Minutes))
				_ = table.Append("Status", alertStatus(*alert))
				_ = table.Append("Created", epochMillisString(alert.CreatedEpochMillis))
				_ = table.Append("Updated", epochMillisString(alert.UpdatedEpochMillis))

				return renderTable(table)
			})
		},
	}
}

func newAlertsSnoozeCommand() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "snooze ALERT_ID",
		Short: "Snooze an alert",
		Long:  "Snooze an alert for a duration, or indefinitely when no duration is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alert, err := client.Alerts().Snooze(cmd.Context(), args[0], duration)
			if err != nil {
				return fmt.Errorf("snoozing alert: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Snoozed alert '%s'\n", alert.Name)

			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 0, "snooze duration (e.g. 30m, 2h); 0 snoozes indefinitely")

	return cmd
}

func newAlertsUnsnoozeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unsnooze ALERT_ID",
		Short: "Unsnooze an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alert, err := client.Alerts().Unsnooze(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("unsnoozing alert: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unsnoozed alert '%s'\n", alert.Name)

			return nil
		},
	}
}

func newAlertsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ALERT_ID",
		Short: "Delete an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alertID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete alert '%s'? (y/N): ", alertID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Alerts().Delete(cmd.Context(), alertID)
			if err != nil {
				return fmt.Errorf("deleting alert: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted alert '%s'\n", alertID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newAlertsSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show alert counts by state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			summary, err := client.Alerts().Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting alert summary: %w", err)
			}

			return renderOutput(summary, func() error {
				table := newTable("State", "Count")
				for state, count := range summary {
					_ = table.Append(state, fmt.Sprintf("%d", count))
				}

				return renderTable(table)
			})
		},
	}
}
