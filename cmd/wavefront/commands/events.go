package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage events",
		Long:  "List, create and close Wavefront events",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())
	cmd.AddCommand(newEventsCreateCommand())
	cmd.AddCommand(newEventsCloseCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		since    time.Duration
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events that started within the given time window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if since <= 0 {
				return fmt.Errorf("%w: --since must be positive", ErrInvalidTimeRange)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			now := time.Now()

			events, err := client.Events().List(cmd.Context(), &wavefront.EventListOptions{
				Earliest: now.Add(-since),
				Latest:   now,
				Limit:    limit,
				All:      allPages,
			})
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			return renderOutput(events, func() error {
				if len(events) == 0 {
					_, _ = os.Stdout.WriteString("No events found\n")

					return nil
				}

				table := newTable("ID", "Name", "Start", "End", "Running State")
				for _, event := range events {
					_ = table.Append(event.ID, event.Name,
						epochMillisString(event.StartTime),
						epochMillisString(event.EndTime),
						event.RunningState)
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().DurationVar(&since, "since", 2*time.Hour, "how far back to look for events")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting event: %w", err)
			}

			return renderOutput(event, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", event.ID)
				_ = table.Append("Name", event.Name)
				_ = table.Append("Start", epochMillisString(event.StartTime))
				_ = table.Append("End", epochMillisString(event.EndTime))
				_ = table.Append("Running State", event.RunningState)
				_ = table.Append("Ephemeral", boolString(event.IsEphemeral))

				for key, value := range event.Annotations {
					_ = table.Append("Annotation: "+key, value)
				}

				return renderTable(table)
			})
		},
	}
}

func newEventsCreateCommand() *cobra.Command {
	var (
		name          string
		severity      string
		eventType     string
		details       string
		hosts         []string
		tags          []string
		instantaneous bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Long:  "Create an event starting now. Without --instant the event stays open until closed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrEventNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			annotations := map[string]string{}
			if severity != "" {
				annotations["severity"] = severity
			}

			if eventType != "" {
				annotations["type"] = eventType
			}

			if details != "" {
				annotations["details"] = details
			}

			event := &wavefront.Event{
				Name:        name,
				StartTime:   time.Now().UnixMilli(),
				Annotations: annotations,
				Hosts:       hosts,
				Tags:        tags,
			}

			if instantaneous {
				event.EndTime = event.StartTime + 1
			}

			created, err := client.Events().Create(cmd.Context(), event)
			if err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created event '%s' with ID %s\n", created.Name, created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "event name (required)")
	cmd.Flags().StringVar(&severity, "severity", "", "severity annotation (info, smoke, warn, severe)")
	cmd.Flags().StringVar(&eventType, "type", "", "type annotation (e.g. deploy, maintenance)")
	cmd.Flags().StringVar(&details, "details", "", "details annotation")
	cmd.Flags().StringSliceVar(&hosts, "host", nil, "host affected by the event (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "event tag (repeatable)")
	cmd.Flags().BoolVar(&instantaneous, "instant", false, "create an instantaneous event instead of an open one")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEventsCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close EVENT_ID",
		Short: "Close an open event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Close(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("closing event: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Closed event '%s'\n", event.Name)

			return nil
		},
	}
}
