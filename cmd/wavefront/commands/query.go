package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	var (
		window        time.Duration
		granularity   string
		maxPoints     int
		summarization string
	)

	cmd := &cobra.Command{
		Use:   "query EXPRESSION",
		Short: "Run a chart query",
		Long:  "Evaluate a ts() or hs() expression over a time window ending now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := args[0]
			if expression == "" {
				return ErrQueryRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			now := time.Now()

			result, err := client.Query().Run(cmd.Context(), &wavefront.QueryOptions{
				Query:         expression,
				Start:         now.Add(-window),
				End:           now,
				Granularity:   granularity,
				MaxPoints:     maxPoints,
				Summarization: summarization,
			})
			if err != nil {
				return fmt.Errorf("running query: %w", err)
			}

			return renderOutput(result, func() error {
				if len(result.Timeseries) == 0 {
					_, _ = os.Stdout.WriteString("No data\n")

					return nil
				}

				if result.Warnings != "" {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warnings)
				}

				table := newTable("Label", "Host", "Points", "Last Value")
				for _, series := range result.Timeseries {
					last := NotAvailable
					if len(series.Data) > 0 {
						last = fmt.Sprintf("%g", series.Data[len(series.Data)-1][1])
					}

					_ = table.Append(series.Label, series.Host, fmt.Sprintf("%d", len(series.Data)), last)
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().DurationVar(&window, "window", 10*time.Minute, "query window ending now")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "m", "point granularity (d, h, m, s)")
	cmd.Flags().IntVar(&maxPoints, "max-points", 0, "maximum points per series")
	cmd.Flags().StringVar(&summarization, "summarization", "", "bucket aggregation (MEAN, MEDIAN, MIN, MAX, SUM, COUNT, LAST, FIRST)")

	return cmd
}
