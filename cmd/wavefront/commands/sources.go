package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// NewSourcesCommand creates the sources command group.
func NewSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage sources",
		Long:  "List and inspect the sources (hosts) reporting to Wavefront",
	}

	cmd.AddCommand(newSourcesListCommand())
	cmd.AddCommand(newSourcesGetCommand())

	return cmd
}

func newSourcesListCommand() *cobra.Command {
	var (
		cursor   string
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			sources, err := client.Sources().List(cmd.Context(), &wavefront.CursorListOptions{
				Cursor: cursor,
				Limit:  limit,
				All:    allPages,
			})
			if err != nil {
				return fmt.Errorf("listing sources: %w", err)
			}

			return renderOutput(sources, func() error {
				if len(sources) == 0 {
					_, _ = os.Stdout.WriteString("No sources found\n")

					return nil
				}

				table := newTable("ID", "Description", "Hidden", "Tags")
				for _, source := range sources {
					_ = table.Append(source.ID, source.Description, boolString(source.Hidden), sourceTags(source))
				}

				return renderTable(table)
			})
		},
	}

	cmd.Flags().StringVar(&cursor, "cursor", "", "source id to start listing from")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of sources to fetch")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func sourceTags(source wavefront.Source) string {
	tags := make([]string, 0, len(source.Tags))

	for tag, set := range source.Tags {
		if set {
			tags = append(tags, tag)
		}
	}

	sort.Strings(tags)

	return strings.Join(tags, ",")
}

func newSourcesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SOURCE_ID",
		Short: "Show one source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			source, err := client.Sources().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting source: %w", err)
			}

			return renderOutput(source, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("ID", source.ID)
				_ = table.Append("Description", source.Description)
				_ = table.Append("Hidden", boolString(source.Hidden))
				_ = table.Append("Tags", sourceTags(*source))
				_ = table.Append("Created", epochMillisString(source.CreatedEpochMillis))

				return renderTable(table)
			})
		},
	}
}
