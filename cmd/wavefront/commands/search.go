package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wavefront-tools/wavefront-go/pkg/wavefront"
)

// NewSearchCommand creates the search command. Search results are dynamic
// documents, so output is always JSON or YAML.
func NewSearchCommand() *cobra.Command {
	var (
		key      string
		value    string
		matching string
		limit    int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "search ENTITY",
		Short: "Search an entity type",
		Long: `Search Wavefront entities (alert, event, source, dashboard, ...) with a
single key/value condition. Search endpoints paginate through the request
body, so multi-page fetches rewrite the body offset between pages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			body := wavefront.NewStructuredBody(nil)
			if key != "" {
				body.Set("query", []wavefront.SearchCondition{{
					Key:            key,
					Value:          value,
					MatchingMethod: matching,
				}})
			}

			pageLimit := wavefront.LimitN(limit)
			if allPages {
				pageLimit = wavefront.LimitAll()
			}

			results, err := client.Search().Search(cmd.Context(), entity, body, pageLimit)
			if err != nil {
				return fmt.Errorf("searching %s: %w", entity, err)
			}

			if len(results) == 0 {
				_, _ = os.Stdout.WriteString("No results\n")

				return nil
			}

			documents := make([]interface{}, 0, len(results))
			for _, result := range results {
				documents = append(documents, result.Interface())
			}

			return renderStructured(documents, OutputFormatJSON)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "condition key (e.g. name, tags)")
	cmd.Flags().StringVar(&value, "value", "", "condition value")
	cmd.Flags().StringVar(&matching, "matching", "CONTAINS", "matching method (CONTAINS, EXACT, STARTSWITH, TAGPATH)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}
