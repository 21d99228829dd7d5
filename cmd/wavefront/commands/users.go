package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
		Long:  "List and inspect Wavefront user accounts",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			return renderOutput(users, func() error {
				if len(users) == 0 {
					_, _ = os.Stdout.WriteString("No users found\n")

					return nil
				}

				table := newTable("Identifier", "Customer", "Groups")
				for _, user := range users {
					_ = table.Append(user.Identifier, user.Customer, strings.Join(user.Groups, ","))
				}

				return renderTable(table)
			})
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTIFIER",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			return renderOutput(user, func() error {
				table := newTable("Property", "Value")
				_ = table.Append("Identifier", user.Identifier)
				_ = table.Append("Customer", user.Customer)
				_ = table.Append("Groups", strings.Join(user.Groups, ","))
				_ = table.Append("Permissions", strings.Join(user.Permissions, ","))

				return renderTable(table)
			})
		},
	}
}
