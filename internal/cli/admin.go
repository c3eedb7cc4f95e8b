package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin commands",
	}

	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminBanCmd())

	return cmd
}

func newAdminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List regular users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []User
			if err := client.Get("/api/v1/admin/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAdminBanCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "ban",
		Short: "Ban a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			path := fmt.Sprintf("/api/v1/admin/users/%s/ban", url.PathEscape(user))
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Banned %s", user))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username to ban (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
