package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-user-api/internal/agent/api"
)

// NewListCmd создаёт CLI-команду вывода списка всех пользователей.
//
// Требует предварительного логина: access-токен берётся из локального конфига.
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Список всех пользователей",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := api.NewClient(app.ServerURL)
			users, err := c.ListUsers(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", u.ID, u.Email)
			}
			return nil
		},
	}
}
