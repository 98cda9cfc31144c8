package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-user-api/internal/agent/api"
)

// NewGetCmd создаёт CLI-команду получения пользователя по id.
//
// Требует предварительного логина.
func NewGetCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Пользователь по id",
		Long: `Получение одного пользователя по id.

Пример:
  userctl get --id 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := api.NewClient(app.ServerURL)
			user, err := c.GetUser(id, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.MarkFlagRequired("id")

	return cmd
}
