package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-user-api/internal/agent/api"
)

// NewDeleteCmd создаёт CLI-команду удаления пользователя по id.
//
// Требует предварительного логина.
func NewDeleteCmd(app *App) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить пользователя",
		Long: `Удаление пользователя по id.

Пример:
  userctl delete --id 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := api.NewClient(app.ServerURL)
			resp, err := c.DeleteUser(id, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.MarkFlagRequired("id")

	return cmd
}
