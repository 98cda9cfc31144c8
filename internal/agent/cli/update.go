package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-user-api/internal/agent/api"
)

// NewUpdateCmd создаёт CLI-команду обновления пользователя.
//
// Обновление полное: заменяются и email, и пароль. Если флаг --password
// не задан, новый пароль запрашивается интерактивно.
//
// Требует предварительного логина.
func NewUpdateCmd(app *App) *cobra.Command {
	var (
		id              int64
		email, password string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Обновить email и пароль пользователя",
		Long: `Полное обновление пользователя (email + пароль).

Пример:
  userctl update --id 1 --email new@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passwordOrPrompt(password, "Новый пароль: ")
			if err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			user, err := c.UpdateUser(id, email, pass, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated: %d\t%s\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&password, "password", "", "new password (omit to be prompted)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("email")

	return cmd
}
