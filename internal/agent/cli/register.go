package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-user-api/internal/agent/api"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере с использованием
// email и пароля. Если флаг --password не задан, пароль запрашивается
// интерактивно без эха.
//
// Пример использования:
//
//	userctl register --email test@example.com --password StrongPass123
//
// В случае успешной регистрации выводится id созданного пользователя.
func NewRegisterCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  userctl register --email test@example.com --password StrongPass123
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passwordOrPrompt(password, "Пароль: ")
			if err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			user, err := c.Register(email, pass)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (id=%d)\n", user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (omit to be prompted)")
	cmd.MarkFlagRequired("email")

	return cmd
}
