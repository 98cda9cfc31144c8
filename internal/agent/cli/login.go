package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-user-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-user-api/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере, получает
// access-токен и сохраняет его в локальный конфигурационный файл.
// Если флаг --password не задан, пароль запрашивается интерактивно.
//
// Пример использования:
//
//	userctl login --email test@example.com
//
// В случае успешного выполнения токен сохраняется локально, а пользователю
// выводится сообщение об успешном входе.
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить access-токен)",
		Long: `Логин пользователя.

Пример:
  userctl login --email test@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passwordOrPrompt(password, "Пароль: ")
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := api.NewClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, pass)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.AccessToken = resp.AccessToken

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login (omit to be prompted)")
	cmd.MarkFlagRequired("email")

	return cmd
}
