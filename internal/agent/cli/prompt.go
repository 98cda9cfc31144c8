package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword интерактивно запрашивает пароль без эха в терминале.
//
// Используется командами, когда флаг --password не задан:
// пароль в аргументах командной строки виден в истории шелла и ps.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", errors.New("пустой пароль")
	}
	return password, nil
}

// passwordOrPrompt возвращает пароль из флага либо спрашивает интерактивно.
func passwordOrPrompt(flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return readPassword(prompt)
}
