package commands

import (
	"BrainDump/internal/cli/api"
	cliauth "BrainDump/internal/cli/auth"
	"BrainDump/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type loginCmd struct{}

func (loginCmd) Name() string { return "login" }
func (loginCmd) Description() string {
	return "Войти и сохранить токен"
}
func (loginCmd) Usage() string { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/v1/signin"
	resp, body, err := api.PostJSON(endpoint, CredentialsRequest{Username: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var tr struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(body, &tr); err != nil || tr.Token == "" {
			return errors.New("сервер не вернул токен")
		}
		if err := (cliauth.TokenStore{Path: cfg.TokenFile}).Save(tr.Token); err != nil {
			return fmt.Errorf("saving token: %w", err)
		}
		fmt.Fprintln(Out, "Вход выполнен.")
		return nil
	case http.StatusForbidden:
		return errors.New("неверные имя или пароль")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

type logoutCmd struct{}

func (logoutCmd) Name() string { return "logout" }
func (logoutCmd) Description() string {
	return "Забыть сохранённый токен"
}
func (logoutCmd) Usage() string { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// Токен stateless, на сервере отзывать нечего — достаточно забыть его локально.
	if err := (cliauth.TokenStore{Path: cfg.TokenFile}).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Токен удалён.")
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
