package commands

import (
	"BrainDump/internal/cli/api"
	"BrainDump/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// CredentialsRequest — тело signup/signin.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string { return "register" }
func (registerCmd) Description() string {
	return "Зарегистрировать нового пользователя"
}
func (registerCmd) Usage() string { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/v1/signup"
	resp, body, err := api.PostJSON(endpoint, CredentialsRequest{Username: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Пользователь зарегистрирован. Теперь выполните login.")
		return nil
	case http.StatusConflict:
		return errors.New("имя уже занято")
	case http.StatusBadRequest:
		return fmt.Errorf("некорректный ввод: %s", api.Message(body))
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
