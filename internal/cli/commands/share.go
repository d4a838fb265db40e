package commands

import (
	"BrainDump/internal/cli/api"
	"BrainDump/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ShareRequest — тело POST /brain/share.
type ShareRequest struct {
	Share bool `json:"share"`
}

type shareCmd struct{}

func (shareCmd) Name() string { return "share" }
func (shareCmd) Description() string {
	return "Включить или выключить публикацию коллекции"
}
func (shareCmd) Usage() string { return "share on|off" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	var enable bool
	switch strings.ToLower(args[0]) {
	case "on":
		enable = true
	case "off":
		enable = false
	default:
		return ErrUsage
	}

	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/v1/brain/share"), ShareRequest{Share: enable}, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	if enable {
		var hr struct {
			Hash string `json:"hash"`
		}
		if err := json.Unmarshal(body, &hr); err != nil || hr.Hash == "" {
			return errors.New("сервер не вернул hash")
		}
		fmt.Fprintf(Out, "Публичная ссылка: %s/api/v1/brain/%s\n", strings.TrimRight(cfg.ServerURL, "/"), hr.Hash)
		return nil
	}
	fmt.Fprintln(Out, api.Message(body))
	return nil
}

type viewCmd struct{}

func (viewCmd) Name() string { return "view" }
func (viewCmd) Description() string {
	return "Посмотреть чужую коллекцию по hash (без входа)"
}
func (viewCmd) Usage() string { return "view <hash>" }

func (viewCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	// анонимный маршрут — токен не отправляем
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/v1/brain/"+args[0]), "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return errors.New("ссылка не найдена")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var brain struct {
		Username string        `json:"username"`
		Content  []ContentItem `json:"content"`
	}
	if err := json.Unmarshal(body, &brain); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Коллекция пользователя %s:\n", brain.Username)
	printContent(brain.Content)
	return nil
}

func init() {
	RegisterCmd(shareCmd{})
	RegisterCmd(viewCmd{})
}
