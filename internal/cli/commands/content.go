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

// loadToken достаёт сохранённый токен; без него команда не имеет смысла.
func loadToken(cfg *config.Config) (string, error) {
	token, err := (cliauth.TokenStore{Path: cfg.TokenFile}).Load()
	if err != nil {
		return "", errors.New("нет сохранённого токена, выполните login")
	}
	return token, nil
}

func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// AddContentRequest — тело POST /content.
type AddContentRequest struct {
	Title string   `json:"title"`
	Link  string   `json:"link,omitempty"`
	Text  string   `json:"text,omitempty"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags,omitempty"`
}

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить закладку или заметку"
}
func (addCmd) Usage() string { return "add link|note <title> <url-or-text>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	kind := strings.ToLower(args[0])
	if kind != "link" && kind != "note" {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}

	req := AddContentRequest{Title: args[1], Type: kind}
	if kind == "link" {
		req.Link = args[2]
	} else {
		req.Text = strings.Join(args[2:], " ")
	}

	resp, body, err := api.PostJSON(endpoint(cfg, "/api/v1/content"), req, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, api.Message(body))
	return nil
}

// ContentItem — элемент списка в ответе GET /content.
type ContentItem struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Text  string   `json:"text"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
}

func printContent(items []ContentItem) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "Коллекция пуста")
		return
	}
	for _, it := range items {
		detail := it.Link
		if it.Type == "note" {
			detail = it.Text
		}
		fmt.Fprintf(Out, "- %s  [%s] %s  %s\n", it.ID, it.Type, it.Title, detail)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}

type listCmd struct{}

func (listCmd) Name() string { return "list" }
func (listCmd) Description() string {
	return "Показать все элементы коллекции"
}
func (listCmd) Usage() string { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/v1/content"), token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var list struct {
		Content []ContentItem `json:"content"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return err
	}
	printContent(list.Content)
	return nil
}

type delCmd struct{}

func (delCmd) Name() string { return "del" }
func (delCmd) Description() string {
	return "Удалить элемент по ID"
}
func (delCmd) Usage() string { return "del <contentId>" }

func (delCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	token, err := loadToken(cfg)
	if err != nil {
		return err
	}
	payload := map[string]string{"contentId": args[0]}
	resp, body, err := api.DeleteJSON(endpoint(cfg, "/api/v1/content"), payload, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, api.Message(body))
		return nil
	case http.StatusNotFound:
		return errors.New("элемент не найден")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() {
	RegisterCmd(addCmd{})
	RegisterCmd(listCmd{})
	RegisterCmd(delCmd{})
}
