package commands

import (
	cliauth "BrainDump/internal/cli/auth"
	"BrainDump/internal/config"
	"context"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string {
	return "Показать адрес сервера и наличие токена"
}
func (statusCmd) Usage() string { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	fmt.Fprintf(Out, "Server: %s\n", cfg.ServerURL)
	if _, err := (cliauth.TokenStore{Path: cfg.TokenFile}).Load(); err != nil {
		fmt.Fprintln(Out, "Token: отсутствует (выполните login)")
		return nil
	}
	fmt.Fprintf(Out, "Token: сохранён в %s\n", cfg.TokenFile)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
