package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iudanet/fitkeeper/internal/client/config"
	"github.com/iudanet/fitkeeper/internal/client/guard"
	"github.com/iudanet/fitkeeper/internal/client/mutation"
)

// parseID разбирает числовой id из первого аргумента.
// Остальные аргументы склеиваются в необязательное имя.
func parseID(args []string, usage string) (int64, string, error) {
	if len(args) == 0 {
		return 0, "", fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("%w: %s: id must be a positive number", ErrUsage, usage)
	}
	return id, strings.Join(args[1:], " "), nil
}

// requireView спрашивает SessionGuard, можно ли показать экран
func (c *Cli) requireView(ctx context.Context, view string) error {
	decision := c.svc.Guard().Check(ctx, view)
	if decision.Action == guard.Render {
		return nil
	}
	// Сессия есть, но профиль не удалось загрузить: повторный вход не нужен
	if c.svc.Guard().State() == guard.Authenticating && c.svc.Token(ctx) != "" {
		return ErrServerUnreachable
	}
	if decision.Action == guard.ForceLogout {
		c.io.Println("⚠️  Your session has expired.")
	}
	return fmt.Errorf("%w: run 'fitkeeper login' (redirected to %s)", ErrLoginRequired, decision.Location)
}

// printResult печатает итог действия, для которого сервер не отправляет уведомлений
func (c *Cli) printResult(res *mutation.Result, noop string) {
	if res != nil && res.State == mutation.StateNoop {
		c.io.Println(noop)
	}
}

// actionError отделяет ошибку действия, о которой уже напечатано уведомление
func actionError(err error) error {
	if errors.Is(err, mutation.ErrMutationFailed) {
		return fmt.Errorf("changes were rolled back: %w", err)
	}
	return err
}

func (c *Cli) interactivePassword() bool {
	return os.Getenv(config.EnvPassword) == "" && c.passwords.FromFile == "" && c.passwords.FromArgs == ""
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return " "
}
