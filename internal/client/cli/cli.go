package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/fitkeeper/internal/client/config"
	"github.com/iudanet/fitkeeper/internal/client/iocli"
	"github.com/iudanet/fitkeeper/internal/client/session"
)

var (
	// ErrUnknownCommand команда не поддерживается
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage неверные аргументы команды
	ErrUsage = errors.New("usage")
	// ErrLoginRequired экран доступен только после входа
	ErrLoginRequired = errors.New("login required")
	// ErrServerUnreachable профиль не загружен из-за сети, сессия сохранена
	ErrServerUnreachable = errors.New("server unreachable, session kept, try again")
)

// Passwords источники пароля, кроме переменной окружения и интерактивного ввода
type Passwords struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io        iocli.IO
	svc       *session.Service
	passwords Passwords
}

func New(io iocli.IO, svc *session.Service, passwords Passwords) *Cli {
	return &Cli{
		io:        io,
		svc:       svc,
		passwords: passwords,
	}
}

// getPassword retrieves account password from various sources with priority:
// 1. Environment variable FITKEEPER_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Command-line parameter passwords.FromArgs
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv(config.EnvPassword); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

func PrintUsage(io iocli.IO) {
	io.Println("FitKeeper Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  fitkeeper [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  --version                Show version information")
	io.Println("  --server URL             Server URL (default: http://localhost:5000, env FITKEEPER_SERVER)")
	io.Println("  --db PATH                Path to local database (default: fitkeeper-client.db, env FITKEEPER_DB)")
	io.Println("  --store bolt|sqlite      Local storage backend (env FITKEEPER_STORE)")
	io.Println("  --log-level LEVEL        debug, info, warn or error (env FITKEEPER_LOG_LEVEL)")
	io.Println("  --public-entry VIEW      Where to send unauthenticated users (env FITKEEPER_PUBLIC_ENTRY)")
	io.Println("  --env-file PATH          Load defaults from a .env file (default: .env)")
	io.Println("  --password PASSWORD      Account password (not recommended, use env var or file)")
	io.Println("  --password-file PATH     Path to file containing the account password")
	io.Println()
	io.Println("Account:")
	io.Println("  register                     Create an account and sign in")
	io.Println("  login                        Sign in")
	io.Println("  logout                       Sign out (the cart is kept)")
	io.Println("  status                       Show session status")
	io.Println("  profile                      Show the cached profile")
	io.Println("  open <view>                  Show what the app would do for a view, e.g. /dashboard")
	io.Println()
	io.Println("Workouts:")
	io.Println("  workouts                     List workouts")
	io.Println("  complete-workout <id> [name] Mark a workout as completed")
	io.Println("  delete-workout <id>          Remove a completed workout")
	io.Println()
	io.Println("Community:")
	io.Println("  challenges                   List community challenges")
	io.Println("  join-challenge <id> [name]   Join a challenge")
	io.Println("  friends                      List friends")
	io.Println("  suggestions                  Show people you may know")
	io.Println("  add-friend <id> [username]   Add a friend")
	io.Println("  remove-friend <id>           Remove a friend")
	io.Println("  feed                         Show community posts")
	io.Println("  post <content>               Publish a post")
	io.Println()
	io.Println("Nutrition:")
	io.Println("  recipes                      List nutrition plans")
	io.Println("  save-recipe <id> [name]      Save a recipe")
	io.Println("  delete-recipe <id>           Remove a saved recipe")
	io.Println()
	io.Println("Shop:")
	io.Println("  products                     List products")
	io.Println("  cart [add <id>|clear]        Show or change the cart")
	io.Println()
	io.Println("Examples:")
	io.Println("  fitkeeper login")
	io.Println("  fitkeeper complete-workout 3 \"Morning Run\"")
	io.Println("  FITKEEPER_PASSWORD=secret fitkeeper --server https://fit.example.com login")
}
