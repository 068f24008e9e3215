package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"campaignhub/internal/gateway"
	"campaignhub/internal/infra"
	"campaignhub/internal/infra/credentials"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one token command and returns the process exit code. Deferred
// cleanup, including closing the Postgres pool, always happens before exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)
	setFlag := fs.String("set", "", "store this bearer token as-is")
	emailFlag := fs.String("login", "", "log in with this email; the password is read from CAMPAIGNHUB_PASSWORD")
	clearFlag := fs.Bool("clear", false, "forget the stored token")
	showFlag := fs.Bool("status", false, "report whether a token is stored")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fail := func(err error) int {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fail(err)
	}
	logger := infra.NewLogger("cli").With().Str("cmd", "token").Str("token_store", cfg.TokenStore).Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tokens, closeTokens, err := credentials.Open(ctx, cfg, logger)
	if err != nil {
		return fail(err)
	}
	defer closeTokens()

	email := strings.TrimSpace(*emailFlag)
	switch {
	case strings.TrimSpace(*setFlag) != "":
		if err := tokens.SetToken(ctx, *setFlag); err != nil {
			return fail(fmt.Errorf("failed to store token: %w", err))
		}
		fmt.Fprintln(stdout, "token stored")
	case email != "":
		password := os.Getenv("CAMPAIGNHUB_PASSWORD")
		if password == "" {
			return fail(errors.New("CAMPAIGNHUB_PASSWORD is required with -login"))
		}
		client, err := gateway.NewClient(gateway.Options{
			BaseURL:        cfg.APIBaseURL,
			Tokens:         tokens,
			Logger:         &logger,
			RequestTimeout: cfg.APITimeout,
		})
		if err != nil {
			return fail(err)
		}
		if _, err := client.Auth().Login(ctx, email, password); err != nil {
			return fail(fmt.Errorf("login failed: %s", gateway.Message(err)))
		}
		fmt.Fprintf(stdout, "logged in as %s\n", email)
	case *clearFlag:
		if err := tokens.ClearToken(ctx); err != nil {
			return fail(fmt.Errorf("failed to clear token: %w", err))
		}
		fmt.Fprintln(stdout, "token cleared")
	case *showFlag:
		token, err := tokens.Token(ctx)
		if err != nil {
			return fail(err)
		}
		if token == "" {
			fmt.Fprintln(stdout, "no token stored")
		} else {
			fmt.Fprintln(stdout, "token stored")
		}
	default:
		fs.Usage()
		return 2
	}
	return 0
}
