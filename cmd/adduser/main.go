// Command adduser creates a user from the command line, prompting for the
// password without echo. Useful for bootstrapping a fresh database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/vblinov/gophblog/internal/server/auth"
	"github.com/vblinov/gophblog/internal/server/storage/sqlite"
)

func main() {
	dbPath := flag.String("d", "gophblog.db", "path to SQLite database file")
	username := flag.String("u", "", "username to create")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -u <username> [-d <db-path>]")
		os.Exit(2)
	}

	password, err := promptPassword()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read password:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open database:", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	id, err := auth.NewService(logger, store).Register(ctx, *username, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create user:", err)
		os.Exit(1)
	}

	fmt.Printf("User %q created with id %d\n", *username, id)
}

// promptPassword читает пароль дважды без эха и сверяет ввод
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())

	fmt.Print("Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("Repeat password: ")
	pw2, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(pw) != string(pw2) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(pw), nil
}
