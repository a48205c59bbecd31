// Команда createsuperuser создаёт начального администратора.
// Значения login, password, name и email запрашиваются интерактивно;
// пароль вводится без отображения.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/magabrotheeeer/user-accounts/internal/config"
	"github.com/magabrotheeeer/user-accounts/internal/lib/password"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

func main() {
	cfg := config.MustLoad()

	db, err := repository.New(cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.DB.Close()
	}()

	reader := bufio.NewReader(os.Stdin)

	login, err := promptLine(reader, "Enter user login: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read login: %v\n", err)
		os.Exit(1)
	}

	fmt.Print("Enter user password: ")
	rawPassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}

	name, err := promptLine(reader, "Enter user name: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read name: %v\n", err)
		os.Exit(1)
	}

	email, err := promptLine(reader, "Enter user email: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read email: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	_, err = db.GetUserByLogin(ctx, login)
	if err == nil {
		fmt.Println(userservice.UserAlreadyExist)
		os.Exit(1)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		fmt.Fprintf(os.Stderr, "failed to check existing user: %v\n", err)
		os.Exit(1)
	}

	hash, err := password.GetHash(string(rawPassword))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	_, err = db.CreateUser(ctx, models.User{
		Login:        login,
		PasswordHash: hash,
		Name:         name,
		Email:        email,
		IsActive:     true,
		IsAdmin:      true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create superuser: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Superuser was successfully created.")
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
