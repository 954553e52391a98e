// Command hashpw reads an editor password from stdin and prints the bcrypt
// hash to put in EDITOR_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/msomdec/bookshelf/internal/config"
	"github.com/msomdec/bookshelf/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		slog.Error("read password", "error", err)
		os.Exit(1)
	}
	password = strings.TrimRight(password, "\r\n")
	if len(password) < 8 {
		slog.Error("password must be at least 8 characters")
		os.Exit(1)
	}

	hash, err := service.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		slog.Error("hash password", "error", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
