// Command admin creates an account from the terminal, for bootstrapping a
// fresh deployment before the register endpoint is reachable.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/udalba/campusmarket/internal/accounts"
	"github.com/udalba/campusmarket/internal/config"
	"github.com/udalba/campusmarket/internal/db"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s\n> ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword() (string, error) {
	fmt.Print("Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer rm.Conn().Close()

	service := accounts.NewService(rm.Accounts())
	reader := bufio.NewReader(os.Stdin)

	email, err := prompt(reader, "Institutional email ("+cfg.EmailDomain+")")
	if err != nil {
		log.Fatalf("%v", err)
	}
	if !strings.HasSuffix(email, cfg.EmailDomain) {
		log.Fatalf("email must belong to %s", cfg.EmailDomain)
	}

	name, err := prompt(reader, "Full name")
	if err != nil {
		log.Fatalf("%v", err)
	}

	password, err := promptPassword()
	if err != nil {
		log.Fatalf("%v", err)
	}

	var question, answer *string
	q, err := prompt(reader, "Security question (empty to skip)")
	if err != nil {
		log.Fatalf("%v", err)
	}
	if q != "" {
		a, err := prompt(reader, "Security answer")
		if err != nil {
			log.Fatalf("%v", err)
		}
		question, answer = &q, &a
	}

	account, err := service.Register(ctx, email, name, password, "", "", question, answer)
	if err != nil {
		log.Fatalf("account creation error: %v", err)
	}

	fmt.Printf("account %s created\n", account.Email)

}
