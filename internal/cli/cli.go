// SPDX-License-Identifier: AGPL-3.0-only
package cli

import (
	"context"
	"fmt"
	"log"
	"syscall"

	"golang.org/x/term"

	"github.com/nordsocial/socialweb/internal/gateway"
)

// HandleCreateAPIKey logs in with the given email and a password read from
// the terminal, then creates a named API key and prints it.
func HandleCreateAPIKey(gw *gateway.Client, email, keyName string) {
	ctx := context.Background()

	if email == "" {
		log.Fatal("--email is required")
	}

	fmt.Printf("Enter password for '%s': ", email)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("\nFailed to read password: %v", err)
	}
	fmt.Println()

	login := gw.Login(ctx, gateway.LoginRequest{Email: email, Password: string(bytePassword)})
	if !login.Ok() || login.Data == nil {
		log.Fatalf("Login failed: %v", login.Err())
	}

	key := gw.CreateAPIKey(ctx, login.Data.AccessToken, keyName)
	if !key.Ok() || key.Data == nil {
		log.Fatalf("Failed to create API key: %v", key.Err())
	}

	fmt.Printf("API key '%s' (%s): %s\n", key.Data.Name, key.Data.Status, key.Data.Key)
}
