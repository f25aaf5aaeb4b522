package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/danphoto/portfolio-api/internal/platform/config"
	"github.com/danphoto/portfolio-api/internal/platform/token"
)

// Dev-only token minter. Signs a bearer token for an email with the same
// secret the API reads from JWT_SECRET, so the output works against a local
// server without going through the login endpoint.
func main() {
	email := flag.String("email", "", "subject email to sign the token for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token validity")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "usage: devtoken -email user@example.com [-ttl 24h]")
		os.Exit(2)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = config.DefaultJWTSecret
		fmt.Fprintln(os.Stderr, "warning: JWT_SECRET unset, using the development default")
	}

	tok, err := token.NewCodec([]byte(secret)).Issue(*email, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
