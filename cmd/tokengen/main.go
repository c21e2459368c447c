// Package main mints session tokens for the demo participants so the API can
// be exercised with curl without going through POST /session.
// Tokens are signed with the key from the environment (or .env), which
// defaults to the dev key.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"contium/internal/platform/config"
	"contium/internal/session"
	"contium/internal/user"
)

type tokenOutput struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Claims    map[string]any    `json:"claims"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	role := flag.String("role", string(user.RoleAuthority), "Participant role: exporter, importer, customs-agent or authority")
	ttl := flag.Duration("ttl", 0, "Token time-to-live (defaults to SESSION_TTL)")
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	list := flag.Bool("list", false, "List the demo participants and exit")
	flag.Usage = printUsage
	flag.Parse()

	if *list {
		listParticipants()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *ttl > 0 {
		cfg.SessionTTL = *ttl
	}

	out, err := mint(context.Background(), cfg, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}
	if *jsonOutput {
		printJSON(out)
		return
	}
	printText(out)
}

func mint(ctx context.Context, cfg config.Server, roleName string) (tokenOutput, error) {
	role, err := user.ParseRole(roleName)
	if err != nil {
		return tokenOutput{}, err
	}
	directory := user.NewDirectory(user.SeedUsers()...)
	participant, err := directory.ByRole(ctx, role)
	if err != nil {
		return tokenOutput{}, fmt.Errorf("no participant for role %q: %w", role, err)
	}
	token, expiresAt, err := session.NewTokens(cfg.SessionSigningKey, cfg.SessionTTL).Issue(ctx, participant)
	if err != nil {
		return tokenOutput{}, err
	}

	keyType := "custom"
	if cfg.SessionSigningKey == config.DefaultSigningKey {
		keyType = "dev"
	}
	return tokenOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Claims: map[string]any{
			"sub":  participant.ID.String(),
			"role": string(participant.Role),
			"name": participant.Name,
		},
		Usage: map[string]string{
			"header":      "Authorization: Bearer <token>",
			"signing_key": keyType,
			"environment": cfg.Environment,
		},
	}, nil
}

func listParticipants() {
	for _, u := range user.SeedUsers() {
		fmt.Printf("%-14s %-9s %s (%s)\n", u.Role, u.ID, u.Name, u.Company)
	}
}

func printText(out tokenOutput) {
	fmt.Println("Session Token (JWT)")
	fmt.Println("===================")
	fmt.Printf("Signing Key: %s\n", out.Usage["signing_key"])
	fmt.Printf("Expires At:  %s\n", out.ExpiresAt.Format(time.RFC3339))
	fmt.Printf("User ID:     %s\n", out.Claims["sub"])
	fmt.Printf("Role:        %s\n", out.Claims["role"])
	fmt.Printf("Name:        %s\n", out.Claims["name"])
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(out.Token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/me")
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `tokengen - Mint session tokens for the Contium demo participants

WARNING: Tokens are signed with SESSION_SIGNING_KEY, which defaults
         to the dev key. Only use for local development and testing.

Usage:
  tokengen [flags]

Examples:
  # Token for the customs authority
  tokengen

  # Token for the exporter, valid for one hour
  tokengen -role exporter -ttl 1h

  # Show the demo participants
  tokengen -list

  # Output as JSON
  tokengen -role importer -json

Flags:`)
	flag.PrintDefaults()
}
