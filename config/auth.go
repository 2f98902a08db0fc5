package config

import (
	"log/slog"
	"os"
)

// JwtKey signs and verifies session tokens. It must come from the environment;
// a compiled-in default would make every deployment share a key.
var JwtKey []byte

// LoadJWTKey reads JWT_SECRET. Fatal when missing: issuing unverifiable
// tokens is worse than refusing to start.
func LoadJWTKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
