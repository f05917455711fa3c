package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/cybergodev/jws"
)

func main() {

	key := []byte("Kx9#mP2$vL8@nQ5!wR7&tY3^uI6*oE4%aS1+dF0-g!")

	// Strict codec for production
	config := jws.Config{
		MaxTokenSize:   8 << 10, // 8 KiB tokens at most
		MinKeyLength:   32,      // 256-bit keys
		RejectWeakKeys: true,    // Refuse low-entropy keys
		Logger:         slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	codec, err := jws.New(config)
	if err != nil {
		log.Fatalf("Codec creation failed: %v", err)
	}

	claims := jws.NewClaimsSet()
	claims.SetSubject("user123")

	token, err := codec.Encode(claims, key)
	if err != nil {
		log.Fatalf("Token encoding failed: %v", err)
	}

	if _, err := codec.Decode(token, key); err != nil {
		log.Fatalf("Token decoding failed: %v", err)
	}

}
