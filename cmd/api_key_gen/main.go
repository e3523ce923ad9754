package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"field-ministry/campo/internal/config"
	"field-ministry/campo/internal/db"
	"field-ministry/campo/internal/db/repositories"
)

// Issues an API key for a service integration. The raw key is printed once;
// only its hash is stored.
func main() {
	userID := flag.String("user", "", "id of the user the key acts as")
	label := flag.String("label", "", "free-form description of the integration")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	conn, err := db.InitPostgres(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("generate key: %v", err)
	}
	rawKey := hex.EncodeToString(buf)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key, err := repositories.NewApiKeysRepo(conn).Insert(ctx, uuid.NewString(), rawKey, *userID, *label)
	if err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("Key ID:     ", key.ID)
	fmt.Println("New API Key:", rawKey)
}
