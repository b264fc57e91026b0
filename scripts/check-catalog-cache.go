package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedCatalogs mirrors the fields of a cached catalog entry this check
// reads
type cachedCatalogs struct {
	Catalogs *struct {
		Races       []json.RawMessage `json:"races"`
		Classes     []json.RawMessage `json:"classes"`
		Backgrounds []json.RawMessage `json:"backgrounds"`
	} `json:"catalogs"`
	StoredAt  int64 `json:"stored_at"`
	ExpiresAt int64 `json:"expires_at"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning cached catalogs...")

	iter := client.Scan(ctx, 0, "catalog:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var entry cachedCatalogs
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		// An entry without races or classes would leave every wizard
		// session with nothing to pick until it expires
		if entry.Catalogs == nil || len(entry.Catalogs.Races) == 0 || len(entry.Catalogs.Classes) == 0 {
			fmt.Printf("✗ Empty catalogs in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		ttl := client.TTL(ctx, key).Val()
		fmt.Printf("✓ %s: %d races, %d classes, %d backgrounds, stored %s, expires in %s\n",
			key,
			len(entry.Catalogs.Races), len(entry.Catalogs.Classes), len(entry.Catalogs.Backgrounds),
			time.Unix(entry.StoredAt, 0).Format(time.RFC3339), ttl.Round(time.Second))
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad entries\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("Catalog cache looks healthy")
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDelete these entries so the next session refetches? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range badKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
