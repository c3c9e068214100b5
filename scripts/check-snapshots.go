package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-grid/internal/repositories/snapshots"
)

const sessionIndexPrefix = "snapshot:session:"

// Scans snapshot keys for records that no longer decode and session indexes
// that point at expired snapshots. Set FIX=true to delete and prune them.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	fix := os.Getenv("FIX") == "true"

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

	var corrupted, indexes []string
	checked := 0

	iter := client.Scan(ctx, 0, "snapshot:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, sessionIndexPrefix) {
			indexes = append(indexes, key)
			continue
		}
		checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var snap snapshots.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil || snap.ID == "" || snap.SessionID == "" {
			fmt.Printf("✗ Corrupted snapshot %s\n", key)
			corrupted = append(corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	stale := 0
	for _, index := range indexes {
		ids, err := client.ZRange(ctx, index, 0, -1).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", index, err)
			continue
		}
		for _, id := range ids {
			n, err := client.Exists(ctx, "snapshot:"+id).Result()
			if err != nil || n > 0 {
				continue
			}
			stale++
			fmt.Printf("✗ %s lists missing snapshot %s\n", index, id)
			if fix {
				if err := client.ZRem(ctx, index, id).Err(); err != nil {
					fmt.Printf("Error pruning %s from %s: %v\n", id, index, err)
				}
			}
		}
	}

	fmt.Printf("\nChecked %d snapshots and %d session indexes\n", checked, len(indexes))
	fmt.Printf("Found %d corrupted snapshots and %d stale index entries\n", len(corrupted), stale)

	if len(corrupted) == 0 {
		return
	}
	if !fix {
		fmt.Println("Run with FIX=true to delete corrupted snapshots")
		return
	}
	if err := client.Del(ctx, corrupted...).Err(); err != nil {
		log.Fatal("Failed to delete corrupted snapshots:", err)
	}
	fmt.Printf("Deleted %d corrupted snapshots\n", len(corrupted))
}
