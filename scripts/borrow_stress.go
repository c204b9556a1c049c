//go:build ignore
// +build ignore

// Manual concurrency check for the borrow endpoint.
//
// Usage:
//
//	go run ./scripts/borrow_stress.go <book_id> <member1_id> [member2_id ...]
//
// Or via environment variables:
//
//	BOOK_ID=7 MEMBER_IDS=1,2,3 go run ./scripts/borrow_stress.go
//
// What it does:
//  1. Fires N goroutines (one per member) all borrowing the same book at once.
//  2. Prints the 200 vs 409 split. The gateway provides no ordering of its
//     own, so the catalog engine's own concurrency control decides who gets
//     the last copy; the check is that oversubscription surfaces as 409,
//     never as 200 or 500.
//
// Prerequisites: the gateway and catalog service must be running, and the
// book/members must exist.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultGatewayAddr = "http://localhost:8080"

type borrowResult struct {
	MemberID   string
	StatusCode int
	Body       string
	Err        error
}

func main() {
	gatewayAddr := os.Getenv("GATEWAY_ADDR")
	if gatewayAddr == "" {
		gatewayAddr = defaultGatewayAddr
	}

	bookID := os.Getenv("BOOK_ID")
	var memberIDs []string
	if ids := os.Getenv("MEMBER_IDS"); ids != "" {
		memberIDs = strings.Split(ids, ",")
	}

	args := os.Args[1:]
	if len(args) >= 1 {
		bookID = args[0]
	}
	if len(args) >= 2 {
		memberIDs = args[1:]
	}

	if bookID == "" || len(memberIDs) == 0 {
		log.Fatal("Usage: BOOK_ID=<id> MEMBER_IDS=<m1,m2,...> go run ./scripts/borrow_stress.go\n" +
			"  or: go run ./scripts/borrow_stress.go <book_id> <member1_id> [member2_id ...]")
	}

	dueDate := time.Now().AddDate(0, 0, 14).Format("2006-01-02")

	fmt.Printf("=== Borrow Concurrency Check ===\n")
	fmt.Printf("Gateway : %s\n", gatewayAddr)
	fmt.Printf("Book    : %s\n", bookID)
	fmt.Printf("Members : %d\n\n", len(memberIDs))

	results := make([]borrowResult, len(memberIDs))
	var wg sync.WaitGroup

	// Barrier so all borrows hit the gateway simultaneously.
	start := make(chan struct{})

	for i, memberID := range memberIDs {
		wg.Add(1)
		go func(idx int, member string) {
			defer wg.Done()
			<-start

			payload, _ := json.Marshal(map[string]string{
				"book_id":   bookID,
				"member_id": member,
				"due_date":  dueDate,
			})
			resp, err := http.Post(gatewayAddr+"/borrow", "application/json", bytes.NewReader(payload))
			if err != nil {
				results[idx] = borrowResult{MemberID: member, Err: err}
				return
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			results[idx] = borrowResult{MemberID: member, StatusCode: resp.StatusCode, Body: string(body)}
		}(i, memberID)
	}

	close(start)
	wg.Wait()

	var borrowed, conflicted, other int
	for _, r := range results {
		switch {
		case r.Err != nil:
			other++
			fmt.Printf("member %s: transport error: %v\n", r.MemberID, r.Err)
		case r.StatusCode == http.StatusOK:
			borrowed++
			fmt.Printf("member %s: borrowed\n", r.MemberID)
		case r.StatusCode == http.StatusConflict:
			conflicted++
			fmt.Printf("member %s: 409 — %s\n", r.MemberID, r.Body)
		default:
			other++
			fmt.Printf("member %s: unexpected %d — %s\n", r.MemberID, r.StatusCode, r.Body)
		}
	}

	fmt.Printf("\nborrowed=%d conflict=%d unexpected=%d\n", borrowed, conflicted, other)
	if other > 0 {
		os.Exit(1)
	}
}
