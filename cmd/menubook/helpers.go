// Shared helpers for menubook CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/petals-kitchen/menubook/internal/store"
	"github.com/petals-kitchen/menubook/pkg/types"
)

// openSessionStore constructs and opens the session store. The caller must
// defer Close. One-shot subcommands get a fresh, empty session each run;
// that is the contract — nothing survives the process.
func openSessionStore() (*store.Store, error) {
	session := store.New()
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return session, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// formatPrice renders an integer amount with the configured currency symbol.
func formatPrice(amount int64) string {
	return fmt.Sprintf("%s %d", cfg.Currency, amount)
}

// printCandidate writes one catalog entry in human-readable form.
func printCandidate(entry types.Candidate) {
	fmt.Printf("%-24s %-10s %8s  %s\n", entry.Name, entry.Course, formatPrice(entry.Price), entry.Description)
}

// printGroupedMenu writes the session menu grouped by course, each group
// headed by its name and item count, followed by the total.
func printGroupedMenu(session *store.Store) error {
	total, err := session.TotalCount()
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Println("No dishes yet.")
		return nil
	}

	for _, course := range types.Courses() {
		items, err := session.ItemsByCourse(course)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			continue
		}
		fmt.Printf("%s (%d items)\n", course, len(items))
		for _, item := range items {
			fmt.Printf("  %-24s %8s  %s\n", item.Name, formatPrice(item.Price), item.Description)
		}
	}

	fmt.Printf("Total: %d dishes\n", total)
	return nil
}
