package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytedspace/byted-space/internal/hull"
)

var hullsCmd = &cobra.Command{
	Use:   "hulls",
	Short: "List ship hulls",
	Long:  `Shows the ship hulls whose base stats loadouts are resolved against.`,
	Run:   runHulls,
}

func runHulls(_ *cobra.Command, _ []string) {
	hulls := hull.List()

	if len(hulls) == 0 {
		fmt.Println("No hulls available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, h := range hulls {
		if len(h.ID) > maxIDLen {
			maxIDLen = len(h.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Stats")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, h := range hulls {
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, h.ID, h.Title, formatEffects(h.Stats))
	}

	fmt.Println()
	fmt.Printf("Run 'byted loadout resolve --hull <id> <modifier>...' (hulls: %s).\n",
		strings.Join(hullIDs(hulls), ", "))
}

func hullIDs(hulls []hull.Hull) []string {
	ids := make([]string, len(hulls))
	for i, h := range hulls {
		ids[i] = h.ID
	}
	return ids
}
