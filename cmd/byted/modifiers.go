package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytedspace/byted-space/internal/locale"
	"github.com/bytedspace/byted-space/internal/modifier"
)

var flagLang string

var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "List loadout modifiers",
	Long: `Shows every loadout modifier with its design-point cost, action,
effects and incompatibilities, in catalog order.

Names are translated with the locale given by --lang.`,
	Run: runModifiers,
}

func init() {
	modifiersCmd.Flags().StringVar(&flagLang, "lang", "en_us", "Language used for modifier names")
}

func runModifiers(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	locales, _ := loadAssets(cfg, newLogger(os.Stderr))

	defs := modifier.Default().All()

	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %4s  %-8s  %-28s  %s\n", maxIDLen, "ID", "DP", "Action", "Effects", "Name")
	fmt.Printf("  %-*s  %4s  %-8s  %-28s  %s\n", maxIDLen, "--", "--", "------", "-------", "----")

	for _, d := range defs {
		fmt.Printf("  %-*s  %4d  %-8s  %-28s  %s\n",
			maxIDLen, d.ID, d.DP, d.Action, formatEffects(d.Effects), translated(locales, d.NameKey))
		if len(d.Incompatible) > 0 {
			fmt.Printf("  %-*s  %4s  excludes: %s\n", maxIDLen, "", "", strings.Join(d.Incompatible, ", "))
		}
	}

	fmt.Println()
	fmt.Println("Run 'byted loadout validate <id>...' to check a selection.")
}

// translated returns the translation of key, or key itself when missing.
func translated(c *locale.Catalog, key string) string {
	if s := c.Translate(flagLang, key); s != locale.Missing {
		return s
	}
	return key
}

// formatEffects renders effects as "stat=value" pairs sorted by stat.
func formatEffects(effects map[string]float64) string {
	keys := make([]string, 0, len(effects))
	for k := range effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.FormatFloat(effects[k], 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
