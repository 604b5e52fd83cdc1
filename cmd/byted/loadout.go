package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bytedspace/byted-space/internal/config"
	"github.com/bytedspace/byted-space/internal/hull"
	"github.com/bytedspace/byted-space/internal/modifier"
	"github.com/bytedspace/byted-space/internal/platform/tui"
	"github.com/bytedspace/byted-space/internal/storage"
)

var (
	flagHull      string
	flagBudgetMin int
	flagBudgetMax int
	flagNoBudget  bool
)

var loadoutCmd = &cobra.Command{
	Use:   "loadout",
	Short: "Validate, resolve and store ship loadouts",
	Long: `A loadout is a set of modifier ids. It is valid when every id is known,
no two ids are incompatible and the total DP lies within the budget.

Examples:
  byted loadout validate high_shield low_damage
  byted loadout resolve --hull frigate high_shield low_damage
  byted loadout save tank high_shield high_health low_damage low_mobility
  byted loadout list
  byted loadout show tank
  byted loadout browse`,
}

var loadoutValidateCmd = &cobra.Command{
	Use:   "validate <modifier>...",
	Short: "Check a modifier selection",
	Args:  cobra.MinimumNArgs(1),
	Run:   runLoadoutValidate,
}

var loadoutResolveCmd = &cobra.Command{
	Use:   "resolve <modifier>...",
	Short: "Apply a modifier selection to a hull's base stats",
	Run:   runLoadoutResolve,
}

var loadoutSaveCmd = &cobra.Command{
	Use:   "save <name> <modifier>...",
	Short: "Validate and save a loadout preset",
	Args:  cobra.MinimumNArgs(1),
	Run:   runLoadoutSave,
}

var loadoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved loadout presets",
	Args:  cobra.NoArgs,
	Run:   runLoadoutList,
}

var loadoutShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved preset resolved against a hull",
	Args:  cobra.ExactArgs(1),
	Run:   runLoadoutShow,
}

var loadoutDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved preset",
	Args:  cobra.ExactArgs(1),
	Run:   runLoadoutDelete,
}

var loadoutBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved presets interactively",
	Args:  cobra.NoArgs,
	Run:   runLoadoutBrowse,
}

func init() {
	for _, c := range []*cobra.Command{loadoutValidateCmd, loadoutResolveCmd, loadoutSaveCmd, loadoutShowCmd, loadoutBrowseCmd} {
		c.Flags().IntVar(&flagBudgetMin, "min", 0, "Minimum total DP (default from config)")
		c.Flags().IntVar(&flagBudgetMax, "max", 0, "Maximum total DP (default from config)")
	}
	for _, c := range []*cobra.Command{loadoutResolveCmd, loadoutShowCmd} {
		c.Flags().StringVar(&flagHull, "hull", "frigate", "Hull whose base stats are modified")
		c.Flags().BoolVar(&flagNoBudget, "no-budget", false, "Skip the budget check")
	}

	loadoutCmd.AddCommand(loadoutValidateCmd)
	loadoutCmd.AddCommand(loadoutResolveCmd)
	loadoutCmd.AddCommand(loadoutSaveCmd)
	loadoutCmd.AddCommand(loadoutListCmd)
	loadoutCmd.AddCommand(loadoutShowCmd)
	loadoutCmd.AddCommand(loadoutDeleteCmd)
	loadoutCmd.AddCommand(loadoutBrowseCmd)
}

// budgetFor returns the configured budget with --min/--max applied.
func budgetFor(cmd *cobra.Command, cfg config.Config) modifier.Budget {
	b := cfg.Loadout.Budget
	if cmd.Flags().Changed("min") {
		b.Min = flagBudgetMin
	}
	if cmd.Flags().Changed("max") {
		b.Max = flagBudgetMax
	}
	return b
}

// openStore opens the preset database or exits.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

// fail prints a loadout error with details and exits.
func fail(err error) {
	var unknown *modifier.UnknownModifierError
	var pair *modifier.IncompatiblePairError
	var budget *modifier.BudgetError

	switch {
	case errors.As(err, &unknown):
		fmt.Fprintf(os.Stderr, "Error: unknown modifier %q\n", unknown.ID)
		if unknown.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", unknown.Suggestion)
		}
		fmt.Fprintln(os.Stderr, "Run 'byted modifiers' to see all modifiers.")
	case errors.As(err, &pair):
		fmt.Fprintf(os.Stderr, "Error: %q and %q cannot be combined\n", pair.A, pair.B)
	case errors.As(err, &budget):
		fmt.Fprintf(os.Stderr, "Error: total cost %d DP is outside the budget %d..%d\n",
			budget.Cost, budget.Budget.Min, budget.Budget.Max)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func runLoadoutValidate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	budget := budgetFor(cmd, cfg)
	r := modifier.NewResolver(modifier.Default())
	sel := modifier.NewSelection(args...)

	if err := r.Validate(sel); err != nil {
		fail(err)
	}
	if err := r.CheckBudget(sel, budget); err != nil {
		fail(err)
	}

	fmt.Printf("Loadout is valid: %d modifiers, %d DP (budget %d..%d)\n",
		len(sel), r.TotalCost(sel), budget.Min, budget.Max)
}

func runLoadoutResolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	resolveAndPrint(cmd, cfg, args)
}

// resolveAndPrint resolves ids against --hull and prints the stat table.
func resolveAndPrint(cmd *cobra.Command, cfg config.Config, ids []string) {
	h, err := hull.Get(flagHull)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available hulls: %s\n", strings.Join(hullIDs(hull.List()), ", "))
		os.Exit(1)
	}

	var budget *modifier.Budget
	if !flagNoBudget {
		b := budgetFor(cmd, cfg)
		budget = &b
	}

	r := modifier.NewResolver(modifier.Default())
	sel := modifier.NewSelection(ids...)
	res, err := r.Resolve(h.Stats, sel, budget)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%s with %d modifiers (%d DP)\n\n", h.Title, len(sel), res.Cost)
	printStats(h.Stats, res.Stats)
}

// printStats prints base and resolved values for every stat.
func printStats(base, resolved modifier.Stats) {
	names := make([]string, 0, len(resolved))
	for k := range resolved {
		names = append(names, k)
	}
	sort.Strings(names)

	maxLen := 4 // "Stat" header
	for _, n := range names {
		if len(n) > maxLen {
			maxLen = len(n)
		}
	}

	fmt.Printf("  %-*s  %10s  %10s\n", maxLen, "Stat", "Base", "Resolved")
	fmt.Printf("  %-*s  %10s  %10s\n", maxLen, "----", "----", "--------")
	for _, n := range names {
		b := "-"
		if v, ok := base[n]; ok {
			b = strconv.FormatFloat(v, 'f', -1, 64)
		}
		fmt.Printf("  %-*s  %10s  %10s\n", maxLen, n, b, strconv.FormatFloat(resolved[n], 'f', -1, 64))
	}
}

func runLoadoutSave(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	name, ids := args[0], args[1:]

	r := modifier.NewResolver(modifier.Default())
	sel := modifier.NewSelection(ids...)
	budget := budgetFor(cmd, cfg)
	if _, err := r.Resolve(nil, sel, &budget); err != nil {
		fail(err)
	}

	store := openStore(cfg)
	defer store.Close()

	cost := r.TotalCost(sel)
	if err := store.SaveLoadout(name, sel.IDs(), cost); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved loadout %q (%d modifiers, %d DP)\n", name, len(sel), cost)
}

func runLoadoutList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	loadouts, err := store.Loadouts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(loadouts) == 0 {
		fmt.Println("No loadouts saved yet.")
		fmt.Println("Run 'byted loadout save <name> <modifier>...' to create one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, l := range loadouts {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-*s  %4s  %-12s  %s\n", maxNameLen, "Name", "DP", "Updated", "Modifiers")
	fmt.Printf("  %-*s  %4s  %-12s  %s\n", maxNameLen, "----", "--", "-------", "---------")
	for _, l := range loadouts {
		fmt.Printf("  %-*s  %4d  %-12s  %s\n",
			maxNameLen, l.Name, l.Cost, l.UpdatedAt.Format("Jan 02 15:04"), strings.Join(l.Modifiers, ", "))
	}
}

func runLoadoutShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	l, err := store.Loadout(args[0])
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loadout %q: %s\n", l.Name, strings.Join(l.Modifiers, ", "))
	resolveAndPrint(cmd, cfg, l.Modifiers)
}

func runLoadoutDelete(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer store.Close()

	if err := store.DeleteLoadout(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted loadout %q\n", args[0])
}

func runLoadoutBrowse(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	loadouts, err := store.Loadouts()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	r := modifier.NewResolver(modifier.Default())
	if err := tui.RunBrowser(loadouts, hull.List(), r, budgetFor(cmd, cfg), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
