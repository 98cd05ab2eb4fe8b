package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/engine"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

var classNames = map[arena.Class]string{
	arena.ClassObjectHeader:      "ObjectHeader",
	arena.ClassProperty:          "Property",
	arena.ClassPropList:          "PropList",
	arena.ClassString:            "String",
	arena.ClassSymbol:            "Symbol",
	arena.ClassBigInt:            "BigInt",
	arena.ClassExtendedPrimitive: "ExtendedPrimitive",
	arena.ClassArrayElements:     "ArrayElements",
	arena.ClassArrayBuffer:       "ArrayBuffer",
	arena.ClassModuleRecord:      "ModuleRecord",
	arena.ClassPromiseReaction:   "PromiseReaction",
	arena.ClassNativeInfo:        "NativeInfo",
	arena.ClassMisc:              "Misc",
}

type classRow struct {
	class string
	count int
	bytes int
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show heap occupancy by cell class",
		Long: `The stats command creates a fresh engine context (which bootstraps a
primordial realm's global object) and prints the resulting heap occupancy
broken down by cell class — the same shape a live-embedding snapshot
inspector would report.

Example:
  jerryinspect stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	printVerbose("initializing engine context\n")
	ctx := engine.Init(engine.Config{})
	defer ctx.Cleanup()

	rows := collectStats(ctx.Arena)
	printStatsTable(rows)
	return nil
}

func collectStats(a *arena.Arena) []classRow {
	counts := make(map[arena.Class]int)
	bytes := make(map[arena.Class]int)

	for _, ref := range a.LiveRefs() {
		cls, ok := a.ClassOf(ref)
		if !ok {
			continue
		}
		counts[cls]++
		bytes[cls] += len(a.Payload(ref))
	}

	rows := make([]classRow, 0, len(counts))
	for cls, n := range counts {
		name, ok := classNames[cls]
		if !ok {
			name = fmt.Sprintf("class(%d)", cls)
		}
		rows = append(rows, classRow{class: name, count: n, bytes: bytes[cls]})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].bytes > rows[j].bytes })
	return rows
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4682B4"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func printStatsTable(rows []classRow) {
	if jsonOut {
		printJSONStats(rows)
		return
	}
	printInfo("%s\n", headerStyle.Render(fmt.Sprintf("%-20s %8s %10s", "CLASS", "CELLS", "BYTES")))
	total := 0
	for _, r := range rows {
		printInfo("%-20s %8d %10d\n", r.class, r.count, r.bytes)
		total += r.bytes
	}
	printInfo("%s\n", mutedStyle.Render(fmt.Sprintf("total: %d bytes across %d classes", total, len(rows))))
}

func printJSONStats(rows []classRow) {
	printInfo("[")
	for i, r := range rows {
		if i > 0 {
			printInfo(",")
		}
		printInfo(`{"class":%q,"cells":%d,"bytes":%d}`, r.class, r.count, r.bytes)
	}
	printInfo("]\n")
}
