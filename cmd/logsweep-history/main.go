package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"logsweep/internal/exitcodes"
	"logsweep/internal/history"
)

func main() {
	// Parse command-line flags
	dbPath := flag.String("db", "", "Path to removal history database (required)")
	recent := flag.Int("recent", 0, "Show N most recent removal events")
	stats := flag.Bool("stats", false, "Show removal statistics")
	action := flag.String("action", "", "Filter by action (REMOVE, SKIP, ERROR)")
	pattern := flag.String("pattern", "", "Filter by the pattern that claimed the file")
	days := flag.Int("days", 30, "Number of days for statistics (default: 30)")
	jsonOutput := flag.Bool("json", false, "Output in JSON format")
	flag.Parse()

	if *dbPath == "" {
		flag.Usage()
		os.Exit(exitcodes.InvalidConfig)
	}

	// Open database
	db, err := history.New(*dbPath)
	if err != nil {
		log.Fatalf("ERROR: Failed to open database %s: %v", *dbPath, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()

	// Handle different query modes
	switch {
	case *stats:
		showStats(db, *days, *jsonOutput)
	case *recent > 0:
		showRecent(db, *recent, *jsonOutput)
	case *action != "":
		showByAction(db, *action, *jsonOutput)
	case *pattern != "":
		showByPattern(db, *pattern, *jsonOutput)
	default:
		flag.Usage()
		fmt.Println("\nExamples:")
		fmt.Println("  logsweep-history --db sweep.db --recent 10        # Show 10 most recent events")
		fmt.Println("  logsweep-history --db sweep.db --stats            # Show removal statistics")
		fmt.Println("  logsweep-history --db sweep.db --action REMOVE    # Show only removals")
		fmt.Println("  logsweep-history --db sweep.db --pattern '*.log'  # Show files claimed by *.log")
		os.Exit(exitcodes.InvalidConfig)
	}
}

func showStats(db *history.DB, days int, jsonOutput bool) {
	stats, err := db.GetStats(days)
	if err != nil {
		log.Fatalf("ERROR: Failed to get statistics: %v", err)
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Removal Statistics (Last %d days)\n", days)
	fmt.Printf("Period: %s to %s\n\n", stats.StartDate.Format("2006-01-02"), stats.EndDate.Format("2006-01-02"))
	fmt.Printf("Total Removed:  %d\n", stats.TotalRemoved)
	fmt.Printf("Total Skipped:  %d\n", stats.TotalSkipped)
	fmt.Printf("Total Errors:   %d\n", stats.TotalErrors)
	fmt.Printf("Space Freed:    %s\n\n", formatBytes(stats.TotalBytes))

	if len(stats.ByPattern) > 0 {
		fmt.Println("By Pattern:")
		for pattern, count := range stats.ByPattern {
			fmt.Printf("  %-20s %d\n", pattern, count)
		}
	}
}

func showRecent(db *history.DB, limit int, jsonOutput bool) {
	records, err := db.Recent(limit)
	if err != nil {
		log.Fatalf("ERROR: Failed to get recent events: %v", err)
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(data))
		return
	}

	printRecords(records)
}

func showByAction(db *history.DB, action string, jsonOutput bool) {
	records, err := db.ByAction(action)
	if err != nil {
		log.Fatalf("ERROR: Failed to query by action: %v", err)
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Events with action: %s\n\n", action)
	printRecords(records)
}

func showByPattern(db *history.DB, pattern string, jsonOutput bool) {
	records, err := db.ByPattern(pattern)
	if err != nil {
		log.Fatalf("ERROR: Failed to query by pattern: %v", err)
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Events for pattern: %s\n\n", pattern)
	printRecords(records)
}

func printRecords(records []history.Record) {
	if len(records) == 0 {
		fmt.Println("No matching events found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tACTION\tFILE\tPATTERN\tSIZE\tERROR")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Action,
			r.FileName,
			r.Pattern,
			formatBytes(r.Size),
			r.ErrorMessage,
		)
	}
	w.Flush()
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
