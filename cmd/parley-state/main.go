// parley-state prints the persisted sidebar width and chat sessions, and can
// reset the width when a bad value keeps the sidebar unusable.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/parley/internal/config"
	"github.com/llehouerou/parley/internal/state"
)

func main() {
	dbPath := flag.String("db", "", "state database (default: XDG data dir)")
	resetWidth := flag.Bool("reset-width", false, "reset the sidebar width to the configured default")
	flag.Parse()

	var (
		mgr *state.Manager
		err error
	)
	if *dbPath != "" {
		mgr, err = state.OpenPath(*dbPath, nil)
	} else {
		mgr, err = state.Open(nil)
	}
	if err != nil {
		log.Fatalf("Failed to open state: %v", err)
	}
	defer mgr.Close()

	if *resetWidth {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		width := cfg.GetSidebarConfig().DefaultWidth
		mgr.SaveSidebarWidth(width)
		log.Printf("Sidebar width reset to %d", width)
		return
	}

	width, ok, err := mgr.GetSidebarWidth()
	switch {
	case err != nil:
		log.Fatalf("Failed to read sidebar width: %v", err)
	case ok:
		log.Printf("Sidebar width: %d cells", width)
	default:
		log.Println("Sidebar width: not saved")
	}

	sessions, err := mgr.GetSessions()
	if err != nil {
		log.Fatalf("Failed to read sessions: %v", err)
	}
	if sessions == nil {
		log.Println("Sessions: none saved")
		return
	}
	log.Printf("Sessions: %d (active: %d)", len(sessions.Sessions), sessions.ActiveIndex)
	now := time.Now()
	for i, s := range sessions.Sessions {
		marker := " "
		if i == sessions.ActiveIndex {
			marker = "*"
		}
		log.Printf(" %s [%d] %s - %s, %s messages (%s)", marker, i, s.Title,
			humanize.RelTime(s.UpdatedAt, now, "ago", "from now"),
			humanize.Comma(int64(s.MessageCount)), s.ID)
	}
}
