package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstMature    BookmarkType = "first_mature"    // First fern reached its height cap
	BookmarkFirstDeath     BookmarkType = "first_death"     // First fern reached its age cap
	BookmarkFernDieOff     BookmarkType = "fern_die_off"    // Every fern is dead
	BookmarkFrogsSettled   BookmarkType = "frogs_settled"   // Every frog rests on the floor
	BookmarkSwarmDispersed BookmarkType = "swarm_dispersed" // Fly spread doubled since the first window
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Seed        uint64       `csv:"seed"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"seed", b.Seed,
		"description", b.Description,
	)
}

// BookmarkDetector flags pond milestones. Each milestone fires at most once
// per run; Reset re-arms them after a reseed.
type BookmarkDetector struct {
	fired map[BookmarkType]bool

	// Fly spread from the first window, used as the dispersal baseline
	baseSpread float64
	haveBase   bool
}

// NewBookmarkDetector creates a detector with every milestone armed.
func NewBookmarkDetector() *BookmarkDetector {
	return &BookmarkDetector{fired: make(map[BookmarkType]bool)}
}

// Reset re-arms every milestone.
func (bd *BookmarkDetector) Reset() {
	bd.fired = make(map[BookmarkType]bool)
	bd.baseSpread = 0
	bd.haveBase = false
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark
	add := func(t BookmarkType, desc string) {
		if bd.fired[t] {
			return
		}
		bd.fired[t] = true
		bookmarks = append(bookmarks, Bookmark{
			Type:        t,
			Tick:        stats.WindowEndTick,
			Seed:        stats.Seed,
			Description: desc,
		})
	}

	if stats.FernsAdult > 0 || stats.FernsMatured > 0 {
		add(BookmarkFirstMature, fmt.Sprintf("%d adult ferns", stats.FernsAdult))
	}
	if stats.FernsDead > 0 {
		add(BookmarkFirstDeath, fmt.Sprintf("%d dead ferns", stats.FernsDead))
	}
	if stats.Ferns > 0 && stats.FernsDead == stats.Ferns {
		add(BookmarkFernDieOff, fmt.Sprintf("all %d ferns dead", stats.Ferns))
	}
	if stats.Frogs > 0 && stats.FrogsResting == stats.Frogs {
		add(BookmarkFrogsSettled, fmt.Sprintf("all %d frogs resting", stats.Frogs))
	}

	spread := (stats.FlySpreadX + stats.FlySpreadY) / 2
	if !bd.haveBase {
		bd.baseSpread = spread
		bd.haveBase = stats.Flies > 0
	} else if bd.baseSpread > 0 && spread >= 2*bd.baseSpread {
		add(BookmarkSwarmDispersed, fmt.Sprintf("fly spread %.1f (from %.1f)", spread, bd.baseSpread))
	}

	return bookmarks
}
