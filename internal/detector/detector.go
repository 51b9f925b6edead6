// Package detector decides which games changed in a way worth telling the
// user about, by diffing each poll's game list against the previous snapshot.
package detector

import (
	"github.com/iammaxlichter/SportScanner/internal/domain"
	"github.com/iammaxlichter/SportScanner/internal/ids"
	"github.com/iammaxlichter/SportScanner/internal/store"
)

// Detector compares poll results against the snapshot store and advances it.
type Detector struct {
	ids   *ids.Registry
	store *store.SnapshotStore
}

// New constructs a Detector over the given snapshot store.
func New(registry *ids.Registry, snapshots *store.SnapshotStore) *Detector {
	return &Detector{ids: registry, store: snapshots}
}

// Detect returns the subset of next whose score or phase materially changed
// since the previous snapshot, preserving next's order, then replaces the
// snapshot with next unconditionally.
//
// A game with no previous entry at its key is skipped: the first poll after
// startup seeds the baseline silently, and only later polls can emit changes.
// An empty next empties the snapshot without emitting anything.
func (d *Detector) Detect(next []domain.Game) []domain.Game {
	changes := make([]domain.Game, 0)
	byKey := make(map[string]domain.Game, len(next))

	for _, g := range next {
		key := d.ids.GameKey(g)
		if prev, ok := d.store.GameByKey(key); ok && meaningful(prev, g) {
			changes = append(changes, g)
		}
		byKey[key] = g
	}

	d.store.Replace(next, byKey)
	return changes
}

// meaningful reports whether the transition from prev to next warrants a
// notification: a score change on either side, going live, or going final.
// Clock and situational-field movement alone never qualifies, otherwise every
// game tick would notify.
func meaningful(prev, next domain.Game) bool {
	if prev.Home.Score != next.Home.Score || prev.Away.Score != next.Away.Score {
		return true
	}
	wentLive := next.Status.Phase == domain.PhaseLive && prev.Status.Phase != domain.PhaseLive
	wentFinal := next.Status.Phase == domain.PhaseFinal && prev.Status.Phase != domain.PhaseFinal
	return wentLive || wentFinal
}
