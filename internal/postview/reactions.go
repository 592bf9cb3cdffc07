// SPDX-License-Identifier: AGPL-3.0-only
package postview

import (
	"context"
	"fmt"
	"slices"

	"github.com/nordsocial/socialweb/internal/gateway"
)

// Symbols is the fixed reaction set. Every symbol always renders as a
// button, whether or not the post has reactions for it.
var Symbols = []string{"👍", "❤️", "😂", "😮", "😢", "👏"}

// ReactionButton is the view model for one symbol in the grid.
type ReactionButton struct {
	Symbol     string
	Count      int
	CountLabel string // blank at zero, the count otherwise
	Reacted    bool   // the current user is among the reactors
}

type ReactionGrid struct {
	Buttons []ReactionButton
	Total   int
}

// BuildReactionGrid maps a grouped-reaction snapshot onto the fixed symbol
// set. Symbols the snapshot does not mention render with a blank count.
func BuildReactionGrid(reactions []gateway.Reaction, currentUser string) ReactionGrid {
	counts := make(map[string]int, len(reactions))
	mine := make(map[string]bool, len(reactions))
	total := 0
	for _, r := range reactions {
		counts[r.Symbol] = r.Count
		total += r.Count
		if currentUser != "" && slices.Contains(r.Reactors, currentUser) {
			mine[r.Symbol] = true
		}
	}

	buttons := make([]ReactionButton, 0, len(Symbols))
	for _, symbol := range Symbols {
		btn := ReactionButton{
			Symbol:  symbol,
			Count:   counts[symbol],
			Reacted: mine[symbol],
		}
		if btn.Count > 0 {
			btn.CountLabel = fmt.Sprintf("%d", btn.Count)
		}
		buttons = append(buttons, btn)
	}

	return ReactionGrid{Buttons: buttons, Total: total}
}

// ToggleReaction toggles the symbol for the current user, then rebuilds
// the whole grid from a fresh grouped-reaction fetch. The toggle response
// alone is never trusted; the re-fetch snapshot is authoritative. Two
// overlapping toggles on different symbols are not serialized, so the last
// re-fetch to complete wins.
func (r *Reconciler) ToggleReaction(ctx context.Context, token, currentUser string, postID int, symbol string) (*ReactionGrid, error) {
	if !slices.Contains(Symbols, symbol) {
		return nil, fmt.Errorf("unknown reaction symbol %q", symbol)
	}

	if res := r.gw.ToggleReaction(ctx, token, postID, symbol); !res.Ok() {
		return nil, res.Err()
	}

	refreshed := r.gw.GetReactions(ctx, token, postID)
	if !refreshed.Ok() || refreshed.Data == nil {
		if err := refreshed.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to refresh reactions")
	}

	grid := BuildReactionGrid(refreshed.Data.Reactions, currentUser)
	return &grid, nil
}
