package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// NavigateFocus finds the nearest embedded panel in direction from active.
// Candidates must lie in the direction and share a row (left/right) or a
// column (up/down) with active; diagonal panels are never reached. The
// nearest by primary distance wins, ties broken by perpendicular distance
// and then by order in rects.
//
// Returns false when nothing lies in that direction.
func NavigateFocus(
	ctx context.Context,
	active entity.PanelID,
	rects []entity.PanelRect,
	direction NavigateDirection,
) (entity.PanelID, bool) {
	log := logging.FromContext(ctx)

	var activeRect *entity.PanelRect
	for i := range rects {
		if rects[i].PanelID == active {
			activeRect = &rects[i]
			break
		}
	}
	if activeRect == nil {
		log.Debug().Str("panel_id", string(active)).Msg("active panel rect not found")
		return "", false
	}

	candidates := scoreNavigationCandidates(*activeRect, rects, direction)
	if len(candidates) == 0 {
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	log.Debug().
		Str("from", string(active)).
		Str("to", string(candidates[0].panelID)).
		Str("direction", string(direction)).
		Msg("focus navigation")
	return candidates[0].panelID, true
}

type navCandidate struct {
	panelID entity.PanelID
	score   float64
}

func scoreNavigationCandidates(
	activeRect entity.PanelRect,
	rects []entity.PanelRect,
	direction NavigateDirection,
) []navCandidate {
	ac := activeRect.Rect.Center()
	var candidates []navCandidate

	for _, r := range rects {
		if r.PanelID == activeRect.PanelID {
			continue
		}
		c := r.Rect.Center()
		inDirection, primary, perp, overlap := evalDirection(activeRect.Rect, r.Rect, c.X-ac.X, c.Y-ac.Y, direction)
		if !inDirection || !overlap {
			continue
		}
		candidates = append(candidates, navCandidate{panelID: r.PanelID, score: primary*1000 + perp})
	}
	return candidates
}

func evalDirection(
	active, r entity.Rect,
	dx, dy float64,
	direction NavigateDirection,
) (inDirection bool, primaryDist, perpDist float64, hasOverlap bool) {
	vertical := active.Y < r.Bottom() && r.Y < active.Bottom()
	horizontal := active.X < r.Right() && r.X < active.Right()

	switch direction {
	case NavLeft:
		return dx < 0, math.Abs(dx), math.Abs(dy), vertical
	case NavRight:
		return dx > 0, math.Abs(dx), math.Abs(dy), vertical
	case NavUp:
		return dy < 0, math.Abs(dy), math.Abs(dx), horizontal
	case NavDown:
		return dy > 0, math.Abs(dy), math.Abs(dx), horizontal
	default:
		return false, 0, 0, false
	}
}
