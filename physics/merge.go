package physics

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/lixenwraith/singularity/constants"
	"github.com/lixenwraith/singularity/planet"
)

// resolve applies the merge rule to a contact batch in arrival order. A body consumed by an
// earlier pair in the batch is skipped, so one body takes part in at most one merge per step
func (w *World) resolve(contacts []contact, now time.Time) []MergeResult {
	if len(contacts) == 0 {
		return nil
	}

	var merges []MergeResult
	for _, c := range contacts {
		if c.a == c.b || c.a.removed || c.b.removed || c.a.Rank != c.b.Rank {
			continue
		}
		next, ok := planet.Next(c.a.Rank)
		if !ok {
			continue
		}

		pa, pb := c.a.Position(), c.b.Position()
		mid := cp.Vector{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}

		w.remove(c.a)
		w.remove(c.b)
		produced := w.AddPlanet(next.ID, mid, now, constants.MergeFriction)

		merges = append(merges, MergeResult{
			Consumed: c.a.Rank,
			Produced: next.ID,
			X:        mid.X,
			Y:        mid.Y,
			Body:     produced,
		})
	}
	return merges
}
