package renderers

import (
	"github.com/lixenwraith/singularity/render"
)

// RegisterAll wires the full frame pipeline onto o
func RegisterAll(o *render.RenderOrchestrator, deathLineY float64) {
	painter := render.NewPlanetPainter()

	o.Register(NewWellRenderer(), render.PriorityBackground)
	o.Register(NewDeathLineRenderer(deathLineY), render.PriorityDeathLine)
	o.Register(NewGuideRenderer(painter), render.PriorityGuide)
	o.Register(NewPlanetsRenderer(painter), render.PriorityPlanets)
	o.Register(NewParticlesRenderer(painter), render.PriorityParticle)
	o.Register(NewHUDRenderer(painter), render.PriorityUI)
	o.Register(NewLegendRenderer(painter), render.PriorityLegend)
	o.Register(NewOverlayRenderer(painter), render.PriorityOverlay)
}
