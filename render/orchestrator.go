package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    Screen
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen Screen) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize forces a full repaint on the next frame
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
