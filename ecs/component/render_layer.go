package component

// RenderLayer is used to sort draw order deterministically. Lower layers draw
// first and end up underneath.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
