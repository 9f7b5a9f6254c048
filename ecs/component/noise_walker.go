package component

// NoiseWalker positions its entity by sampling a shared 1D noise field at two
// independent cursors, one per axis. Keeping the cursors far apart stops the
// axes from tracking each other.
type NoiseWalker struct {
	XOffset float64
	YOffset float64
	Step    float64

	// Positioned is false until the first update has written the transform.
	Positioned bool
}

var NoiseWalkerComponent = NewComponent[NoiseWalker]()
