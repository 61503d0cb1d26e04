package io

// WorkUnit is one scanline of a render: the consumer traces a ray per
// pixel of the row and fills the row's slice of the shared depth image.
// Rows never overlap, so consumers write without synchronisation.
type WorkUnit struct {
	Row    int
	Depths []float64
}
