package io

import "sync"

// StandardProducer submits one WorkUnit per scanline of the target
// image.
type StandardProducer struct{}

func NewStandardProducer() *StandardProducer {
	return &StandardProducer{}
}

// Submits all scanlines to the work channel and closes it when done.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, img *DepthImage) {
	for y := 0; y < img.Height; y++ {
		work <- &WorkUnit{
			Row:    y,
			Depths: img.Row(y),
		}
	}
	close(work)
	wg.Done()
}
