package io

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
)

// Camera is a pinhole projection shooting one ray per pixel.
type Camera struct {
	Eye     r3.Vec
	forward r3.Vec
	right   r3.Vec
	up      r3.Vec
	width   int
	height  int
	plane   float64
}

const cameraFovDegrees = 60.0

// NewCamera aims a pinhole camera from eye towards look.
func NewCamera(eye, look r3.Vec, width, height int) *Camera {
	forward := r3.Unit(r3.Sub(look, eye))
	worldUp := r3.Vec{Y: 1}
	if math.Abs(r3.Dot(forward, worldUp)) > 0.999 {
		worldUp = r3.Vec{Z: 1}
	}
	right := r3.Unit(r3.Cross(forward, worldUp))
	up := r3.Cross(right, forward)
	return &Camera{
		Eye:     eye,
		forward: forward,
		right:   right,
		up:      up,
		width:   width,
		height:  height,
		plane:   1 / math.Tan(cameraFovDegrees/2*math.Pi/180),
	}
}

// RayAt returns the ray through pixel (x, y).
func (c *Camera) RayAt(x, y int) svdag.Ray {
	aspect := float64(c.width) / float64(c.height)
	u := (2*(float64(x)+0.5)/float64(c.width) - 1) * aspect
	v := 1 - 2*(float64(y)+0.5)/float64(c.height)
	dir := r3.Add(r3.Scale(c.plane, c.forward), r3.Add(r3.Scale(u, c.right), r3.Scale(v, c.up)))
	return svdag.Ray{Origin: c.Eye, Dir: r3.Unit(dir)}
}

// StandardConsumer traces the rays of submitted scanlines against a
// shared immutable arena. Any number of consumers may run concurrently;
// traversal is read-only and rows never overlap.
type StandardConsumer struct {
	arena  *svdag.Arena
	camera *Camera
	opts   *tiler.RenderOptions
}

func NewStandardConsumer(arena *svdag.Arena, camera *Camera, opts *tiler.RenderOptions) *StandardConsumer {
	return &StandardConsumer{
		arena:  arena,
		camera: camera,
		opts:   opts,
	}
}

// Continually consumes WorkUnits submitted to the work channel, filling
// scanlines until the channel is closed by the producer.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, wg *sync.WaitGroup) {
	defer wg.Done()
	corner := r3.Vec{X: c.opts.Corner[0], Y: c.opts.Corner[1], Z: c.opts.Corner[2]}
	for work := range workchan {
		for x := range work.Depths {
			ray := c.camera.RayAt(x, work.Row)
			hit, ok := svdag.Traverse(c.arena, ray, corner, c.opts.Size, c.opts.MaxDepth, c.opts.MaxDist)
			if ok {
				work.Depths[x] = hit.Distance
			}
		}
	}
}
