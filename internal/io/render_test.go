package io_test

import (
	"bytes"
	"math"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	r3 "gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/io"
	"github.com/ecopia-map/svdag_tiler/internal/svdag"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
)

func TestDepthImageWritePGM(t *testing.T) {
	requireT := require.New(t)

	img := io.NewDepthImage(2, 2)
	img.Row(0)[0] = 1
	img.Row(0)[1] = 3
	img.Row(1)[0] = 2
	// one miss stays at +Inf

	var buf bytes.Buffer
	requireT.NoError(img.WritePGM(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	requireT.Equal("P2", lines[0])
	requireT.Equal("2 2", lines[1])
	requireT.Equal("255", lines[2])
	requireT.Equal("255 1", lines[3])
	requireT.Equal("128 0", lines[4])
}

func TestCameraRayNormalizedAndForward(t *testing.T) {
	requireT := require.New(t)

	eye := r3.Vec{X: 0.5, Y: 0.5, Z: -2}
	camera := io.NewCamera(eye, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, 64, 64)

	ray := camera.RayAt(32, 32)
	requireT.Equal(eye, ray.Origin)
	requireT.InDelta(1.0, r3.Norm(ray.Dir), 1e-9)
	// the central ray points at the target
	requireT.Greater(ray.Dir.Z, 0.99)
}

func TestRenderPipelineFillsImage(t *testing.T) {
	requireT := require.New(t)

	arena, err := svdag.FromSDF(2, func(r3.Vec, float64) bool { return true })
	requireT.NoError(err)

	opts := &tiler.RenderOptions{
		Width:    16,
		Height:   16,
		MaxDist:  1e9,
		MaxDepth: 31,
		Size:     1,
	}
	img := io.NewDepthImage(opts.Width, opts.Height)
	camera := io.NewCamera(r3.Vec{X: 0.5, Y: 0.5, Z: -3}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, opts.Width, opts.Height)

	work := make(chan *io.WorkUnit, 4)
	errs := make(chan error)
	var wg sync.WaitGroup

	wg.Add(1)
	go io.NewStandardProducer().Produce(work, &wg, img)
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go io.NewStandardConsumer(arena, camera, opts).Consume(work, errs, &wg)
	}
	wg.Wait()

	// the central ray hits the front face of the solid cube 3 units away
	center := img.Row(opts.Height / 2)[opts.Width/2]
	requireT.InDelta(3.0, center, 0.05)

	// corners of the image miss the unit cube
	requireT.True(math.IsInf(img.Row(0)[0], 1))
}
