package pkg

import (
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ecopia-map/svdag_tiler/internal/io"
	"github.com/ecopia-map/svdag_tiler/internal/tiler"
	"github.com/ecopia-map/svdag_tiler/tools"
)

// RunRender casts one ray per pixel against an immutable arena through
// the producer/consumer pipeline and writes the depth map as PGM. The
// arena is shared read-only between all consumer goroutines.
func RunRender(opts *tiler.Options) error {
	renderOpts := opts.RenderOptions

	arena, err := ReadArenaFile(opts.Input)
	if err != nil {
		return err
	}

	img := io.NewDepthImage(renderOpts.Width, renderOpts.Height)
	camera := io.NewCamera(
		r3.Vec{X: renderOpts.Eye[0], Y: renderOpts.Eye[1], Z: renderOpts.Eye[2]},
		r3.Vec{X: renderOpts.Look[0], Y: renderOpts.Look[1], Z: renderOpts.Look[2]},
		renderOpts.Width, renderOpts.Height,
	)

	// a consumer goroutine per CPU
	numConsumers := runtime.NumCPU()
	workChannel := make(chan *io.WorkUnit, numConsumers*5)
	errorChannel := make(chan error)

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	producer := io.NewStandardProducer()
	go producer.Produce(workChannel, &waitGroup, img)

	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := io.NewStandardConsumer(arena, camera, renderOpts)
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	waitGroup.Wait()
	close(errorChannel)
	for consumeErr := range errorChannel {
		if consumeErr != nil {
			return consumeErr
		}
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return errors.Wrapf(err, "create %s", opts.Output)
	}
	defer out.Close()
	if err := img.WritePGM(out); err != nil {
		return errors.Wrapf(err, "write %s", opts.Output)
	}

	tools.LogOutput("> rendered", renderOpts.Width, "x", renderOpts.Height, "depth map to", opts.Output)
	return nil
}
