package mandelbrot

import (
	"fmt"
	"sync"
	"time"

	"InteractiveMandelbrot/task"
)

// RenderStats summarises one render pass.
type RenderStats struct {
	Elapsed time.Duration
	Escaped uint
	InSet   uint
	Pixels  uint
}

func (rs *RenderStats) String() string {
	output := "{RenderStats "
	output += fmt.Sprintf("Pixels: %d ", rs.Pixels)
	output += fmt.Sprintf("InSet: %d ", rs.InSet)
	output += fmt.Sprintf("Escaped: %d ", rs.Escaped)
	output += fmt.Sprintf("Elapsed: %s}", rs.Elapsed)
	return output
}

func (rs *RenderStats) record(result IterationResult) {
	rs.Pixels++
	if result.InSet() {
		rs.InSet++
	} else {
		rs.Escaped++
	}
}

func (rs *RenderStats) merge(other RenderStats) {
	rs.Pixels += other.Pixels
	rs.InSet += other.InSet
	rs.Escaped += other.Escaped
}

// Render scans every pixel of a width x height surface column by column, classifies the plane point it
// shows and paints it with colorer. Pixels the colorer skips are left as they were.
// A zero width, height or maxIterations renders nothing.
func Render(viewport Viewport, surface RasterSurface, width uint, height uint, maxIterations uint32, colorer Colorer) (RenderStats, error) {
	var stats RenderStats
	if width == 0 || height == 0 || maxIterations == 0 {
		return stats, nil
	}
	if err := viewport.Verify(); err != nil {
		return stats, err
	}

	startTime := time.Now()
	var x, y uint
	for x = 0; x < width; x++ {
		for y = 0; y < height; y++ {
			stats.record(renderPixel(x, y, viewport, surface, width, height, maxIterations, colorer))
		}
	}
	stats.Elapsed = time.Since(startTime)

	return stats, nil
}

// RenderTasks renders the same raster as Render but cuts it into disjoint tasks shared by workers
// goroutines. Workers only read the viewport and only write the pixels of their own task.
// With one worker or fewer it is Render.
func RenderTasks(viewport Viewport, surface RasterSurface, width uint, height uint, maxIterations uint32, colorer Colorer, generation task.Generation, workers int) (RenderStats, error) {
	if workers <= 1 {
		return Render(viewport, surface, width, height, maxIterations, colorer)
	}

	var stats RenderStats
	if width == 0 || height == 0 || maxIterations == 0 {
		return stats, nil
	}
	if err := viewport.Verify(); err != nil {
		return stats, err
	}

	tasks, err := task.Partition(generation, width, height)
	if err != nil {
		return stats, err
	}

	startTime := time.Now()
	tasksTodo := make(chan task.Task, len(tasks))
	for _, t := range tasks {
		tasksTodo <- t
	}
	close(tasksTodo)

	var mutex sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var local RenderStats
			for t := range tasksTodo {
				for _, coordinate := range t.Coordinates {
					local.record(renderPixel(coordinate.Column, coordinate.Row, viewport, surface, width, height, maxIterations, colorer))
				}
			}

			mutex.Lock()
			stats.merge(local)
			mutex.Unlock()
		}()
	}
	wg.Wait()
	stats.Elapsed = time.Since(startTime)

	return stats, nil
}

func renderPixel(x uint, y uint, viewport Viewport, surface RasterSurface, width uint, height uint, maxIterations uint32, colorer Colorer) IterationResult {
	c := mapToPlane(float64(x), float64(y), viewport, width, height)
	result := Classify(c, maxIterations)
	if pixelColor, paint := colorer.Color(result, maxIterations); paint {
		surface.SetPixel(int(x), int(y), pixelColor)
	}
	return result
}
