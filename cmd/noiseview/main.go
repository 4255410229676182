// noiseview shows a noise grid in a window and animates it through z.
//
// Arrows pan, +/- zoom, Space pauses, Esc quits.
package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"litemath/internal/config"
	"litemath/internal/profiling"
	"litemath/pkg/heightmap"
	"litemath/pkg/mathf"
	"litemath/pkg/vecmath"
)

const (
	windowWidth  = 800
	windowHeight = 800

	zSpeed   = 2.0 // lattice units per second
	panSpeed = 0.5 // grid widths per second
	minZoom  = 0.25
	maxZoom  = 4.0
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Config YAML file (empty = use defaults)")
	size := flag.Int("size", 128, "Grid resolution; overrides grid.width and grid.height")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := *config.Cfg()
	cfg.Grid.Width, cfg.Grid.Height = *size, *size
	cfg.Grid.ThreeD = true
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "noiseview", nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	q, err := newQuad()
	if err != nil {
		log.Fatal(err)
	}
	defer q.delete()

	v := &viewer{cfg: cfg, zoom: 1}
	v.regenerate(q)

	gl.ClearColor(0, 0, 0, 1)

	frames := 0
	last := time.Now()
	prev := last
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	var spaceWasDown bool
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(prev).Seconds())
		prev = now

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		spaceDown := window.GetKey(glfw.KeySpace) == glfw.Press
		if spaceDown && !spaceWasDown {
			v.paused = !v.paused
		}
		spaceWasDown = spaceDown

		if v.update(window, dt) {
			v.regenerate(q)
		}
		q.setView(v.view())

		gl.Clear(gl.COLOR_BUFFER_BIT)
		q.draw()

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		select {
		case <-fpsTicker.C:
			elapsed := now.Sub(last).Seconds()
			if elapsed > 0 {
				log.Printf("FPS: %d z=%.2f %s", int(float64(frames)/elapsed+0.5), v.cfg.Grid.Z, profiling.TopN(1))
			}
			profiling.Reset()
			frames = 0
			last = now
		default:
		}
	}
}

type viewer struct {
	cfg    config.Config
	zoom   float32
	paused bool
}

// update applies input and animation; it reports whether the grid must be
// resampled.
func (v *viewer) update(w *glfw.Window, dt float32) bool {
	dirty := false
	if !v.paused && v.cfg.Noise.Source == config.SourceValue {
		v.cfg.Grid.Z += float64(zSpeed * dt)
		dirty = true
	}

	extent := v.cfg.Grid.Step * float64(v.cfg.Grid.Width)
	pan := float64(panSpeed*dt) * extent
	if w.GetKey(glfw.KeyLeft) == glfw.Press {
		v.cfg.Grid.OriginX -= pan
		dirty = true
	}
	if w.GetKey(glfw.KeyRight) == glfw.Press {
		v.cfg.Grid.OriginX += pan
		dirty = true
	}
	if w.GetKey(glfw.KeyUp) == glfw.Press {
		v.cfg.Grid.OriginY += pan
		dirty = true
	}
	if w.GetKey(glfw.KeyDown) == glfw.Press {
		v.cfg.Grid.OriginY -= pan
		dirty = true
	}

	if w.GetKey(glfw.KeyEqual) == glfw.Press || w.GetKey(glfw.KeyKPAdd) == glfw.Press {
		v.zoom = mathf.Clamp(v.zoom*(1+dt), minZoom, maxZoom)
	}
	if w.GetKey(glfw.KeyMinus) == glfw.Press || w.GetKey(glfw.KeyKPSubtract) == glfw.Press {
		v.zoom = mathf.Clamp(v.zoom/(1+dt), minZoom, maxZoom)
	}
	return dirty
}

func (v *viewer) view() vecmath.Mat4 {
	return vecmath.Scale(vecmath.Vec3{v.zoom, v.zoom, 1})
}

func (v *viewer) regenerate(q *quad) {
	stop := profiling.Track("heightmap.Generate")
	g := heightmap.Generate(v.cfg.Source(), v.cfg.Region(), v.cfg.Grid.Workers)
	stop()
	q.upload(g)
}
