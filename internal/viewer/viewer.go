// Package viewer runs the interactive ocean window: input, simulation step,
// upload and draw, once per frame.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/oceanwaves/internal/config"
	"github.com/Faultbox/oceanwaves/internal/engine/camera"
	"github.com/Faultbox/oceanwaves/internal/engine/debug"
	"github.com/Faultbox/oceanwaves/internal/engine/input"
	"github.com/Faultbox/oceanwaves/internal/engine/mesh"
	"github.com/Faultbox/oceanwaves/internal/engine/renderer"
	"github.com/Faultbox/oceanwaves/internal/engine/scene"
	"github.com/Faultbox/oceanwaves/internal/engine/water"
	"github.com/Faultbox/oceanwaves/internal/engine/window"
	"github.com/Faultbox/oceanwaves/internal/logger"
)

// Radians per second while an arrow key is held.
const orbitSpeed = 1.2

// Viewer is the interactive ocean application.
type Viewer struct {
	config   *config.Config
	running  bool
	paused   bool
	simTime  float64
	log      *zap.Logger
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	ocean    *water.Ocean
	surface  *scene.OceanRenderer
	shots    *debug.ScreenshotCapture

	screenshotPending bool
}

// New builds the simulation, opens the window and uploads the initial mesh.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Build the ocean first so a bad configuration never opens a window.
	var err error
	v.ocean, err = water.New(cfg.OceanParams(), logger.Named("ocean"))
	if err != nil {
		return nil, fmt.Errorf("failed to create ocean: %w", err)
	}
	v.ocean.Update(0)

	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		Wireframe: cfg.Window.Wireframe,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.surface, err = scene.NewOceanRenderer(v.ocean.Vertices(), v.ocean.Indices())
	if err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("failed to create ocean renderer: %w", err)
	}

	v.input = input.New()
	v.shots = debug.NewScreenshotCapture(cfg.Window.ScreenshotDir, "ocean")
	v.camera = camera.NewOrbitCamera()
	v.camera.FitToBounds(mesh.ComputeBounds(v.ocean.Vertices()))

	v.log.Info("viewer initialized")
	return v, nil
}

// Close releases GPU and window resources.
func (v *Viewer) Close() {
	if v.surface != nil {
		v.surface.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// Run starts the main loop and returns when the window is closed or ESC is
// pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		v.update(dt)
		v.render()
		if v.screenshotPending {
			v.screenshotPending = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := v.ocean.HeightStats()
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float64("simTime", v.simTime),
				zap.Float64("variance", stats.Variance),
			)
			v.window.SetTitle(fmt.Sprintf("%s - %d fps", v.config.Window.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			// Event sizes are in window coordinates, not pixels.
			v.renderer.Resize(v.window.Size())
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_W:
				v.renderer.SetWireframe(!v.renderer.Wireframe())
			case sdl.SCANCODE_F12:
				v.screenshotPending = true
			case sdl.SCANCODE_SPACE:
				v.paused = !v.paused
				v.log.Debug("simulation paused", zap.Bool("paused", v.paused))
			case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
				v.camera.HandleZoom(1)
			case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
				v.camera.HandleZoom(-1)
			}
		}
	}
}

func (v *Viewer) update(dt float64) {
	keys := sdl.GetKeyboardState()
	step := float32(orbitSpeed * dt)
	var dYaw, dPitch float32
	if keys[sdl.SCANCODE_LEFT] != 0 {
		dYaw -= step
	}
	if keys[sdl.SCANCODE_RIGHT] != 0 {
		dYaw += step
	}
	if keys[sdl.SCANCODE_UP] != 0 {
		dPitch += step
	}
	if keys[sdl.SCANCODE_DOWN] != 0 {
		dPitch -= step
	}
	if dYaw != 0 || dPitch != 0 {
		v.camera.HandleOrbit(dYaw, dPitch)
	}
	v.camera.Update(float32(dt))

	if v.paused {
		return
	}
	v.simTime += dt
	v.ocean.Update(v.simTime)
	v.surface.Update(v.ocean.Vertices())
}

func (v *Viewer) render() {
	v.renderer.Begin()
	v.surface.Render(v.camera.ViewProjection(v.renderer.Aspect()), v.camera.Position())
	v.renderer.End()
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
