package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/rig"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	moveSpeed = 3.0 // units per second
	turnSpeed = 1.5 // radians per second
)

type Game struct {
	frames int
	rig    *rig.Rig
	log    zerolog.Logger
}

func NewGame(scenePath string, log zerolog.Logger) (*Game, error) {
	r, err := rig.New(scenePath, log)
	if err != nil {
		return nil, err
	}
	g := &Game{rig: r, log: log}
	g.matchAspect()
	r.SignalReady()
	return g, nil
}

func (g *Game) Close() error {
	return g.rig.Close()
}

// matchAspect makes the fit math agree with the window it is drawn into.
func (g *Game) matchAspect() {
	if cam, ok := ecs.Get(g.rig.World, g.rig.Scene.Camera, component.CameraComponent.Kind()); ok {
		cam.Aspect = float64(baseWidth) / float64(baseHeight)
	}
}

func (g *Game) Update() error {
	g.frames++
	dt := time.Second / time.Duration(ebiten.TPS())

	g.handleInput(dt.Seconds())

	scene := g.rig.Scene
	g.rig.Tick(dt)
	if g.rig.Scene != scene {
		// the reload tick solved with the yaml aspect
		g.matchAspect()
		g.rig.TriggerFit(0)
	}
	return nil
}

func (g *Game) handleInput(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.rig.TriggerFit(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rig.ReloadCamera()
	}

	t, ok := ecs.Get(g.rig.World, g.rig.Scene.Camera, component.TransformComponent.Kind())
	if !ok {
		return
	}

	forward := t.Rotation.Rotate(placement.Forward)
	right := t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	up := mgl64.Vec3{0, 1, 0}
	var move mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move = move.Add(forward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move = move.Sub(forward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move = move.Add(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move = move.Sub(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		move = move.Add(up)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		move = move.Sub(up)
	}
	if move.LenSqr() > 0 {
		t.Position = t.Position.Add(move.Normalize().Mul(moveSpeed * dt))
	}

	// yaw turns about world up, pitch about the camera's own x axis
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		t.Rotation = mgl64.QuatRotate(turnSpeed*dt, up).Mul(t.Rotation)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		t.Rotation = mgl64.QuatRotate(-turnSpeed*dt, up).Mul(t.Rotation)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		t.Rotation = t.Rotation.Mul(mgl64.QuatRotate(turnSpeed*dt, mgl64.Vec3{1, 0, 0}))
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		t.Rotation = t.Rotation.Mul(mgl64.QuatRotate(-turnSpeed*dt, mgl64.Vec3{1, 0, 0}))
	}
	t.Rotation = t.Rotation.Normalize()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	view, ok := newViewport(g.rig, float64(baseWidth), float64(baseHeight))
	if ok {
		for _, s := range g.rig.Snapshot() {
			if !s.HasBox {
				continue
			}
			mesh, ok := ecs.Get(g.rig.World, s.Entity, component.MeshComponent.Kind())
			if !ok {
				continue
			}
			clr := entityColor(g.rig.World, s.Entity)
			drawWireBox(screen, view, placement.Box{Min: mesh.Min, Max: mesh.Max}, worldMatrix(g.rig, s.Entity), clr)
			if x, y, ok := view.project(s.Position); ok {
				ebitenutil.DebugPrintAt(screen, s.Name, int(x)+4, int(y)+4)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    scene: %s", g.frames, ebiten.ActualFPS(), g.rig.Scene.Name), 8, 8)
	ebitenutil.DebugPrintAt(screen, "WASD/QE move  arrows turn  F refit  R reload camera", 8, 24)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func entityColor(w *ecs.World, e ecs.Entity) color.Color {
	switch {
	case ecs.Has(w, e, component.FitIntoViewComponent.Kind()):
		return colornames.Orange
	case ecs.Has(w, e, component.FollowCameraComponent.Kind()):
		return colornames.Lime
	case ecs.Has(w, e, component.AutoPositionComponent.Kind()):
		return colornames.Violet
	case ecs.Has(w, e, component.AutoScaleComponent.Kind()):
		return colornames.Gold
	case ecs.Has(w, e, component.BillboardComponent.Kind()):
		return colornames.Skyblue
	}
	return colornames.Lightgray
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func drawWireBox(screen *ebiten.Image, view viewport, local placement.Box, model mgl64.Mat4, clr color.Color) {
	corners := local.Corners()
	for _, edge := range boxEdges {
		a := mgl64.TransformCoordinate(corners[edge[0]], model)
		b := mgl64.TransformCoordinate(corners[edge[1]], model)
		x0, y0, ok0 := view.project(a)
		x1, y1, ok1 := view.project(b)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, clr, true)
	}
}
