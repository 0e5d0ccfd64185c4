package gui

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
)

func TestOrbitDelta(t *testing.T) {
	left, up := orbitDelta(720, 360, 720)
	assert.InDelta(t, 2*math.Pi, left, 1e-5)
	assert.InDelta(t, math.Pi, up, 1e-5)

	left, up = orbitDelta(10, 10, 0)
	assert.Zero(t, left)
	assert.Zero(t, up)
}

func TestWheelDolly(t *testing.T) {
	assert.Equal(t, 1.0, wheelDolly(0))
	assert.Less(t, wheelDolly(1), 1.0, "scrolling up zooms in")
	assert.Greater(t, wheelDolly(-1), 1.0)
}

func TestLabelAlpha(t *testing.T) {
	assert.Equal(t, uint8(255), labelAlpha(2))
	assert.Equal(t, uint8(80), labelAlpha(40))
	assert.Greater(t, labelAlpha(10), labelAlpha(15))
}

func TestTint(t *testing.T) {
	dev := scene.NewTracker()

	plain := dev.NewMaterial(scene.Basic(0x102030))
	c := tint(plain)
	assert.Equal(t, [4]uint8{0x10, 0x20, 0x30, 255}, [4]uint8{c.R, c.G, c.B, c.A})

	glass := dev.NewMaterial(scene.MaterialSpec{Color: 0xffffff, Opacity: 0.5, Transparent: true})
	assert.Equal(t, uint8(127), tint(glass).A)

	glow := dev.NewMaterial(scene.MaterialSpec{Color: 0xf00000, Emissive: 0xff0000, EmissiveIntensity: 1, Opacity: 1})
	assert.Equal(t, uint8(255), tint(glow).R, "emissive saturates")
}

func TestApp_SliderReloads(t *testing.T) {
	a := NewApp(config.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Equal(t, catalog.Electrostatics, a.Category)
	require.Equal(t, -1, a.Selected)

	a.load(0)
	require.Equal(t, lifecycle.Active, a.mgr.State())
	before := a.mgr.Active()

	a.step(1)
	assert.Equal(t, 1.1, a.Params.Charge)
	assert.NotSame(t, before, a.mgr.Active())
	assert.Equal(t, 1, a.root.Len())

	a.setCategory(catalog.Magnetostatics)
	assert.Equal(t, lifecycle.Empty, a.mgr.State())
	assert.Zero(t, a.dev.Live())

	for i := 0; i < 100; i++ {
		a.step(-1)
	}
	assert.Equal(t, config.MinCurrent, a.Params.Current)
}
