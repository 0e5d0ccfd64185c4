package fields

import "github.com/san-kum/emviz/internal/scene"

const (
	colorAxisX scene.Color = 0xff0000
	colorAxisY scene.Color = 0x00ff00
	colorAxisZ scene.Color = 0x0000ff
	colorCoord scene.Color = 0xffaa00

	colorPositive     scene.Color = 0xff4444
	colorPositiveGlow scene.Color = 0xff2222
	colorNegative     scene.Color = 0x4444ff
	colorNegativeGlow scene.Color = 0x2222ff

	colorOutward scene.Color = 0x00ff88
	colorInward  scene.Color = 0xff4444
	colorEquipot scene.Color = 0xffaa00
	colorLattice scene.Color = 0x00ffff
	colorDipole  scene.Color = 0x00aaff
	colorGauss   scene.Color = 0x00ff00

	// magnetostatics
	colorH       scene.Color = 0xffa500
	colorCurrent scene.Color = 0x00aaff
	colorLoopB   scene.Color = 0xff6600
)

// chargeColors returns the body and emissive tint for a charge of the
// given polarity.
func chargeColors(positive bool) (scene.Color, scene.Color) {
	if positive {
		return colorPositive, colorPositiveGlow
	}
	return colorNegative, colorNegativeGlow
}

func chargeSign(positive bool) string {
	if positive {
		return "+"
	}
	return "-"
}
