package core

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

const builtinSpriteSize = 64

// BuiltinSpriteNames lists the sprites BuiltinSprite can generate.
var BuiltinSpriteNames = []string{"soft", "ring", "star", "spark"}

// DefaultSpritePaths is the builtin sprite set used when no files are configured.
func DefaultSpritePaths() []string {
	paths := make([]string, len(BuiltinSpriteNames))
	for i, n := range BuiltinSpriteNames {
		paths[i] = BuiltinSpritePrefix + n
	}
	return paths
}

// BuiltinSprite renders a white-on-black mask; the burst shader reads the red channel.
func BuiltinSprite(name string, size int) (*image.RGBA, error) {
	var shape func(x, y float64) float64
	switch name {
	case "soft":
		shape = func(x, y float64) float64 {
			return 1 - smoothstep(0, 1, math.Hypot(x, y))
		}
	case "ring":
		shape = func(x, y float64) float64 {
			d := math.Abs(math.Hypot(x, y) - 0.6)
			return 1 - smoothstep(0, 0.25, d)
		}
	case "star":
		shape = func(x, y float64) float64 {
			d := math.Hypot(x, y)
			arms := math.Pow(math.Abs(math.Cos(2*math.Atan2(y, x))), 8)
			return (1 - smoothstep(0, 1, d)) * (0.35 + 0.65*arms)
		}
	case "spark":
		shape = func(x, y float64) float64 {
			cross := math.Max(1-smoothstep(0, 0.12, math.Abs(x)), 1-smoothstep(0, 0.12, math.Abs(y)))
			return cross * (1 - smoothstep(0.2, 1, math.Hypot(x, y)))
		}
	default:
		return nil, fmt.Errorf("unknown builtin sprite %q", name)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x := (float64(px) + 0.5 - half) / half
			y := (float64(py) + 0.5 - half) / half
			v := uint8(math.Round(clamp64(shape(x, y), 0, 1) * 255))
			img.SetRGBA(px, py, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img, nil
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp64((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
