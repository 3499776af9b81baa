package main

import (
	"image/color"
	"math"
)

// densityGray maps density to white (empty) through black (1 or more).
func densityGray(d float64) color.RGBA {
	d = min(max(d, 0), 1)
	c := uint8((1 - d) * 255)
	return color.RGBA{R: c, G: c, B: c, A: 0xff}
}

// getSciValue maps val in [minVal, maxVal] onto a blue-cyan-green-yellow-red
// scale.
func getSciValue(val, minVal, maxVal float64) color.RGBA {
	val = min(max(val, minVal), maxVal-0.0001)
	d := maxVal - minVal
	if d <= 0 {
		val = 0.5
	} else {
		val = (val - minVal) / d
	}
	m := 0.25
	num := math.Floor(val / m)
	s := (val - num*m) / m
	var r, g, b float64

	switch num {
	case 0:
		r = 0.0
		g = s
		b = 1.0
	case 1:
		r = 0.0
		g = 1.0
		b = 1.0 - s
	case 2:
		r = s
		g = 1.0
		b = 0.0
	case 3:
		r = 1.0
		g = 1.0 - s
		b = 0.0
	}

	return color.RGBA{
		R: uint8(255 * r),
		G: uint8(255 * g),
		B: uint8(255 * b),
		A: 0xff,
	}
}
