package rimage

import (
	"sync"

	"github.com/chewxy/math32"
)

// Reference white and the linear RGB to XYZ matrix, from
// https://www2.eecs.berkeley.edu/Research/Projects/CS/vision/bsds/code/Util/RGB2Lab.m
const (
	whiteX = 0.950456
	whiteZ = 1.088754

	labThreshold = 0.008856
	labSlope     = 7.787
	labOffset    = 16.0 / 116.0
	labKappa     = 903.3

	gammaThreshold = 0.04045
	gammaExponent  = 2.4
)

// GammaTable maps every 8-bit sRGB channel value to its linear-light value in [0,1].
type GammaTable [256]float32

var (
	defaultGammaOnce  sync.Once
	defaultGammaTable *GammaTable
)

// Linearize gamma-decodes a single 8-bit sRGB channel.
func Linearize(c uint8) float32 {
	v := float32(c) / 255
	if v > gammaThreshold {
		return math32.Pow((v+0.055)/1.055, gammaExponent)
	}
	return v / 12.92
}

// NewGammaTable builds a fresh lookup table.
func NewGammaTable() *GammaTable {
	var table GammaTable
	for i := range table {
		table[i] = Linearize(uint8(i))
	}
	return &table
}

// DefaultGammaTable returns the process-wide table. It is built once and never written again.
func DefaultGammaTable() *GammaTable {
	defaultGammaOnce.Do(func() {
		defaultGammaTable = NewGammaTable()
	})
	return defaultGammaTable
}

func labF(t float32) float32 {
	if t > labThreshold {
		return math32.Cbrt(t)
	}
	return labSlope*t + labOffset
}

// ToLab converts an 8-bit sRGB triple to CIE-LAB. L is in [0,100]; a and b are roughly in
// [-128,127].
func ToLab(r, g, b uint8, table *GammaTable) (float32, float32, float32) {
	lr, lg, lb := table[r], table[g], table[b]

	x := (0.412453*lr + 0.357580*lg + 0.180423*lb) / whiteX
	y := 0.212671*lr + 0.715160*lg + 0.072169*lb
	z := (0.019334*lr + 0.119193*lg + 0.950227*lb) / whiteZ

	fx, fy, fz := labF(x), labF(y), labF(z)
	var l float32
	if y > labThreshold {
		l = 116*fy - 16
	} else {
		l = labKappa * y
	}
	return l, 500 * (fx - fy), 200 * (fy - fz)
}
