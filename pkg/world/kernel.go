package world

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// gaussianKernel1D returns normalized sample weights of a zero-mean
// Gaussian with the given standard deviation, truncated at radius cells
// on either side of the center.
func gaussianKernel1D(sigma float64, radius int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range weights {
		x := float64(i - radius)
		weights[i] = dist.Prob(x)
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// gaussianBlur applies a separable 2-D Gaussian blur to grid, using
// reflected edge padding, matching scipy.ndimage.gaussian_filter's
// default boundary handling closely enough for occupancy-belief purposes.
func gaussianBlur(grid [][]float64, sigma float64) [][]float64 {
	if len(grid) == 0 {
		return nil
	}
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	kernel := gaussianKernel1D(sigma, radius)

	rows := len(grid)
	cols := len(grid[0])

	horizontal := newGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * grid[y][reflectIndex(x+k, cols)]
			}
			horizontal[y][x] = acc
		}
	}

	vertical := newGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * horizontal[reflectIndex(y+k, rows)][x]
			}
			vertical[y][x] = acc
		}
	}

	return vertical
}

// reflectIndex maps an out-of-range index back into [0,n) by reflecting
// at the boundaries, so a blur near the edge of the grid does not treat
// the outside as zero.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

func newGrid(rows, cols int) [][]float64 {
	grid := make([][]float64, rows)
	for y := range grid {
		grid[y] = make([]float64, cols)
	}
	return grid
}

// obstacleKernelSize is the side length of the additive obstacle bump.
const obstacleKernelSize = 7

// obstacleKernelSigma is the blur spread used to build the bump.
const obstacleKernelSigma = 2.0

// obstacleKernel builds the 7x7 additive bump placed at every obstacle
// observation: a single 1.0 spike, Gaussian-blurred, scaled by 100.
func obstacleKernel() [][]float64 {
	kernel := newGrid(obstacleKernelSize, obstacleKernelSize)
	kernel[obstacleKernelSize/2][obstacleKernelSize/2] = 1.0
	kernel = gaussianBlur(kernel, obstacleKernelSigma)
	for y := range kernel {
		for x := range kernel[y] {
			kernel[y][x] *= 100
		}
	}
	return kernel
}
