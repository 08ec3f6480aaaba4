package analyzer

import (
	"image"
	"image/color"
	"math"
)

// maxGradient is the largest magnitude the 3x3 Sobel kernels can produce on
// 8-bit input: |Gx| and |Gy| each peak at 4*255.
var maxGradient = math.Sqrt(2) * 4 * 255

// SobelScorer rates a region by its mean Sobel gradient magnitude.
type SobelScorer struct{}

func NewSobelScorer() *SobelScorer {
	return &SobelScorer{}
}

func (s *SobelScorer) Score(img image.Image, rect image.Rectangle) (float64, error) {
	region := rect.Intersect(img.Bounds())
	gray := toGrayscale(img, region)

	gx := [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	gy := [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	var total float64
	count := 0
	for y := region.Min.Y + 1; y < region.Max.Y-1; y++ {
		for x := region.Min.X + 1; x < region.Max.X-1; x++ {
			var sumX, sumY float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					pixel := float64(gray.GrayAt(x+kx, y+ky).Y)
					sumX += pixel * float64(gx[ky+1][kx+1])
					sumY += pixel * float64(gy[ky+1][kx+1])
				}
			}
			total += math.Sqrt(sumX*sumX + sumY*sumY)
			count++
		}
	}

	// Regions thinner than the kernel have no interior pixels and carry no detail.
	if count == 0 {
		return 0, nil
	}

	score := total / float64(count) / maxGradient
	if score > 1 {
		score = 1
	}
	return score, nil
}

// toGrayscale converts one region of an image to grayscale.
func toGrayscale(img image.Image, region image.Rectangle) *image.Gray {
	gray := image.NewGray(region)
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}
