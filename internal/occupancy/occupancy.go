// Package occupancy loads occupancy grid maps in the map_server format:
// a YAML file with the metadata next to a PGM (or PNG) image.
package occupancy

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	_ "github.com/jbuchbinder/gopnm"
	"github.com/natevvv/grid-path-planning/pkg/grid"
	"gopkg.in/yaml.v3"
)

var ErrMetadata = errors.New("occupancy: invalid map metadata")

// MapMetadata is the content of the map YAML file
type MapMetadata struct {
	Image          string    `yaml:"image"`
	Resolution     float64   `yaml:"resolution"` // meters per cell
	Origin         []float64 `yaml:"origin"`     // x, y, yaw of the lower left cell
	Negate         int       `yaml:"negate"`
	OccupiedThresh float64   `yaml:"occupied_thresh"`
	FreeThresh     float64   `yaml:"free_thresh"`
}

func ReadMapMetadata(filename string) (*MapMetadata, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read map metadata: %w", err)
	}

	var meta MapMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse map metadata: %w", err)
	}

	if meta.OccupiedThresh == 0 {
		meta.OccupiedThresh = 0.65
	}
	if meta.FreeThresh == 0 {
		meta.FreeThresh = 0.196
	}
	if meta.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution must be positive", ErrMetadata)
	}
	if meta.Image == "" {
		return nil, fmt.Errorf("%w: image is missing", ErrMetadata)
	}
	if meta.FreeThresh > meta.OccupiedThresh {
		return nil, fmt.Errorf("%w: free_thresh %v > occupied_thresh %v", ErrMetadata, meta.FreeThresh, meta.OccupiedThresh)
	}
	return &meta, nil
}

// LoadMap reads the metadata and the referenced image. A relative image path is resolved against the
// directory of the YAML file.
func LoadMap(filename string) (*grid.Grid, *MapMetadata, error) {
	meta, err := ReadMapMetadata(filename)
	if err != nil {
		return nil, nil, err
	}

	imagePath := meta.Image
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(filename), imagePath)
	}
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode map image %s: %w", imagePath, err)
	}

	g, err := FromImage(img, meta)
	if err != nil {
		return nil, nil, err
	}
	return g, meta, nil
}

// FromImage converts an image into a grid. Dark pixels are occupied unless negate is set.
// Cells with an unknown occupancy (between both thresholds) are treated as obstacles.
// The top row of the image becomes the top row of the grid.
func FromImage(img image.Image, meta *MapMetadata) (*grid.Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rows := make([][]grid.Label, height)
	for row := 0; row < height; row++ {
		y := height - 1 - row
		rows[y] = make([]grid.Label, width)
		for x := 0; x < width; x++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+row)).(color.Gray)
			if occupancy(gray.Y, meta.Negate != 0) > meta.FreeThresh {
				rows[y][x] = grid.Obstacle
			}
		}
	}
	return grid.NewGrid(rows)
}

// probability that a pixel is occupied
func occupancy(value uint8, negate bool) float64 {
	if negate {
		return float64(value) / 255
	}
	return float64(255-value) / 255
}

// Cell containing the world coordinate (x, y). The result may be outside of the grid.
func (m *MapMetadata) Cell(x, y float64) grid.Position {
	originX, originY := 0.0, 0.0
	if len(m.Origin) >= 2 {
		originX, originY = m.Origin[0], m.Origin[1]
	}
	return grid.Position{
		X: int(math.Floor((x - originX) / m.Resolution)),
		Y: int(math.Floor((y - originY) / m.Resolution)),
	}
}
