package pbf

import (
	"encoding/json"
	"os"

	"github.com/natevvv/grid-path-planning/pkg/obstacle"
)

func ExportObstacleJson(obstacles []*obstacle.Segment, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(obstacles)
}

func ImportObstacleJson(filename string) ([]*obstacle.Segment, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var obstacles []*obstacle.Segment
	if err := json.Unmarshal(bytes, &obstacles); err != nil {
		return nil, err
	}
	return obstacles, nil
}
