package pbf

import (
	"errors"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/natevvv/grid-path-planning/pkg/obstacle"
	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"
)

// ObstacleImporter reads all obstacle ways of a PBF file.
// The file is decoded twice: the first pass collects the node coordinates, the second one the ways.
type ObstacleImporter struct {
	filename  string
	obstacles []*obstacle.Segment
	nodes     map[int64]orb.Point
}

func NewObstacleImporter(filename string) *ObstacleImporter {
	return &ObstacleImporter{
		filename:  filename,
		obstacles: make([]*obstacle.Segment, 0),
		nodes:     make(map[int64]orb.Point),
	}
}

func (oi *ObstacleImporter) Import() error {
	if err := oi.collectNodes(); err != nil {
		return err
	}

	decoder, file, err := oi.newDecoder()
	if err != nil {
		return err
	}
	defer file.Close()

	var wg sync.WaitGroup
	obstacleChan := make(chan *obstacle.Segment, 1000)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for segment := range obstacleChan {
			oi.obstacles = append(oi.obstacles, segment)
		}
	}()

	for {
		v, err := decoder.Decode()
		if err != nil {
			close(obstacleChan)
			wg.Wait()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		way, ok := v.(*osmpbf.Way)
		if !ok {
			continue
		}
		kind := obstacle.KindOf(way.Tags)
		if kind == obstacle.Unknown {
			continue
		}
		segment := &obstacle.Segment{
			ID:     way.ID,
			Kind:   kind,
			Tags:   way.Tags,
			Points: make([]orb.Point, 0, len(way.NodeIDs)),
		}
		for _, nodeID := range way.NodeIDs {
			if point, ok := oi.nodes[nodeID]; ok {
				segment.Points = append(segment.Points, point)
			}
		}
		if len(segment.Points) > 0 {
			obstacleChan <- segment
		}
	}
}

func (oi *ObstacleImporter) Obstacles() []*obstacle.Segment {
	return oi.obstacles
}

func (oi *ObstacleImporter) NodeCount() int {
	return len(oi.nodes)
}

func (oi *ObstacleImporter) newDecoder() (*osmpbf.Decoder, *os.File, error) {
	file, err := os.Open(oi.filename)
	if err != nil {
		return nil, nil, err
	}

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		file.Close()
		return nil, nil, err
	}
	return decoder, file, nil
}

func (oi *ObstacleImporter) collectNodes() error {
	decoder, file, err := oi.newDecoder()
	if err != nil {
		return err
	}
	defer file.Close()

	for {
		v, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if node, ok := v.(*osmpbf.Node); ok {
			oi.nodes[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}
}
