package pbf

import (
	"context"
	"io"
	"os"

	"github.com/natevvv/grid-path-planning/pkg/obstacle"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// ImportOsmXml reads the obstacle ways of an .osm XML document.
// Nodes have to appear before the ways which reference them, as written by the OSM API and osmosis.
func ImportOsmXml(ctx context.Context, r io.Reader) ([]*obstacle.Segment, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	nodes := make(map[osm.NodeID]orb.Point)
	obstacles := make([]*obstacle.Segment, 0)

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = orb.Point{o.Lon, o.Lat}
		case *osm.Way:
			tags := o.Tags.Map()
			kind := obstacle.KindOf(tags)
			if kind == obstacle.Unknown {
				continue
			}
			segment := &obstacle.Segment{
				ID:     int64(o.ID),
				Kind:   kind,
				Tags:   tags,
				Points: make([]orb.Point, 0, len(o.Nodes)),
			}
			for _, wayNode := range o.Nodes {
				if point, ok := nodes[wayNode.ID]; ok {
					segment.Points = append(segment.Points, point)
				}
			}
			if len(segment.Points) > 0 {
				obstacles = append(obstacles, segment)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return obstacles, nil
}

func ImportOsmXmlFile(ctx context.Context, filename string) ([]*obstacle.Segment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ImportOsmXml(ctx, file)
}
