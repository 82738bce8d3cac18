package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/scene"
)

type sceneDoc struct {
	Direction string    `json:"direction"`
	Marker    markerDoc `json:"marker"`
	Nodes     []nodeDoc `json:"nodes"`
	Links     []linkDoc `json:"links"`
	Bounds    boundsDoc `json:"bounds"`
}

type markerDoc struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	RefX   float64 `json:"ref_x"`
	RefY   float64 `json:"ref_y"`
	Path   string  `json:"path"`
}

type nodeDoc struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Depth    int     `json:"depth"`
	Internal bool    `json:"internal"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type linkDoc struct {
	Source     int       `json:"source"`
	Target     int       `json:"target"`
	Curve      string    `json:"curve"`
	Arrowhead  string    `json:"arrowhead"`
	Path       string    `json:"path"`
	ArrowAt    geo.Point `json:"arrow_at"`
	ArrowAngle float64   `json:"arrow_angle"`
}

type boundsDoc struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// WriteScene encodes sc as indented JSON and writes it to w.
func WriteScene(sc *scene.Scene, w io.Writer) error {
	b := sc.Bounds()
	out := sceneDoc{
		Direction: string(sc.Direction),
		Marker: markerDoc{
			ID:     sc.Marker.ID,
			Width:  sc.Marker.Width,
			Height: sc.Marker.Height,
			RefX:   sc.Marker.RefX(),
			RefY:   sc.Marker.RefY(),
			Path:   sc.Marker.Data(),
		},
		Nodes:  make([]nodeDoc, len(sc.Nodes)),
		Links:  make([]linkDoc, len(sc.Links)),
		Bounds: boundsDoc{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY},
	}
	for i, n := range sc.Nodes {
		out.Nodes[i] = nodeDoc{
			Index:    n.Index,
			Name:     n.Name,
			Depth:    n.Depth,
			Internal: n.Internal,
			X:        n.Position.X,
			Y:        n.Position.Y,
		}
	}
	for i, l := range sc.Links {
		out.Links[i] = linkDoc{
			Source:     l.Source,
			Target:     l.Target,
			Curve:      string(l.Curve),
			Arrowhead:  string(l.Arrowhead),
			Path:       l.Path.Data(),
			ArrowAt:    l.Head.At,
			ArrowAngle: l.Head.Angle,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportScene writes sc as JSON to the file at path.
func ExportScene(sc *scene.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteScene(sc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
