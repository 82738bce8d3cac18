package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/geometry"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/tree"
)

func eve() *tree.Node {
	return tree.New("Eve",
		tree.New("Cain"),
		tree.New("Seth", tree.New("Enos"), tree.New("Noam")),
		tree.New("Abel"),
		tree.New("Awan", tree.New("Enoch")),
		tree.New("Azura"),
	)
}

func defaults(d direction.Direction) Options {
	return Options{Direction: d, Root: geo.Point{X: 10, Y: 100}, Spacing: layout.DefaultSpacing()}
}

func TestBuildCounts(t *testing.T) {
	for _, d := range direction.All {
		s, err := Build(eve(), defaults(d))
		require.NoError(t, err)
		assert.Len(t, s.Nodes, 9, d)
		assert.Len(t, s.Links, 8, d)
		assert.Equal(t, 6, s.Leaves(), d)
	}
}

func TestBuildPreOrder(t *testing.T) {
	s, err := Build(eve(), defaults(direction.Right))
	require.NoError(t, err)

	var names []string
	for _, n := range s.Nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"Eve", "Cain", "Seth", "Enos", "Noam", "Abel", "Awan", "Enoch", "Azura"}, names)
	assert.Equal(t, s.Nodes[0].Position, geo.Point{X: 10, Y: 100})
	assert.True(t, s.Nodes[0].Internal)
	assert.False(t, s.Nodes[1].Internal)
}

func TestBuildTwoSiblingsRight(t *testing.T) {
	s, err := Build(tree.New("root", tree.New("a"), tree.New("b")), defaults(direction.Right))
	require.NoError(t, err)

	require.Len(t, s.Nodes, 3)
	assert.Equal(t, geo.Point{X: 10, Y: 100}, s.Nodes[0].Position)
	assert.Equal(t, 110.0, s.Nodes[1].Position.X)
	assert.Equal(t, 110.0, s.Nodes[2].Position.X)
	assert.Equal(t, 10.0, s.Nodes[2].Position.Y-s.Nodes[1].Position.Y)

	for _, l := range s.Links {
		assert.Equal(t, geometry.Horizontal, l.Curve)
		assert.Equal(t, geometry.End, l.Arrowhead)
		assert.Equal(t, l.End, l.Head.At)
		assert.Equal(t, s.Nodes[0].Position, l.Start)
	}
}

func TestBuildThreeChildrenCentered(t *testing.T) {
	s, err := Build(tree.New("p", tree.New("a"), tree.New("b"), tree.New("c")), defaults(direction.Down))
	require.NoError(t, err)

	root := s.Nodes[0].Position
	mid := s.Nodes[2].Position
	assert.Equal(t, root.X, mid.X)
	assert.Equal(t, root.X-10, s.Nodes[1].Position.X)
	assert.Equal(t, root.X+10, s.Nodes[3].Position.X)
}

func TestBuildSingleLeaf(t *testing.T) {
	s, err := Build(tree.New("only"), defaults(direction.Left))
	require.NoError(t, err)

	require.Len(t, s.Nodes, 1)
	assert.Empty(t, s.Links)
	assert.False(t, s.Nodes[0].Internal)
	assert.Equal(t, geo.Point{X: 10, Y: 100}, s.Nodes[0].Position)
	assert.Equal(t, "arrowhead", s.Marker.ID)
}

func TestBuildIdempotent(t *testing.T) {
	a, err := Build(eve(), defaults(direction.Up))
	require.NoError(t, err)
	b, err := Build(eve(), defaults(direction.Up))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildLinksConnectNodes(t *testing.T) {
	s, err := Build(eve(), defaults(direction.Left))
	require.NoError(t, err)

	for _, l := range s.Links {
		src, ok := s.Node(l.Source)
		require.True(t, ok)
		dst, ok := s.Node(l.Target)
		require.True(t, ok)
		assert.Equal(t, src.Position, l.Start)
		assert.Equal(t, dst.Position, l.End)
		assert.Equal(t, src.Depth+1, dst.Depth)
		assert.Equal(t, l.Start, l.Head.At, "left arrowheads sit at the parent end")
	}
}

func TestBuildUnknownDirectionDrawsDown(t *testing.T) {
	got, err := Build(eve(), defaults("diagonal"))
	require.NoError(t, err)
	want, err := Build(eve(), defaults(direction.Down))
	require.NoError(t, err)

	assert.Equal(t, want.Nodes, got.Nodes)
	assert.Equal(t, want.Links, got.Links)
	assert.Equal(t, direction.Direction("diagonal"), got.Direction)
}

func TestBuildCyclicInput(t *testing.T) {
	a := tree.New("a")
	b := tree.New("b", a)
	a.Children = append(a.Children, b)

	s, err := Build(a, defaults(direction.Right))
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestBuildSharedChild(t *testing.T) {
	shared := tree.New("x")
	s, err := Build(tree.New("r", tree.New("a", shared), tree.New("b", shared)), defaults(direction.Right))
	assert.Nil(t, s)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestBuildInvalidSpacing(t *testing.T) {
	opts := defaults(direction.Right)
	opts.Spacing.Sibling = 0

	s, err := Build(eve(), opts)
	assert.Nil(t, s)
	assert.True(t, errors.IsInvalidSpacing(err))
}

func TestBounds(t *testing.T) {
	s, err := Build(tree.New("root", tree.New("a"), tree.New("b")), defaults(direction.Right))
	require.NoError(t, err)

	e := s.Bounds()
	assert.Equal(t, Extent{MinX: 10, MinY: 95, MaxX: 110, MaxY: 105}, e)
	assert.Equal(t, 100.0, e.Width())
	assert.Equal(t, 10.0, e.Height())

	assert.Equal(t, Extent{}, (&Scene{}).Bounds())
}
