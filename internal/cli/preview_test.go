package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/tree"
)

func previewTree() *tree.Node {
	return tree.New("Eve", tree.New("Cain"), tree.New("Seth", tree.New("Enos")), tree.New("Abel"))
}

func newTestPreview(d direction.Direction) previewModel {
	m := newPreviewModel("eve.json", previewTree(), layout.DefaultSpacing(), d)
	m.refresh()
	return m
}

func update(t *testing.T, m previewModel, msg tea.Msg) (previewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(previewModel)
	require.True(t, ok)
	return pm, cmd
}

func TestPreviewDirectionKeys(t *testing.T) {
	m := newTestPreview(direction.Right)
	require.NoError(t, m.err)

	tests := []struct {
		key  tea.KeyType
		want direction.Direction
	}{
		{tea.KeyDown, direction.Down},
		{tea.KeyLeft, direction.Left},
		{tea.KeyUp, direction.Up},
		{tea.KeyRight, direction.Right},
	}
	for _, tt := range tests {
		m, _ = update(t, m, tea.KeyMsg{Type: tt.key})
		assert.Equal(t, tt.want, m.dir)
		assert.Equal(t, tt.want, m.scene.Direction, "scene is recomposed")
	}
}

func TestPreviewCycleAndLabels(t *testing.T) {
	m := newTestPreview(direction.Up)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, direction.Right, m.dir)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.True(t, m.labels)
	assert.Contains(t, m.View(), "Enos")
}

func TestPreviewQuit(t *testing.T) {
	m := newTestPreview(direction.Right)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPreviewResize(t *testing.T) {
	m := newTestPreview(direction.Down)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.cols)
	assert.Equal(t, 17, m.rows)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 4})
	assert.Equal(t, 5, m.rows)
}

func TestPreviewView(t *testing.T) {
	m := newTestPreview(direction.Left)
	view := m.View()

	assert.Contains(t, view, "eve.json")
	assert.Contains(t, view, "[left]")
	assert.Contains(t, view, "q quit")
	assert.True(t, strings.ContainsAny(view, "o*"), "view should draw nodes")
}

func TestPreviewInvalidTree(t *testing.T) {
	shared := tree.New("x")
	m := newPreviewModel("bad", tree.New("root", shared, shared), layout.DefaultSpacing(), direction.Right)
	m.refresh()
	require.Error(t, m.err)
	assert.Contains(t, m.View(), iconError)
}

func TestNextDirection(t *testing.T) {
	assert.Equal(t, direction.Down, nextDirection(direction.Right))
	assert.Equal(t, direction.Right, nextDirection(direction.Up))
	assert.Equal(t, direction.Right, nextDirection("diagonal"))
}
