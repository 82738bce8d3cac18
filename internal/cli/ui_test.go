package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/treeflow/pkg/direction"
)

func TestFlowLabel(t *testing.T) {
	tests := map[direction.Direction]string{
		direction.Right: "→ right",
		direction.Down:  "↓ down",
		direction.Left:  "← left",
		direction.Up:    "↑ up",
		"sideways":      "↓ sideways (as down)",
	}
	for d, want := range tests {
		assert.Equal(t, want, flowLabel(d), string(d))
	}
}

func TestStatsLine(t *testing.T) {
	assert.Equal(t, "→ right · 6 nodes · 5 links · 4 leaves", statsLine(direction.Right, 6, 5, 4))
	assert.Equal(t, "↑ up · 1 node · 0 links · 1 leaf", statsLine(direction.Up, 1, 0, 1))
}
