package canvas

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_DrawPointAtOrigin(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 5, 5)
	term.DrawPoint(0, 0)
	term.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, byte('*'), lines[2][2])
}

func TestTerminal_OriginTranslatesPoints(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 5, 5)
	term.SetOrigin(1, 0)
	term.DrawPoint(0, 0)
	term.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, byte('*'), lines[2][3])
}

func TestTerminal_RotationByHalfPi(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 7, 7)
	term.SetRotation(math.Pi / 2)
	term.DrawPoint(1, 0)
	term.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// rotating (1,0) by 90 degrees lands at (0,1): one row above center.
	assert.Equal(t, byte('*'), lines[2][3])
}

func TestTerminal_ClearErasesPoints(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 3, 3)
	term.DrawPoint(0, 0)
	term.Clear()
	term.Render()

	assert.NotContains(t, buf.String(), "*")
}

func TestTerminal_MatrixCacheInvalidatesOnChange(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, 5, 5)
	term.DrawPoint(1, 0) // forces the matrix to compute and cache

	term.SetScale(2, 2)
	var buf2 bytes.Buffer
	term.Out = &buf2
	term.Clear()
	term.DrawPoint(1, 0)
	term.Render()

	lines := strings.Split(strings.TrimRight(buf2.String(), "\n"), "\n")
	assert.Equal(t, byte('*'), lines[2][4])
}

func TestRecording_RecordsEveryCall(t *testing.T) {
	rec := &Recording{}
	var c Canvas = rec

	c.SetOrigin(1, 2)
	c.SetScale(3, 4)
	c.SetRotation(0.5)
	c.SetPointSize(2)
	c.SetPointColor(1, 2, 3)
	c.SetBackgroundColor(4, 5, 6)
	c.DrawPoint(7, 8)
	c.Clear()

	assert.Len(t, rec.Calls, 8)
	assert.Equal(t, [][2]float64{{7, 8}}, rec.Points())
}
