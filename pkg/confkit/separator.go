package confkit

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

// Separator is a thin divider row between groups of options.
type Separator struct {
	optionRow
}

func NewSeparator() *Separator {
	return &Separator{optionRow: newOptionRow(rowOptions{})}
}

func (s *Separator) Kind() Kind       { return KindSeparator }
func (s *Separator) ResetToDefault()  {}
func (s *Separator) SetModified(bool) {}

func (s *Separator) Render(c Canvas, p Point, _ time.Duration) {
	if !s.beginRender(p) {
		return
	}
	b := s.bounds
	c.FillRect(Rect{X: b.X + 4, Y: b.CenterY(), W: b.W - 8, H: 1}, s.theme().Divider)
}

func (s *Separator) HandlePointerDown(Point, constants.MouseButton) bool { return false }
