package grid

import "github.com/milk9111/tileeditor/layout"

// Pointer is the mouse state for one frame.
type Pointer struct {
	Pos              layout.Point
	Clicked          bool
	SecondaryClicked bool
}

// Selection holds at most one selected tile index. The zero value has
// nothing selected.
type Selection struct {
	index int
	ok    bool
}

// Selected returns the selected index and whether there is one.
func (s *Selection) Selected() (int, bool) {
	if !s.ok {
		return -1, false
	}
	return s.index, true
}

func (s *Selection) Select(i int) {
	s.index = i
	s.ok = true
}

func (s *Selection) Clear() {
	s.index = 0
	s.ok = false
}

// Apply updates the selection from one frame of input. hit and ok are the
// hit-test result for p.Pos. A primary click on a tile selects it, a primary
// click elsewhere changes nothing, and a secondary click always clears.
// Primary is handled first, so a frame with both clicks ends with nothing
// selected.
func (s *Selection) Apply(p Pointer, hit int, ok bool) {
	if p.Clicked && ok {
		s.Select(hit)
	}
	if p.SecondaryClicked {
		s.Clear()
	}
}
