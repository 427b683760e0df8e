package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)

	s.SetCell(2, 1, Cell{Rune: '#', Fg: ColorMint, Bg: ColorDarkGray})
	got := s.GetCell(2, 1)
	if got.Rune != '#' || got.Fg != ColorMint || got.Bg != ColorDarkGray {
		t.Errorf("GetCell(2, 1) = %+v, expected mint # on dark gray", got)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.Set(p[0], p[1], 'X')
		if r := s.Get(p[0], p[1]); r != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], r)
		}
	}
}

func TestScreenDrawTextWithColor(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextWithColor(4, 0, "héllo", ColorGold)

	if s.Row(0) != "    hé" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "    hé")
	}
	if s.GetCell(5, 0).Fg != ColorGold {
		t.Errorf("GetCell(5, 0).Fg = %v, expected ColorGold", s.GetCell(5, 0).Fg)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)

	if s.Row(0) != "    ab    " {
		t.Errorf("Row(0) = %q, expected centered text", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Fg != ColorGray {
		t.Errorf("box corner color = %v, expected ColorGray", s.GetCell(0, 0).Fg)
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(3, 3)
	s.FillRect(NewRect(1, 1, 5, 5), Cell{Rune: '█', Fg: ColorSky})

	if s.Row(0) != "   " || s.Row(2) != " ██" {
		t.Errorf("unexpected fill:\n%s", s.String())
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(2, 2)
	s.Set(0, 0, 'X')
	s.Resize(3, 1)

	if s.Width() != 3 || s.Height() != 1 {
		t.Fatalf("Resize: got %dx%d, expected 3x1", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("resized screen should be blank, got %q", s.String())
	}
	if s.Row(5) != "   " {
		t.Errorf("Row(5) = %q, expected blank row", s.Row(5))
	}
}
