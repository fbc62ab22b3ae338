package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, foot  int
		tooSmall             bool
		canvasH, logH, footY int
	}{
		{"standard", 80, 24, 1, false, 19, 3, 23},
		{"short drops log", 80, 12, 1, false, 10, 0, 11},
		{"full help", 80, 24, 3, false, 17, 3, 21},
		{"minimum", minWidth, minHeight, 1, false, 6, 0, 7},
		{"zero footer treated as one", 80, 24, 0, false, 19, 3, 23},
		{"too narrow", minWidth - 1, 24, 1, true, 0, 0, 0},
		{"too short", 80, minHeight - 1, 1, true, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height, tt.foot)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall = %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}
			if l.Canvas.Height != tt.canvasH || l.Log.Height != tt.logH || l.Footer.Y != tt.footY {
				t.Errorf("canvas h=%d log h=%d footer y=%d, want %d/%d/%d",
					l.Canvas.Height, l.Log.Height, l.Footer.Y, tt.canvasH, tt.logH, tt.footY)
			}
			total := l.Header.Height + l.Canvas.Height + l.Log.Height + l.Footer.Height
			if total != tt.height {
				t.Errorf("regions cover %d rows, want %d", total, tt.height)
			}
			if l.Canvas.Width != tt.width {
				t.Errorf("canvas width = %d, want %d", l.Canvas.Width, tt.width)
			}
		})
	}
}
