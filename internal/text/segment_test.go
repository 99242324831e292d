package text

import (
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "pure latin",
			in:   "OPEN 15-21",
			want: []Segment{{Text: "OPEN 15-21", Latin: true}},
		},
		{
			name: "pure japanese",
			in:   "ご予約は",
			want: []Segment{{Text: "ご予約は", Latin: false}},
		},
		{
			name: "japanese with embedded number",
			in:   "ご予約は 055-957-4500 にて",
			want: []Segment{
				{Text: "ご予約は", Latin: false},
				{Text: " 055-957-4500 ", Latin: true},
				{Text: "にて", Latin: false},
			},
		},
		{
			name: "fullwidth forms classify as latin",
			in:   "営業Ｈ",
			want: []Segment{
				{Text: "営業", Latin: false},
				{Text: "Ｈ", Latin: true},
			},
		},
		{
			name: "empty string",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %d segments, want %d: %+v", tt.in, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Split(%q)[%d] = %+v, want %+v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitRoundTrip(t *testing.T) {
	inputs := []string{
		"ご予約は 055-957-4500 / 070-8419-5489 にて承ります",
		"abcあいうdefかきくghi",
		"あaいbうc",
		"2026年3月",
	}

	for _, in := range inputs {
		segments := Split(in)

		joined := ""
		transitions := 0
		for i, seg := range segments {
			if seg.Text == "" {
				t.Errorf("Split(%q) produced an empty segment at %d", in, i)
			}
			if i > 0 && segments[i-1].Latin == seg.Latin {
				t.Errorf("Split(%q) has adjacent segments of the same class at %d", in, i)
			}
			if i > 0 {
				transitions++
			}
			joined += seg.Text
		}

		if joined != in {
			t.Errorf("Split(%q) concatenation = %q", in, joined)
		}
		if len(segments) != transitions+1 {
			t.Errorf("Split(%q): %d segments, want transitions+1 = %d", in, len(segments), transitions+1)
		}
	}
}

// fakeMeasurer gives every rune a fixed advance so layout math is exact.
type fakeMeasurer struct {
	perRune int
	ascent  int
	descent int
}

func (f fakeMeasurer) Width(s string) int { return f.perRune * len([]rune(s)) }
func (f fakeMeasurer) Ascent() int        { return f.ascent }
func (f fakeMeasurer) Descent() int       { return f.descent }

func TestComposeLineBaseline(t *testing.T) {
	latin := fakeMeasurer{perRune: 10, ascent: 20, descent: 5}
	jp := fakeMeasurer{perRune: 24, ascent: 26, descent: 8}

	line := ComposeLine("あabあ", latin, jp)

	if len(line.Runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(line.Runs))
	}

	// Shared baseline sits at the tallest ascent; height spans to the
	// deepest descent.
	if line.Baseline != 26 {
		t.Errorf("Baseline = %d, want 26", line.Baseline)
	}
	if line.Height != 34 {
		t.Errorf("Height = %d, want 34", line.Height)
	}
	if line.Width != 24+20+24 {
		t.Errorf("Width = %d, want %d", line.Width, 24+20+24)
	}

	// Runs abut left to right.
	wantX := []int{0, 24, 44}
	for i, run := range line.Runs {
		if run.X != wantX[i] {
			t.Errorf("run %d X = %d, want %d", i, run.X, wantX[i])
		}
	}

	// The Latin run's top sits lower by the ascent difference, keeping its
	// baseline on the shared one.
	if line.Runs[0].TopY != 0 {
		t.Errorf("jp run TopY = %d, want 0", line.Runs[0].TopY)
	}
	if line.Runs[1].TopY != 6 {
		t.Errorf("latin run TopY = %d, want 6", line.Runs[1].TopY)
	}
	for _, run := range line.Runs {
		if run.TopY+run.Ascent != line.Baseline {
			t.Errorf("run %q baseline = %d, want %d", run.Text, run.TopY+run.Ascent, line.Baseline)
		}
	}
}

func TestComposeLineSingleScript(t *testing.T) {
	latin := fakeMeasurer{perRune: 10, ascent: 20, descent: 5}
	jp := fakeMeasurer{perRune: 24, ascent: 26, descent: 8}

	line := ComposeLine("hello", latin, jp)

	if len(line.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(line.Runs))
	}
	if line.Baseline != 20 || line.Height != 25 {
		t.Errorf("Baseline/Height = %d/%d, want 20/25", line.Baseline, line.Height)
	}
	if line.Width != 50 {
		t.Errorf("Width = %d, want 50", line.Width)
	}
}
