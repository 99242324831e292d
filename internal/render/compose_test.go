package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/username/shop-calendar/internal/config"
)

// testFontSet builds a FontSet from the built-in bitmap face so composer
// tests run without any font files on disk.
func testFontSet() *FontSet {
	face := basicfont.Face7x13
	return &FontSet{
		MonthNum:    face,
		Year:        face,
		Header:      face,
		Date:        face,
		MonthPrefix: face,
		Hours:       face,
		Closed:      face,
		BottomLatin: face,
		BottomJP:    face,
		EventLatin:  face,
		EventJP:     face,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Year:  2026,
		Month: 3,
		Schedule: map[string]string{
			"1": "15-21", "2": "17-21", "20": "17-22",
		},
		PrevMonthSchedule: map[string]string{"28": "15-21"},
		NextMonthSchedule: map[string]string{"4": "15-21", "5": "15-21"},
		Holidays:          []int{20},
		Events:            []config.Event{{Start: 27, End: 28, Name: "Sale"}},
		BottomText:        "ご予約は 055-957-4500 にて",
	}
}

func TestRenderCanvas(t *testing.T) {
	c := NewComposer(testConfig(), testFontSet(), zap.NewNop())

	img, err := c.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 1080 || b.Dy() != 1350 {
		t.Fatalf("canvas = %dx%d, want 1080x1350", b.Dx(), b.Dy())
	}

	// The page must not be blank: the month number and grid put dark pixels
	// on the white background.
	dark := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0x8000 && g < 0x8000 && bl < 0x8000 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("rendered canvas is blank")
	}
}

func TestRenderHighlightsWeekendAndHoliday(t *testing.T) {
	c := NewComposer(testConfig(), testFontSet(), zap.NewNop())

	img, err := c.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Weekend headers and holiday dates use the accent orange; at least some
	// orange pixels must exist.
	orange := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 == 240 && g>>8 == 112 && bl>>8 == 80 {
				orange++
			}
		}
	}
	if orange == 0 {
		t.Error("no accent-colored pixels found")
	}
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := NewComposer(testConfig(), testFontSet(), zap.NewNop())

	if err := c.RenderToFile(path); err != nil {
		t.Fatalf("RenderToFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 1080 || img.Bounds().Dy() != 1350 {
		t.Errorf("decoded size = %dx%d, want 1080x1350", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderToFileUnwritablePath(t *testing.T) {
	c := NewComposer(testConfig(), testFontSet(), zap.NewNop())

	err := c.RenderToFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.png"))
	if err == nil {
		t.Fatal("RenderToFile() succeeded on an unwritable path")
	}
}

func TestRowSpacing(t *testing.T) {
	// Six-week months compress the rows; five-week months hit the cap.
	if h := rowSpacing(6); h != 144 {
		t.Errorf("rowSpacing(6) = %v, want 144", h)
	}
	if h := rowSpacing(5); h != 155 {
		t.Errorf("rowSpacing(5) = %v, want 155 (capped)", h)
	}
	if h := rowSpacing(1); h != 150 {
		t.Errorf("rowSpacing(1) = %v, want 150", h)
	}
}
