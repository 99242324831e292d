package render

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/username/shop-calendar/internal/config"
)

// Font sizes in pixels (faces are created at 72 DPI so points equal pixels).
const (
	sizeMonthNum    = 100
	sizeYear        = 36
	sizeHeader      = 22
	sizeDate        = 36
	sizeMonthPrefix = 18
	sizeHours       = 22
	sizeBottom      = 24
	sizeClosed      = 26
	sizeEvent       = 16
)

// FontSet holds every face the page composer draws with.
type FontSet struct {
	MonthNum    font.Face
	Year        font.Face
	Header      font.Face
	Date        font.Face
	MonthPrefix font.Face
	Hours       font.Face
	Closed      font.Face
	BottomLatin font.Face
	BottomJP    font.Face
	EventLatin  font.Face
	EventJP     font.Face

	faces []font.Face
}

// fontLoader parses font files once and hands out faces at requested sizes.
type fontLoader struct {
	parsed map[string]*sfnt.Font
	logger *zap.Logger
}

func newFontLoader(logger *zap.Logger) *fontLoader {
	return &fontLoader{
		parsed: make(map[string]*sfnt.Font),
		logger: logger,
	}
}

func (fl *fontLoader) parse(path string) (*sfnt.Font, error) {
	if f, ok := fl.parsed[path]; ok {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	fl.parsed[path] = f
	return f, nil
}

// face builds a face from the first candidate path that loads. Candidates are
// tried in order so a missing weight degrades to the next spec instead of
// branching; if none load the last error is returned and the caller decides
// whether that is fatal.
func (fl *fontLoader) face(size float64, candidates ...string) (font.Face, error) {
	var lastErr error
	for _, path := range candidates {
		if path == "" {
			continue
		}
		f, err := fl.parse(path)
		if err != nil {
			fl.logger.Debug("font candidate failed, trying next",
				zap.String("path", path), zap.Error(err))
			lastErr = err
			continue
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			lastErr = err
			continue
		}
		return face, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no font candidates given")
	}
	return nil, lastErr
}

// LoadFonts builds the full face set from the configured font paths. Missing
// bold/medium weights fall back to the regular Latin font; failure of the
// regular Latin font or the Japanese font is fatal.
func LoadFonts(cfg *config.Config, logger *zap.Logger) (*FontSet, error) {
	fl := newFontLoader(logger)

	// The two base fonts must load; everything else degrades to them.
	if _, err := fl.parse(cfg.LatinFont); err != nil {
		return nil, fmt.Errorf("failed to load base latin font: %w", err)
	}
	if _, err := fl.parse(cfg.JapaneseFont); err != nil {
		return nil, fmt.Errorf("failed to load japanese font: %w", err)
	}

	fs := &FontSet{}
	var err error
	assign := func(dst *font.Face, size float64, candidates ...string) {
		if err != nil {
			return
		}
		var face font.Face
		face, err = fl.face(size, candidates...)
		if err != nil {
			return
		}
		*dst = face
		fs.faces = append(fs.faces, face)
	}

	assign(&fs.MonthNum, sizeMonthNum, cfg.LatinFontBold, cfg.LatinFont)
	assign(&fs.Year, sizeYear, cfg.LatinFont)
	assign(&fs.Header, sizeHeader, cfg.LatinFontMedium, cfg.LatinFont)
	assign(&fs.Date, sizeDate, cfg.DateFont, cfg.LatinFontBold, cfg.LatinFont)
	assign(&fs.MonthPrefix, sizeMonthPrefix, cfg.LatinFont)
	assign(&fs.Hours, sizeHours, cfg.LatinFont)
	assign(&fs.Closed, sizeClosed, cfg.LatinFont)
	assign(&fs.BottomLatin, sizeBottom, cfg.LatinFont)
	assign(&fs.BottomJP, sizeBottom, cfg.JapaneseFont)
	assign(&fs.EventLatin, sizeEvent, cfg.LatinFont)
	assign(&fs.EventJP, sizeEvent, cfg.JapaneseFont)

	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to build font set: %w", err)
	}

	return fs, nil
}

// Close releases every face in the set.
func (fs *FontSet) Close() {
	for _, face := range fs.faces {
		_ = face.Close()
	}
	fs.faces = nil
}
