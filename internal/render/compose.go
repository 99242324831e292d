// Package render assembles the calendar page on a fixed 1080×1350 canvas and
// encodes it as a PNG.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/username/shop-calendar/internal/config"
	"github.com/username/shop-calendar/internal/grid"
	"github.com/username/shop-calendar/internal/schedule"
	"github.com/username/shop-calendar/internal/text"
	"github.com/username/shop-calendar/pkg/dateutil"
)

// Canvas geometry.
const (
	imgW = 1080
	imgH = 1350

	yMonthNum    = 130  // month number center
	yYear        = 145  // year text center
	xYear        = 830  // year text left edge
	yHeaders     = 310  // weekday header row
	yFirstRow    = 400  // first date row
	yHoursOffset = 50   // hours line below the date
	yBottomText  = 1220 // reserved bottom text line

	maxRowHeight = 155

	colHalfWidth = 60 // half of one column's visual width

	eventBoxGap  = 8
	eventBoxPadH = 12
	eventBoxPadV = 6
	eventLineGap = 4
)

// colX holds the center x of the seven Monday-first columns.
var colX = [7]int{120, 260, 400, 540, 680, 820, 960}

var dayNames = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

var (
	colorBG     = color.RGBA{255, 255, 255, 255}
	colorDark   = color.RGBA{42, 42, 42, 255}
	colorGray   = color.RGBA{120, 120, 120, 255}
	colorOrange = color.RGBA{240, 112, 80, 255}
	colorHeader = color.RGBA{100, 100, 100, 255}
)

// Composer renders one month configuration onto the fixed canvas.
type Composer struct {
	cfg      *config.Config
	fonts    *FontSet
	resolver *schedule.Resolver
	logger   *zap.Logger
}

// NewComposer creates a Composer for the given configuration and font set.
func NewComposer(cfg *config.Config, fonts *FontSet, logger *zap.Logger) *Composer {
	resolver := schedule.NewResolver(
		config.ScheduleDays(cfg.Schedule),
		config.ScheduleDays(cfg.PrevMonthSchedule),
		config.ScheduleDays(cfg.NextMonthSchedule),
		cfg.Holidays,
		cfg.PrevMonthHolidays,
		cfg.NextMonthHolidays,
	)
	return &Composer{
		cfg:      cfg,
		fonts:    fonts,
		resolver: resolver,
		logger:   logger,
	}
}

// Render composes the full page and returns the canvas.
func (c *Composer) Render() (*image.RGBA, error) {
	year := c.cfg.Year
	month := time.Month(c.cfg.Month)

	g := grid.Build(year, month)
	showPrev, showNext := grid.WeekendVisibility(year, month)
	numWeeks := len(g)

	rowHeight := rowSpacing(numWeeks)

	c.logger.Info("composing calendar page",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("weeks", numWeeks),
		zap.Float64("row_height", rowHeight))

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBG), image.Point{}, draw.Src)

	c.drawCenteredText(img, imgW/2, yMonthNum, strconv.Itoa(int(month)), c.fonts.MonthNum, colorDark)
	c.drawYear(img, year)
	c.drawHeaders(img)
	c.drawWeeks(img, g, rowHeight, showPrev, showNext)
	c.drawEvents(img, g, rowHeight)
	c.drawBottomText(img, numWeeks, rowHeight)

	return img, nil
}

// RenderToFile composes the page and writes it as a PNG. The file is created
// only after composition succeeds, so a failed render leaves no partial
// output behind.
func (c *Composer) RenderToFile(path string) error {
	img, err := c.Render()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	c.logger.Info("calendar image written",
		zap.String("path", path),
		zap.Int("width", imgW),
		zap.Int("height", imgH))
	return nil
}

// rowSpacing spreads the week rows over the space between the first date row
// and the bottom text zone, capped so 5-week months don't stretch apart.
func rowSpacing(numWeeks int) float64 {
	if numWeeks <= 1 {
		return 150
	}
	available := float64(yBottomText - yFirstRow - 100)
	h := available / float64(numWeeks-1)
	if h > maxRowHeight {
		h = maxRowHeight
	}
	return h
}

func (c *Composer) drawYear(img *image.RGBA, year int) {
	face := c.fonts.Year
	th := (face.Metrics().Ascent + face.Metrics().Descent).Ceil()
	baseline := yYear - th/2 + face.Metrics().Ascent.Ceil()
	c.drawText(img, xYear, baseline, strconv.Itoa(year), face, colorDark)
}

func (c *Composer) drawHeaders(img *image.RGBA) {
	for col, name := range dayNames {
		clr := colorHeader
		if dateutil.IsWeekendColumn(col) {
			clr = colorOrange
		}
		c.drawCenteredText(img, colX[col], yHeaders, name, c.fonts.Header, clr)
	}
}

func (c *Composer) drawWeeks(img *image.RGBA, g grid.Grid, rowHeight float64, showPrev, showNext bool) {
	year := c.cfg.Year
	month := time.Month(c.cfg.Month)

	for rowIdx, week := range g {
		yDate := yFirstRow + int(float64(rowIdx)*rowHeight)
		yHours := yDate + yHoursOffset

		for col, cell := range week {
			if !grid.ShouldShowCell(col, cell.Offset, showPrev, showNext) {
				continue
			}

			x := colX[col]

			dateColor := colorDark
			if c.resolver.Highlighted(col, cell.Day, cell.Offset) {
				dateColor = colorOrange
			}

			prefix := c.monthPrefix(cell.Offset, rowIdx, showPrev, year, month)
			if prefix != "" {
				c.drawPrefixedDay(img, x, yDate, prefix, cell.Day, dateColor)
			} else {
				c.drawCenteredText(img, x, yDate, strconv.Itoa(cell.Day), c.fonts.Date, dateColor)
			}

			hours, ok := c.resolver.HoursFor(cell.Day, cell.Offset)
			switch {
			case ok:
				c.drawCenteredText(img, x, yHours, hours, c.fonts.Hours, colorDark)
			case cell.Offset == grid.OffsetCurrent:
				// No entry for a current-month day: closed.
				c.drawCenteredText(img, x, yHours, "-", c.fonts.Closed, colorGray)
			}
		}
	}
}

// monthPrefix returns the "M" part of the "M/" prefix drawn before a day
// number, or "" when the day needs none. Adjacent-month days always carry
// their month number; current-month days in the first row carry it too when
// previous-month weekend cells share that row, so the reader can tell the two
// months apart.
func (c *Composer) monthPrefix(offset grid.MonthOffset, rowIdx int, showPrev bool, year int, month time.Month) string {
	switch offset {
	case grid.OffsetPrev:
		_, m := dateutil.PrevMonth(year, month)
		return strconv.Itoa(int(m))
	case grid.OffsetNext:
		_, m := dateutil.NextMonth(year, month)
		return strconv.Itoa(int(m))
	}
	if rowIdx == 0 && showPrev {
		return strconv.Itoa(int(month))
	}
	return ""
}

// drawPrefixedDay renders "M/" in the small prefix font followed by the day
// number in the date font, the pair centered as one block on x. The prefix
// rides above the day number's top edge.
func (c *Composer) drawPrefixedDay(img *image.RGBA, x, yDate int, prefix string, day int, clr color.RGBA) {
	prefixText := prefix + "/"
	dayText := strconv.Itoa(day)

	prefixW := font.MeasureString(c.fonts.MonthPrefix, prefixText).Ceil()
	dayW := font.MeasureString(c.fonts.Date, dayText).Ceil()
	totalW := prefixW + dayW
	startX := x - totalW/2

	dateMetrics := c.fonts.Date.Metrics()
	dayH := (dateMetrics.Ascent + dateMetrics.Descent).Ceil()
	dayTop := yDate - dayH/2

	prefixBaseline := dayTop - 4 + c.fonts.MonthPrefix.Metrics().Ascent.Ceil()
	c.drawText(img, startX, prefixBaseline, prefixText, c.fonts.MonthPrefix, clr)

	dayBaseline := dayTop + dateMetrics.Ascent.Ceil()
	c.drawText(img, startX+prefixW, dayBaseline, dayText, c.fonts.Date, clr)
}

func (c *Composer) drawEvents(img *image.RGBA, g grid.Grid, rowHeight float64) {
	latinM := text.FaceMeasurer{Face: c.fonts.EventLatin}
	jpM := text.FaceMeasurer{Face: c.fonts.EventJP}
	measure := func(s string) int {
		return text.ComposeLine(s, latinM, jpM).Width
	}

	for _, ev := range c.cfg.Events {
		spans := EventSpans(ev, g)
		if len(spans) == 0 {
			c.logger.Warn("event matches no visible days",
				zap.String("name", ev.Name),
				zap.Int("start", ev.Start),
				zap.Int("end", ev.End))
		}
		for _, span := range spans {
			c.drawEventBox(img, span, ev.Name, rowHeight, measure, latinM, jpM)
		}
	}
}

func (c *Composer) drawEventBox(img *image.RGBA, span EventSpan, label string, rowHeight float64,
	measure func(string) int, latinM, jpM text.FaceMeasurer) {

	yHours := yFirstRow + int(float64(span.Week)*rowHeight) + yHoursOffset
	yBoxTop := yHours + 18 + eventBoxGap

	xLeft := colX[span.StartCol] - colHalfWidth
	xRight := colX[span.EndCol] + colHalfWidth

	maxTextW := (xRight - xLeft) - eventBoxPadH*2
	lines := WrapLabel(label, maxTextW, measure)

	composed := make([]text.Line, len(lines))
	totalTextH := 0
	for i, line := range lines {
		composed[i] = text.ComposeLine(line, latinM, jpM)
		totalTextH += composed[i].Height
	}
	if len(lines) > 1 {
		totalTextH += eventLineGap * (len(lines) - 1)
	}

	boxH := totalTextH + eventBoxPadV*2
	yBoxBottom := yBoxTop + boxH

	strokeRect(img, xLeft, yBoxTop, xRight, yBoxBottom, colorDark)

	y := yBoxTop + eventBoxPadV
	for _, line := range composed {
		lineX := (xLeft+xRight)/2 - line.Width/2
		baseline := y + line.Baseline
		for _, run := range line.Runs {
			face := c.fonts.EventJP
			if run.Latin {
				face = c.fonts.EventLatin
			}
			c.drawText(img, lineX+run.X, baseline, run.Text, face, colorDark)
		}
		y += line.Height + eventLineGap
	}
}

func (c *Composer) drawBottomText(img *image.RGBA, numWeeks int, rowHeight float64) {
	if c.cfg.BottomText == "" {
		return
	}

	// Keep clear of the last row's hours line; whichever limit sits lower on
	// the page wins.
	lastRowBottom := yFirstRow + int(float64(numWeeks-1)*rowHeight) + yHoursOffset + 30
	y := yBottomText
	if lastRowBottom+60 > y {
		y = lastRowBottom + 60
	}

	latinM := text.FaceMeasurer{Face: c.fonts.BottomLatin}
	jpM := text.FaceMeasurer{Face: c.fonts.BottomJP}
	line := text.ComposeLine(c.cfg.BottomText, latinM, jpM)

	startX := (imgW - line.Width) / 2
	baseline := y - line.Height/2 + line.Baseline

	for _, run := range line.Runs {
		face := c.fonts.BottomJP
		if run.Latin {
			face = c.fonts.BottomLatin
		}
		c.drawText(img, startX+run.X, baseline, run.Text, face, colorDark)
	}
}

// drawText draws s with its baseline dot at (x, y).
func (c *Composer) drawText(img *image.RGBA, x, y int, s string, face font.Face, clr color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawCenteredText centers s on (x, y) both horizontally and vertically,
// using the face ascent/descent for the vertical extent.
func (c *Composer) drawCenteredText(img *image.RGBA, x, y int, s string, face font.Face, clr color.RGBA) {
	tw := font.MeasureString(face, s).Ceil()
	metrics := face.Metrics()
	th := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := y - th/2 + metrics.Ascent.Ceil()
	c.drawText(img, x-tw/2, baseline, s, face, clr)
}

// strokeRect draws a one-pixel rectangle outline.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, clr color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, clr)
		img.SetRGBA(x, y1, clr)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, clr)
		img.SetRGBA(x1, y, clr)
	}
}
