package render

import "github.com/mattn/go-runewidth"

var (
	rgbBannerBg   = RGB{R: 12, G: 12, B: 16}
	rgbBannerWin  = RGB{R: 120, G: 255, B: 120}
	rgbBannerLose = RGB{R: 255, G: 80, B: 80}
	rgbBannerText = RGB{R: 235, G: 235, B: 235}
)

// Banner draws a centered result box over whatever is on the canvas
func Banner(c *Canvas, title, reason string, won bool) {
	fg := rgbBannerLose
	if won {
		fg = rgbBannerWin
	}
	width := max(runewidth.StringWidth(title), runewidth.StringWidth(reason)) + 6
	x0 := max((c.width-width)/2, 0)
	y0 := max(c.height/2-2, 0)
	c.Box(x0, y0, x0+width, y0+4, fg, rgbBannerBg)
	c.TextBold(x0+(width-runewidth.StringWidth(title))/2, y0+1, title, fg)
	c.Text(x0+(width-runewidth.StringWidth(reason))/2, y0+2, reason, rgbBannerText)
}
