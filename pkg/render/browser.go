package render

import (
	"context"
	"encoding/base64"
	"math"

	"github.com/chromedp/chromedp"

	"github.com/matzehuels/timesnake/pkg/errors"
)

// BrowserPNG screenshots the SVG in headless Chrome. width and height are the
// document size in CSS pixels; scale multiplies the device pixel ratio.
// Requires a local Chrome or Chromium installation.
func BrowserPNG(ctx context.Context, svg []byte, width, height, scale float64) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(math.Ceil(width)), int64(math.Ceil(height)), chromedp.EmulateScale(scale)),
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	if err := chromedp.Run(tabCtx, tasks); err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "browser screenshot cancelled")
		}
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "browser screenshot failed (is Chrome installed?)")
	}
	if len(buf) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "browser returned an empty screenshot")
	}
	return buf, nil
}
