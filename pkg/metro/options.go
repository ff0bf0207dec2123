package metro

import "github.com/gogpu/gg"

// Margin is the buffer, in map units, added around every viewport before
// visibility is computed. Elements just outside the visible frame stay
// visible so that small scrolls do not pop them in.
const Margin = 10

// RenderOptions configures program-wide appearance.
type RenderOptions struct {
	// Background is the fill painted before any element.
	Background gg.RGBA

	// Selection is the highlight color of selected elements.
	Selection gg.RGBA

	// TransferColor is the foreground color of transfer marks.
	TransferColor gg.RGBA

	// TransferBackgroundColor is the halo drawn beneath transfer marks.
	TransferBackgroundColor gg.RGBA
}

// DefaultRenderOptions returns the standard map appearance: white paper,
// black transfer halos with white marks and an orange highlight.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Background:              gg.White,
		Selection:               gg.Hex("#FF8000"),
		TransferColor:           gg.White,
		TransferBackgroundColor: gg.Black,
	}
}
