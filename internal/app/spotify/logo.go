package spotify

import "github.com/PixPMusic/gopher-midihub/internal/imaging"

// logoFrame renders the fixed 8x8 Spotify glyph: a green background with
// three white concentric arcs, matching
// original_source/apps/spotify/app/render_state.rs's get_logo byte-for-byte.
func logoFrame() imaging.Frame {
	green := imaging.Pixel{R: 0, G: 255, B: 0}
	white := imaging.Pixel{R: 255, G: 255, B: 255}

	rows := [8][8]bool{
		{false, false, false, false, false, false, false, false},
		{false, false, true, true, true, true, false, false},
		{false, true, false, false, false, false, true, false},
		{false, false, true, true, true, true, false, false},
		{false, true, false, false, false, false, true, false},
		{false, false, true, true, true, true, false, false},
		{false, true, false, false, false, false, true, false},
		{false, false, false, false, false, false, false, false},
	}

	frame := imaging.NewBlank(8, 8)
	for y, row := range rows {
		for x, isWhite := range row {
			if isWhite {
				frame.Set(uint16(x), uint16(y), white)
			} else {
				frame.Set(uint16(x), uint16(y), green)
			}
		}
	}
	return frame
}
