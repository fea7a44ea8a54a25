package youtube

import "github.com/PixPMusic/gopher-midihub/internal/imaging"

// logo renders the fixed 8x8 YouTube play-button glyph: a red background
// with a white filled triangle, matching
// original_source/apps/youtube/app.rs's get_logo byte-for-byte.
func logo() imaging.Frame {
	red := imaging.Pixel{R: 255, G: 0, B: 0}
	white := imaging.Pixel{R: 255, G: 255, B: 255}

	rows := [8][8]bool{
		{false, false, false, false, false, false, false, false},
		{false, false, false, true, false, false, false, false},
		{false, false, false, true, true, false, false, false},
		{false, false, false, true, true, true, false, false},
		{false, false, false, true, true, true, false, false},
		{false, false, false, true, true, false, false, false},
		{false, false, false, true, false, false, false, false},
		{false, false, false, false, false, false, false, false},
	}

	frame := imaging.NewBlank(8, 8)
	for y, row := range rows {
		for x, isWhite := range row {
			if isWhite {
				frame.Set(uint16(x), uint16(y), white)
			} else {
				frame.Set(uint16(x), uint16(y), red)
			}
		}
	}
	return frame
}
