package spotify

// PlaybackKind is the locally-tracked intent/observation state for the
// currently selected track. Grounded on
// original_source/apps/spotify/app/playback.rs's PlaybackState enum.
type PlaybackKind int

const (
	Paused PlaybackKind = iota
	Pausing
	Requested
	Playing
)

// PlaybackState pairs a PlaybackKind with the track index it refers to
// (meaningful only for Requested and Playing).
type PlaybackState struct {
	Kind  PlaybackKind
	Index int
}
