package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

// stubApp is a minimal app.App used to exercise Selection without pulling
// in a real Forward/Spotify/YouTube instance.
type stubApp struct {
	name  string
	color [3]byte
}

func (s stubApp) Name() string        { return s.name }
func (s stubApp) Color() [3]byte      { return s.color }
func (s stubApp) Logo() imaging.Frame { return imaging.NewBlank(0, 0) }
func (s stubApp) Send(app.In) error   { return nil }
func (s stubApp) Receive() (app.Out, error) {
	return app.Out{}, nil
}

// stubTransformer encodes from_app_colors as a flat SysEx of concatenated
// RGB triples, matching the teacher's own test transformer.
type stubTransformer struct{}

func (stubTransformer) IntoAppIndex(e devicekind.Event) (int, bool) { return 0, false }

func (stubTransformer) FromAppColors(colors [][3]byte) (devicekind.Event, error) {
	var bytes []byte
	for _, c := range colors {
		bytes = append(bytes, c[0], c[1], c[2])
	}
	return devicekind.SysExEvent(bytes), nil
}

func (stubTransformer) FromImage(f imaging.Frame) (devicekind.Event, error) {
	return devicekind.Event{}, apperr.ErrUnsupported
}

func (stubTransformer) FromIndexToHighlight(i int) (devicekind.Event, error) {
	return devicekind.Event{}, apperr.ErrUnsupported
}

func TestRenderAppColorsOnInstantiation(t *testing.T) {
	apps := []app.App{
		stubApp{name: "spotify", color: [3]byte{0, 255, 0}},
		stubApp{name: "youtube", color: [3]byte{255, 0, 0}},
	}
	tr := stubTransformer{}
	sel := New(apps, tr, tr)

	out, err := sel.Receive()
	require.NoError(t, err)
	require.NotNil(t, out.Event)
	assert.True(t, out.Event.IsSysEx)
	assert.Equal(t, []byte{0, 255, 0, 255, 0, 0}, out.Event.SysEx)
}
