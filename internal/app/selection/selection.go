// Package selection implements the app multiplexer: an ordered list of
// child apps, a currently selected one, and routing of both inbound events
// and outbound frames. Grounded on
// original_source/apps/selection/app.rs.
package selection

import (
	"fmt"
	"log"

	"github.com/PixPMusic/gopher-midihub/internal/app"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
	"github.com/PixPMusic/gopher-midihub/internal/imaging"
)

const Name = "selection"

var Color = [3]byte{255, 255, 255}

// Selection owns its children exclusively; children never reach back to
// Selection. Outbound feedback (the app-color bar, a freshly-selected
// app's logo) is composed here and queued on its own priority outbox,
// drained ahead of the selected child's outbox by Receive.
type Selection struct {
	apps         []app.App
	selectedApp  int
	appSelector  devicekind.AppSelector
	imageRenderer devicekind.ImageRenderer
	out          *app.Mailbox
}

// New constructs a Selection over the given ordered child apps. It
// immediately renders the app-color bar onto its own outbox, matching the
// teacher's render_app_colors-on-instantiation behavior.
func New(apps []app.App, appSelector devicekind.AppSelector, imageRenderer devicekind.ImageRenderer) *Selection {
	s := &Selection{
		apps:          apps,
		appSelector:   appSelector,
		imageRenderer: imageRenderer,
		out:           app.NewMailbox(),
	}
	s.renderAppColors()
	return s
}

func (s *Selection) renderAppColors() {
	colors := make([][3]byte, len(s.apps))
	for i, a := range s.apps {
		colors[i] = a.Color()
	}
	event, err := s.appSelector.FromAppColors(colors)
	if err != nil {
		log.Printf("[selection] could not render app colors: %v", err)
		return
	}
	if err := s.out.PushOut(app.EventOut(event)); err != nil {
		log.Printf("[selection] could not send app colors: %v", err)
	}
}

func (s *Selection) Name() string        { return Name }
func (s *Selection) Color() [3]byte      { return Color }
func (s *Selection) Logo() imaging.Frame { return imaging.NewBlank(0, 0) }

// Send either switches the selected app (rendering its logo onto
// Selection's own outbox) or forwards the event to the currently selected
// child.
func (s *Selection) Send(in app.In) error {
	if idx, ok := s.appSelector.IntoAppIndex(in.Midi); ok {
		if idx >= 0 && idx < len(s.apps) {
			s.selectedApp = idx
			selected := s.apps[idx]
			log.Printf("[selection] selecting %s", selected.Name())

			event, err := s.imageRenderer.FromImage(selected.Logo())
			if err != nil {
				log.Printf("[selection] could not transform the image: %v", err)
				return nil
			}
			if err := s.out.PushOut(app.EventOut(event)); err != nil {
				log.Printf("[selection] could not send the image: %v", err)
			}
			return nil
		}
	}

	if s.selectedApp < 0 || s.selectedApp >= len(s.apps) {
		return fmt.Errorf("no app found for index: %d", s.selectedApp)
	}
	selected := s.apps[s.selectedApp]
	if err := selected.Send(in); err != nil {
		log.Printf("[selection][%s] could not send event: %v", selected.Name(), err)
	}
	return nil
}

// Receive drains Selection's own priority outbox first, falling back to
// the currently selected child's outbox.
func (s *Selection) Receive() (app.Out, error) {
	if out, err := s.out.Receive(); err == nil {
		return out, nil
	}
	if s.selectedApp < len(s.apps) {
		return s.apps[s.selectedApp].Receive()
	}
	return app.Out{}, fmt.Errorf("no app found for index: %d", s.selectedApp)
}
