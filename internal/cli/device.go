package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/PixPMusic/gopher-midihub/internal/config"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
)

// addDevice registers a MIDI port under a freshly generated id, the same
// role the teacher's config.NewDeviceConfig plays when a device is added
// through the UI (here, through the CLI instead).
func addDevice(name, kind string) error {
	k := devicekind.Kind(kind)
	if k != devicekind.Default && k != devicekind.LaunchpadPro {
		return fmt.Errorf("cli: unknown device type %q (want %q or %q)", kind, devicekind.Default, devicekind.LaunchpadPro)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cli: could not load config: %w", err)
	}
	if cfg.Devices == nil {
		cfg.Devices = map[string]config.Device{}
	}

	id := uuid.New().String()
	cfg.Devices[id] = config.Device{Name: name, Type: k}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("cli: could not save config: %w", err)
	}

	fmt.Printf("Registered device %q (%s) as %s\n", name, kind, id)
	return nil
}
