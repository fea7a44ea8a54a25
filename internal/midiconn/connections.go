// Package midiconn is the MIDI connection layer: it enumerates ports by
// name and reads/writes events and SysEx, leaving all semantic decoding to
// internal/devicekind. Grounded on the teacher's internal/midi/midi.go
// Manager, built on the same gitlab.com/gomidi/midi/v2 + rtmididrv stack.
package midiconn

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/PixPMusic/gopher-midihub/internal/apperr"
	"github.com/PixPMusic/gopher-midihub/internal/devicekind"
)

// ListInPorts returns the names of available MIDI input ports.
func ListInPorts() []string {
	return portNames(midi.GetInPorts())
}

// ListOutPorts returns the names of available MIDI output ports.
func ListOutPorts() []string {
	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

func portNames(ins drivers.Ins) []string {
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// In is a readable MIDI input port bound by name.
type In struct {
	port drivers.In
	stop func()
}

// Out is a writable MIDI output port bound by name, plus a bound send
// function used for both channel-voice messages and SysEx.
type Out struct {
	port drivers.Out
	send func(midi.Message) error
}

// OpenIn finds and opens an input port by name.
func OpenIn(name string) (*In, error) {
	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return &In{port: in}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperr.ErrDeviceNotFound, name)
}

// OpenOut finds and opens an output port by name.
func OpenOut(name string) (*Out, error) {
	for _, out := range midi.GetOutPorts() {
		if out.String() == name {
			send, err := midi.SendTo(out)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperr.ErrPortInit, err)
			}
			return &Out{port: out, send: send}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", apperr.ErrDeviceNotFound, name)
}

// Listen starts an asynchronous listener translating raw MIDI bytes into
// devicekind.Event values and delivering them to callback. Close stops the
// listener.
func (in *In) Listen(callback func(devicekind.Event)) error {
	stop, err := midi.ListenTo(in.port, func(msg midi.Message, _ int32) {
		var channel, key, velocity, control, value uint8
		var sysex []byte
		switch {
		case msg.GetNoteOn(&channel, &key, &velocity):
			callback(devicekind.MidiEvent(144, key, velocity, 0))
		case msg.GetNoteOff(&channel, &key, &velocity):
			callback(devicekind.MidiEvent(128, key, velocity, 0))
		case msg.GetControlChange(&channel, &control, &value):
			callback(devicekind.MidiEvent(176, control, value, 0))
		case msg.GetSysEx(&sysex):
			callback(devicekind.SysExEvent(append([]byte(nil), sysex...)))
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrRead, err)
	}
	in.stop = stop
	return nil
}

// Close stops the listener, if any.
func (in *In) Close() {
	if in.stop != nil {
		in.stop()
	}
}

// Write sends a devicekind.Event (channel-voice or SysEx) to the device.
func (o *Out) Write(e devicekind.Event) error {
	if e.IsSysEx {
		if err := o.send(midi.SysEx(e.SysEx)); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrWrite, err)
		}
		return nil
	}
	msg := midi.Message(e.Midi[:])
	if err := o.send(msg); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrWrite, err)
	}
	return nil
}
