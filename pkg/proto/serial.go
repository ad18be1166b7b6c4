package proto

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// USB identity of the panel's CDC interface.
const (
	VendorID  = "1D6B"
	ProductID = "0106"
)

var (
	ErrNoDevice        = errors.New("no matching USB device found")
	ErrAmbiguousDevice = errors.New("multiple matching USB devices, no device selected")
)

type Options struct {
	DTR         bool
	RTS         bool
	BaudRate    int
	ReadTimeout time.Duration
}

// NewSerial wraps a serial port. An empty name means the port will be
// autodetected by USB vendor/product id on Open.
func NewSerial(name string) *Serial {
	return &Serial{name: name}
}

type Serial struct {
	name string
	port serial.Port
}

func (s *Serial) Ports() ([]string, error) {
	return serial.GetPortsList()
}

// Detect returns the paths of all connected ports matching the panel's
// vendor/product id pair. Zero or multiple results are for the caller
// to resolve, never an arbitrary pick.
func (s *Serial) Detect() ([]string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	return matchPorts(ports), nil
}

func matchPorts(ports []*enumerator.PortDetails) []string {
	var matched []string
	for _, p := range ports {
		if p.IsUSB && strings.EqualFold(p.VID, VendorID) && strings.EqualFold(p.PID, ProductID) {
			matched = append(matched, p.Name)
		}
	}
	return matched
}

// selectPort accepts exactly one detected path. Zero or multiple
// candidates are surfaced to the caller, never picked from.
func selectPort(found []string) (string, error) {
	switch len(found) {
	case 0:
		return "", ErrNoDevice
	case 1:
		return found[0], nil
	default:
		return "", errors.Wrap(ErrAmbiguousDevice, strings.Join(found, ", "))
	}
}

func (s *Serial) resolve() (string, error) {
	if s.name != "" {
		ports, err := s.Ports()
		if err != nil {
			return "", err
		}
		for _, name := range ports {
			if strings.Contains(name, s.name) {
				return name, nil
			}
		}
		return "", errors.Wrap(ErrNoDevice, s.name)
	}

	found, err := s.Detect()
	if err != nil {
		return "", err
	}
	return selectPort(found)
}

func (s *Serial) Open(opts *Options) error {
	matched, err := s.resolve()
	if err != nil {
		return err
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return err
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		return err
	}

	if err := port.SetRTS(opts.RTS); err != nil {
		return err
	}

	if opts.ReadTimeout > 0 {
		if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
			return err
		}
	}

	s.port = port
	return nil
}

func (s *Serial) Close() error {
	return s.port.Close()
}

func (s *Serial) ResetInput() error {
	return s.port.ResetInputBuffer()
}

func (s *Serial) Read(p []byte) (n int, err error) {
	return s.port.Read(p)
}

func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}
