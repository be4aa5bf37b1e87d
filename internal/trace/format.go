package trace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/swipelist/internal/domain"
)

// DefaultRowWidth is the row width used when a trace does not set one
const DefaultRowWidth = 400.0

// File is a recorded gesture trace with optional expectations
type File struct {
	Expect *Expect     `yaml:"expect,omitempty"`
	Name   string      `yaml:"name"`
	Steps  []Step      `yaml:"steps"`
	Swipe  RowSettings `yaml:"swipe"`
	Width  float64     `yaml:"width,omitempty"`
}

// RowSettings configures the replayed row
type RowSettings struct {
	AllowMouse       bool              `yaml:"allow_mouse,omitempty"`
	Axis             string            `yaml:"axis,omitempty"`
	Left             DirectionSettings `yaml:"left"`
	Right            DirectionSettings `yaml:"right"`
	SharedBackground bool              `yaml:"shared_background,omitempty"`
}

// DirectionSettings configures one direction of the replayed row
type DirectionSettings struct {
	After   string   `yaml:"after,omitempty"`
	Buttons []string `yaml:"buttons,omitempty"`
	DelayMs int      `yaml:"delay_ms,omitempty"`
	Fade    bool     `yaml:"fade,omitempty"`
}

// Step is one input of a trace; exactly one field is set
type Step struct {
	Advance       string            `yaml:"advance,omitempty"`
	Flush         bool              `yaml:"flush,omitempty"`
	Pan           *domain.PanSample `yaml:"pan,omitempty"`
	Tap           string            `yaml:"tap,omitempty"`
	TransitionEnd bool              `yaml:"transition_end,omitempty"`
}

// Expect lists the observable outcome of a trace
type Expect struct {
	Calls []Call   `yaml:"calls"`
	Log   []string `yaml:"log,omitempty"`
	Phase string   `yaml:"phase,omitempty"`
}

// Call is one completion callback, stamped with the virtual time it fired at
type Call struct {
	At        string           `yaml:"at"`
	Direction domain.Direction `yaml:"direction"`
}

// Load reads and parses a trace file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	return Parse(data)
}

// Parse decodes a trace, rejecting unknown fields
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty trace")
		}
		return nil, fmt.Errorf("invalid trace: %w", err)
	}

	if f.Width == 0 {
		f.Width = DefaultRowWidth
	}
	for i, step := range f.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &f, nil
}

func (s Step) validate() error {
	set := 0
	if s.Advance != "" {
		if _, err := time.ParseDuration(s.Advance); err != nil {
			return fmt.Errorf("invalid advance: %w", err)
		}
		set++
	}
	if s.Flush {
		set++
	}
	if s.Pan != nil {
		switch s.Pan.Phase {
		case domain.PanStart, domain.PanMove, domain.PanEnd, domain.PanCancel:
		default:
			return fmt.Errorf("invalid pan phase '%s'", s.Pan.Phase)
		}
		set++
	}
	if s.Tap != "" {
		set++
	}
	if s.TransitionEnd {
		set++
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one action, got %d", set)
	}
	return nil
}
