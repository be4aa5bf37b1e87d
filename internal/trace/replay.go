package trace

import (
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/renato0307/swipelist/internal/adapters/clock"
	"github.com/renato0307/swipelist/internal/adapters/view"
	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
	"github.com/renato0307/swipelist/internal/swipe"
)

const rowHeight = 4 * view.CellHeight

// Result is what a replay observed
type Result struct {
	Calls     []Call
	Collapsed bool
	Log       []string
	Phase     string
}

// Replay runs the steps of f against a fresh row on virtual time
func Replay(f *File) (*Result, error) {
	page := view.NewNode("page", domain.Rect{Width: f.Width, Height: 10 * rowHeight})
	row := view.BuildRow(f.layout())
	page.Append(row)

	presenter := view.NewRecorder()
	scheduler := clock.NewManual()
	result := &Result{Calls: []Call{}}

	cfg, err := swipe.NewConfiguration(swipe.Options{
		AllowMouse: f.Swipe.AllowMouse,
		Axis:       domain.Axis(f.Swipe.Axis),
		Boundary:   page,
		Callback: func(_ ports.Element, d domain.Direction) {
			result.Calls = append(result.Calls, Call{At: scheduler.Now().String(), Direction: d})
		},
		Foreground: "fg",
		Left:       f.Swipe.Left.options(f.backgroundName(domain.DirectionLeft), "after-left"),
		Right:      f.Swipe.Right.options(f.backgroundName(domain.DirectionRight), "after-right"),
	})
	if err != nil {
		return nil, err
	}

	ctrl, err := swipe.Attach(row, cfg, swipe.Deps{Presenter: presenter, Scheduler: scheduler})
	if err != nil {
		return nil, err
	}
	defer ctrl.Destroy()

	logging.Logger.Debug("Replaying trace", "name", f.Name, "steps", len(f.Steps))

	for i, step := range f.Steps {
		if err := runStep(step, ctrl, page, presenter, scheduler); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	result.Collapsed = ctrl.Collapsed()
	result.Log = presenter.Log()
	result.Phase = string(ctrl.Session().Phase)
	return result, nil
}

func runStep(
	step Step,
	ctrl *swipe.Controller,
	page *view.Node,
	presenter *view.Recorder,
	scheduler *clock.Manual,
) error {
	switch {
	case step.Pan != nil:
		sample := *step.Pan
		if sample.Pointer == "" {
			sample.Pointer = domain.PointerTouch
		}
		return ctrl.Handle(sample)
	case step.Advance != "":
		d, err := time.ParseDuration(step.Advance)
		if err != nil {
			return err
		}
		scheduler.Advance(d)
	case step.Flush:
		scheduler.Flush()
	case step.Tap != "":
		target := page.Find(step.Tap)
		if target == nil {
			return fmt.Errorf("no element named '%s'", step.Tap)
		}
		view.Tap(target)
	case step.TransitionEnd:
		presenter.EndTransition()
	}
	return nil
}

// Verify compares a result with the expectations of f and returns a diff, empty when they match.
// Expectations left unset are not compared.
func (f *File) Verify(r *Result) string {
	if f.Expect == nil {
		return ""
	}

	got := Expect{Calls: r.Calls}
	if f.Expect.Log != nil {
		got.Log = r.Log
	}
	if f.Expect.Phase != "" {
		got.Phase = r.Phase
	}
	return cmp.Diff(*f.Expect, got, cmpopts.EquateEmpty())
}

func (f *File) backgroundName(d domain.Direction) string {
	if f.Swipe.SharedBackground {
		return "bg"
	}
	return "bg-" + string(d)
}

func (f *File) layout() view.RowLayout {
	buttons := make(map[domain.Direction][]string)
	for _, d := range domain.Directions {
		ds := f.Swipe.Left
		if d == domain.DirectionRight {
			ds = f.Swipe.Right
		}
		buttons[d] = ds.Buttons
	}

	return view.RowLayout{
		AfterBackground: map[domain.Direction]string{
			domain.DirectionLeft:  "after-left",
			domain.DirectionRight: "after-right",
		},
		Background: map[domain.Direction]string{
			domain.DirectionLeft:  f.backgroundName(domain.DirectionLeft),
			domain.DirectionRight: f.backgroundName(domain.DirectionRight),
		},
		Bounds:     domain.Rect{X: 0, Y: rowHeight, Width: f.Width, Height: rowHeight},
		Buttons:    buttons,
		Foreground: "fg",
		Name:       "row",
	}
}

func (s DirectionSettings) options(background, after string) swipe.DirectionOptions {
	return swipe.DirectionOptions{
		Action:          domain.PostSwipeAction(s.After),
		AfterBackground: after,
		Background:      background,
		Delay:           time.Duration(s.DelayMs) * time.Millisecond,
		Fade:            s.Fade,
	}
}
