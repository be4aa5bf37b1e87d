package swipe

import (
	"fmt"
	"math"
	"time"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
)

const (
	// ScrollThreshold is the vertical travel that turns a pan into a scroll
	ScrollThreshold = 60.0
	// FlickVelocity accepts a swipe regardless of travel
	FlickVelocity = 1.2
	// RemoveItemDelay is the duration of the collapse animation of a hidden item
	RemoveItemDelay = 400 * time.Millisecond
)

// Deps are the collaborators a Controller drives
type Deps struct {
	Presenter ports.Presenter
	Scheduler ports.Scheduler
	Source    ports.GestureSource
}

// commitContext is handed to every scheduled stage of a commit sequence
type commitContext struct {
	callback  Callback
	delay     time.Duration
	direction domain.Direction
	item      ports.Element
}

// Controller turns pan samples for one list item into visual state and swipe commits
type Controller struct {
	cfg       Configuration
	collapsed bool
	// collapsing is set once the collapse stage of a hide sequence has begun
	collapsing   bool
	destroyed    bool
	elements     ElementSet
	gate         *RestoreGate
	heightLocked bool
	presenter    ports.Presenter
	scheduler    ports.Scheduler
	session      Session
	timers       []ports.Timer
	unsubs       []func()
}

// Attach resolves the configured elements below container and starts listening to deps.Source.
// Configuration problems are returned as *domain.ConfigError.
func Attach(container ports.Element, cfg Configuration, deps Deps) (*Controller, error) {
	if deps.Presenter == nil || deps.Scheduler == nil {
		return nil, fmt.Errorf("swipe controller requires a presenter and a scheduler")
	}

	elements, err := ResolveElements(container, cfg)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:       cfg,
		elements:  elements,
		presenter: deps.Presenter,
		scheduler: deps.Scheduler,
		session:   idleSession(),
	}
	c.gate = NewRestoreGate(func() { c.restore(true) })

	for _, d := range domain.Directions {
		if cfg.Action(d) != domain.PostSwipeHide {
			continue
		}
		direction := d
		c.unsubs = append(c.unsubs, c.presenter.OnTransitionEnd(func() {
			c.onTransitionEnd(direction)
		}))
	}

	if deps.Source != nil {
		c.unsubs = append(c.unsubs, deps.Source.Subscribe(func(sample domain.PanSample) {
			if err := c.Handle(sample); err != nil {
				logging.Logger.Error("Swipe gesture failed", "error", err, "phase", sample.Phase)
			}
		}))
	}

	logging.Logger.Debug("Swipe controller attached",
		"item", container.Name(),
		"axis", cfg.Axis(),
		"left", cfg.Action(domain.DirectionLeft),
		"right", cfg.Action(domain.DirectionRight))

	return c, nil
}

// Session returns a copy of the current gesture session
func (c *Controller) Session() Session {
	return c.session
}

// Elements returns the resolved elements
func (c *Controller) Elements() ElementSet {
	return c.elements
}

// Collapsed reports whether a hide sequence has removed the item
func (c *Controller) Collapsed() bool {
	return c.collapsed
}

// Destroy detaches the gesture source, transition listeners and the restore gate,
// and stops pending stages.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.gate.Disarm()
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
	logging.Logger.Debug("Swipe controller destroyed", "item", c.elements.Container.Name())
}

// Handle processes one pan sample
func (c *Controller) Handle(sample domain.PanSample) error {
	if c.destroyed || c.collapsed {
		return nil
	}
	if sample.Pointer == domain.PointerMouse && !c.cfg.AllowMouse() {
		return nil
	}

	switch sample.Phase {
	case domain.PanStart:
		return c.onStart(sample)
	case domain.PanMove:
		c.onMove(sample)
	case domain.PanEnd:
		c.onEnd(sample, true)
	case domain.PanCancel:
		c.onEnd(sample, false)
	default:
		return fmt.Errorf("unknown pan phase '%s'", sample.Phase)
	}
	return nil
}

func (c *Controller) onStart(sample domain.PanSample) error {
	switch c.session.Phase {
	case PhaseSwipedOut:
		if c.session.Pending {
			logging.Logger.Debug("Ignoring gesture while hide sequence is pending")
			return nil
		}
		c.restore(true)
		return nil
	case PhaseRestoring:
		logging.Logger.Debug("Ignoring gesture while reset sequence is pending")
		return nil
	}

	geometry, err := ResolveGeometry(c.cfg, c.elements)
	if err != nil {
		c.session = idleSession()
		return fmt.Errorf("failed to resolve swipe geometry: %w", err)
	}

	c.session = Session{
		Compensation: sample.DeltaX,
		Geometry:     geometry,
		Phase:        PhaseDragging,
	}
	return nil
}

func (c *Controller) onMove(sample domain.PanSample) {
	if c.session.Phase != PhaseDragging {
		return
	}
	if c.scrolling(sample) {
		return
	}

	c.session.Percentage = c.percentage(sample.DeltaX)
	c.render(c.session.Percentage, false)
}

func (c *Controller) onEnd(sample domain.PanSample, released bool) {
	if !c.session.Active() {
		return
	}
	if c.session.Phase == PhaseScrollLocked || c.scrolling(sample) {
		c.session = idleSession()
		return
	}

	percentage := c.percentage(sample.DeltaX)
	c.session.Percentage = percentage

	if released {
		if d, ok := domain.DirectionOf(percentage); ok && c.accepts(d, percentage, sample.VelocityX) {
			c.commit(d)
			return
		}
	}

	c.session = idleSession()
	c.render(0, true)
}

// scrolling locks the gesture once vertical travel exceeds ScrollThreshold
func (c *Controller) scrolling(sample domain.PanSample) bool {
	if math.Abs(sample.DeltaY) <= ScrollThreshold {
		return false
	}
	logging.Logger.Debug("Swipe gesture turned into scroll", "dy", sample.DeltaY)
	c.session.Phase = PhaseScrollLocked
	c.session.Percentage = 0
	c.render(0, true)
	return true
}

func (c *Controller) percentage(deltaX float64) float64 {
	p := c.session.Geometry.Percentage(deltaX - c.session.Compensation)
	return c.cfg.Axis().Clamp(p)
}

func (c *Controller) accepts(d domain.Direction, percentage, velocity float64) bool {
	return c.beyondThreshold(d, percentage) || math.Abs(velocity) > FlickVelocity
}

// beyondThreshold reports whether percentage passes the threshold for d.
// Reaching the snap border of a button pane counts as passing.
func (c *Controller) beyondThreshold(d domain.Direction, percentage float64) bool {
	threshold := c.session.Geometry.Threshold[d]
	if c.cfg.Action(d) == domain.PostSwipeButton {
		return math.Abs(percentage) >= threshold
	}
	return math.Abs(percentage) > threshold
}

func (c *Controller) opacity(d domain.Direction, percentage float64) float64 {
	if !c.cfg.Direction(d).Fade {
		return 1
	}
	return 1 - math.Abs(percentage/100)
}

// render draws one frame of the drag at percentage
func (c *Controller) render(percentage float64, animate bool) {
	geometry := c.session.Geometry
	p := c.presenter

	p.SetFlag(domain.FlagAnimating, animate)
	c.hideAfterPanes()

	d, ok := domain.DirectionOf(percentage)
	if !ok {
		p.SetFlag(domain.FlagWillAccept, false)
		p.SetFlag(domain.FlagSwipingLeft, false)
		p.SetFlag(domain.FlagSwipingRight, false)
		p.SetForeground(0, 1)
		return
	}

	p.SetFlag(domain.FlagWillAccept, c.beyondThreshold(d, percentage))
	p.SetFlag(domain.SwipingFlag(d), true)
	p.SetFlag(domain.SwipingFlag(d.Opposite()), false)
	c.revealPane(c.elements.Background, c.elements.SharedBackground(), d, domain.PaneHidden)
	p.SetForeground(geometry.Offset(percentage), c.opacity(d, percentage))
}

func (c *Controller) hideAfterPanes() {
	for _, d := range domain.Directions {
		if pane := c.elements.After[d]; pane != nil {
			c.presenter.SetPaneFlag(pane, domain.PaneHidden, true)
		}
	}
}

// revealPane clears flag on the pane for d and sets it on the opposite one unless shared
func (c *Controller) revealPane(panes byDirection[ports.Element], shared bool, d domain.Direction, flag domain.PaneFlag) {
	if !shared {
		if other := panes[d.Opposite()]; other != nil {
			c.presenter.SetPaneFlag(other, flag, true)
		}
	}
	if pane := panes[d]; pane != nil {
		c.presenter.SetPaneFlag(pane, flag, false)
	}
}

// commit moves the foreground to its snap border and runs the post swipe sequence for d
func (c *Controller) commit(d domain.Direction) {
	opts := c.cfg.Direction(d)
	geometry := c.session.Geometry

	logging.Logger.Info("Swipe committed",
		"item", c.elements.Container.Name(),
		"direction", d,
		"action", opts.Action,
		"percentage", c.session.Percentage)

	c.presenter.SetFlag(domain.FlagAnimating, true)
	c.presenter.SetForeground(geometry.SnapBorder[d], c.opacity(d, c.session.Percentage))
	c.session.Phase = PhaseSwipedOut
	c.session.Direction = d

	cc := commitContext{
		callback:  c.cfg.callback,
		delay:     opts.Delay,
		direction: d,
		item:      c.elements.Container,
	}

	switch opts.Action {
	case domain.PostSwipeNone, domain.PostSwipeButton:
		c.gate.Arm(c.cfg.Boundary())
		c.schedule(cc.delay, cc, (*Controller).notify)
	case domain.PostSwipeBack:
		c.restore(true)
		c.schedule(cc.delay, cc, (*Controller).notify)
	case domain.PostSwipeReset:
		c.session.Phase = PhaseRestoring
		c.session.Pending = true
		c.schedule(cc.delay, cc, (*Controller).resetStage)
	case domain.PostSwipeHide:
		c.session.Pending = true
		c.revealPane(c.elements.After, c.elements.SharedAfter(), d, domain.PaneHidden)
		c.schedule(cc.delay, cc, (*Controller).collapseStage)
	}
}

// schedule runs stage after delay with cc; zero delays are still deferred
func (c *Controller) schedule(delay time.Duration, cc commitContext, stage func(*Controller, commitContext)) {
	var timer ports.Timer
	timer = c.scheduler.AfterFunc(delay, func() {
		c.forget(timer)
		if c.destroyed {
			return
		}
		stage(c, cc)
	})
	c.timers = append(c.timers, timer)
}

func (c *Controller) forget(timer ports.Timer) {
	for i, t := range c.timers {
		if t == timer {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (c *Controller) notify(cc commitContext) {
	if cc.callback == nil {
		return
	}
	cc.callback(cc.item, cc.direction)
}

func (c *Controller) resetStage(cc commitContext) {
	c.restore(false)
	c.notify(cc)
}

func (c *Controller) collapseStage(cc commitContext) {
	c.collapsing = true
	if !c.heightLocked {
		// the slide out has not reported its end yet
		c.lockHeight(cc.direction)
	}
	c.presenter.SetFlag(domain.FlagAnimating, true)
	c.presenter.SetHeight(0)
	c.schedule(RemoveItemDelay, cc, (*Controller).hiddenStage)
}

func (c *Controller) hiddenStage(cc commitContext) {
	c.presenter.SetFlag(domain.FlagHiddenCollapsed, true)
	c.presenter.SetFlag(domain.FlagAnimating, false)
	c.collapsed = true
	c.session = idleSession()
	logging.Logger.Debug("Swiped item collapsed", "item", cc.item.Name(), "direction", cc.direction)
	c.notify(cc)
}

// onTransitionEnd locks the container height once a hide swipe has slid out
func (c *Controller) onTransitionEnd(d domain.Direction) {
	if c.session.Phase != PhaseSwipedOut || c.session.Direction != d {
		return
	}
	if c.collapsing || c.heightLocked {
		return
	}
	c.lockHeight(d)
}

// lockHeight pins the container to its measured height so the collapse starts from it
func (c *Controller) lockHeight(d domain.Direction) {
	c.heightLocked = true
	c.presenter.SetHeight(c.elements.Container.Bounds().Height)
	if pane := c.elements.Background[d]; pane != nil {
		c.presenter.SetPaneFlag(pane, domain.PaneHide, true)
	}
}

// restore returns the item to idle: panes shown, offset 0, no accept hint
func (c *Controller) restore(animate bool) {
	c.gate.Disarm()
	for _, d := range domain.Directions {
		if pane := c.elements.Background[d]; pane != nil {
			c.presenter.SetPaneFlag(pane, domain.PaneHide, false)
		}
	}
	c.presenter.SetFlag(domain.FlagWillAccept, false)
	c.presenter.SetFlag(domain.FlagSwipingLeft, false)
	c.presenter.SetFlag(domain.FlagSwipingRight, false)
	c.presenter.SetFlag(domain.FlagAnimating, animate)
	c.presenter.SetForeground(0, 1)
	c.session = idleSession()
}
