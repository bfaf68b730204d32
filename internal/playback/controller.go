package playback

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Option func(*Controller)

func WithClock(c Clock) Option { return func(ctl *Controller) { ctl.clock = c } }

func WithLogger(l *zap.Logger) Option { return func(ctl *Controller) { ctl.log = l } }

func WithSpeed(d time.Duration) Option { return func(ctl *Controller) { ctl.initial = NewState(d) } }

type request struct {
	action Action
	reply  chan State
}

// Controller owns one playback State and the timer that auto-advances it.
// Every action runs on the controller's loop goroutine, so at most one
// advance is ever pending.
type Controller struct {
	name    string
	clock   Clock
	log     *zap.Logger
	initial State

	requests chan request
	updates  chan State
	quit     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewController starts the controller loop; Close stops it.
func NewController(name string, opts ...Option) *Controller {
	c := &Controller{
		name:     name,
		clock:    RealClock{},
		log:      zap.NewNop(),
		initial:  NewState(DefaultSpeed),
		requests: make(chan request),
		updates:  make(chan State, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("controller", name))
	go c.run()
	return c
}

func (c *Controller) Name() string { return c.name }

func (c *Controller) Generate(total int) State { return c.do(Generate{Total: total}) }
func (c *Controller) Play() State { return c.do(Play{}) }
func (c *Controller) Pause() State { return c.do(Pause{}) }
func (c *Controller) Step() State { return c.do(Step{}) }
func (c *Controller) Reset() State { return c.do(Reset{}) }
func (c *Controller) SetSpeed(d time.Duration) State { return c.do(SetSpeed{Speed: d}) }

// Toggle pauses a playing controller and plays any other.
func (c *Controller) Toggle() State {
	if c.Snapshot().Playing {
		return c.Pause()
	}
	return c.Play()
}

// Snapshot returns the current state without changing it.
func (c *Controller) Snapshot() State { return c.do(nil) }

// Updates delivers the latest state after every change, including
// auto-advances. Only the newest unread state is kept. The channel is
// closed by Close.
func (c *Controller) Updates() <-chan State { return c.updates }

// Close cancels any pending advance and stops the loop. It is safe to call
// more than once; later calls to other methods return the zero State.
func (c *Controller) Close() {
	c.once.Do(func() { close(c.quit) })
	<-c.done
}

func (c *Controller) do(a Action) State {
	req := request{action: a, reply: make(chan State, 1)}
	select {
	case c.requests <- req:
		return <-req.reply
	case <-c.done:
		return State{}
	}
}

func (c *Controller) run() {
	defer close(c.done)
	defer close(c.updates)

	state := c.initial
	var (
		timer   Timer
		fired   <-chan time.Time
		pending uint64
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer, fired = nil, nil
		}
	}
	defer stopTimer()

	apply := func(a Action) {
		next, eff := Reduce(state, a)
		switch eff.Kind {
		case Cancel:
			stopTimer()
		case Schedule:
			stopTimer()
			timer = c.clock.NewTimer(eff.Delay)
			fired, pending = timer.C(), eff.Generation
		}
		changed := next != state
		state = next
		if ce := c.log.Check(zap.DebugLevel, "playback transition"); ce != nil {
			fields := []zap.Field{
				zap.String("action", ActionName(a)),
				zap.Int("index", state.Index),
				zap.Int("total", state.Total),
				zap.Bool("playing", state.Playing),
				zap.Stringer("status", state.Status()),
			}
			if t, ok := a.(Tick); ok {
				fields = append(fields, zap.Uint64("tick", t.Generation))
			}
			ce.Write(fields...)
		}
		if changed {
			c.publish(state)
		}
	}

	for {
		select {
		case req := <-c.requests:
			if req.action != nil {
				apply(req.action)
			}
			req.reply <- state
		case <-fired:
			timer, fired = nil, nil
			apply(Tick{Generation: pending})
		case <-c.quit:
			return
		}
	}
}

// publish keeps only the newest state in the buffer; the loop is the sole
// sender so the second send cannot block.
func (c *Controller) publish(s State) {
	select {
	case c.updates <- s:
		return
	default:
	}
	select {
	case <-c.updates:
	default:
	}
	c.updates <- s
}
