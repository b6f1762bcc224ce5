package fillrush

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BucketConfig parametrizes a Bucket. All bucket variants in a level share
// this one type; they differ only in their config values.
type BucketConfig struct {
	// InitialProgress is the fill level at creation and after Reset.
	InitialProgress int
	// FillStep is the amount added by Fill.
	FillStep int
	// VolumeCurve selects the progress to gain mapping.
	VolumeCurve VolumeCurve
	// VolumeKnee is the progress at which VolumeClampedToOne reaches full
	// gain. Ignored by VolumeLinear. Non-positive values mean MaxProgress.
	VolumeKnee float64
	// DecayEnabled turns on the automatic drain after a quiet period.
	DecayEnabled bool
	// DecayDelay is the wait between an AddFill and the decay check.
	DecayDelay time.Duration
	// DecayDuration is how long the drain animation takes to reach zero.
	DecayDuration time.Duration
	// IdleThreshold is the minimum time without an AddFill required for the
	// decay check to start draining.
	IdleThreshold time.Duration
	// DecayEase shapes the drain animation. Nil means ease.InOutQuad.
	DecayEase ease.TweenFunc
}

// DefaultBucketConfig returns the standard bucket tuning: 25 per fill, linear
// volume, drain to empty over 2.2s once left alone for 3s.
func DefaultBucketConfig() BucketConfig {
	return BucketConfig{
		InitialProgress: 0,
		FillStep:        25,
		VolumeCurve:     VolumeLinear,
		VolumeKnee:      50,
		DecayEnabled:    true,
		DecayDelay:      3000 * time.Millisecond,
		DecayDuration:   2200 * time.Millisecond,
		IdleThreshold:   600 * time.Millisecond,
		DecayEase:       ease.InOutQuad,
	}
}

// Bucket is a fillable container. Progress is an integer in [0, 100]; every
// change recomputes the visual scale and audio gain and pushes them to the
// attached sinks.
//
// A Bucket is owned by a single goroutine (the frame loop) and must be
// advanced with Update once per frame.
type Bucket struct {
	// Name identifies the bucket in debug output.
	Name string
	// Position is the steering target emitters head for.
	Position Vec2
	// Radius is the arrival radius used by RadiusDetector.
	Radius float64

	config BucketConfig
	sched  *Scheduler

	progress int
	scale    float64
	gain     float64
	locked   bool
	disposed bool

	idle      time.Duration
	decayTask *Task
	decay     *gween.Tween

	gainSink  GainSink
	scaleSink ScaleSink
	events    EventSink
	index     int
}

// NewBucket creates a bucket at pos. sched runs the delayed decay check; a
// nil scheduler disables decay for this bucket.
func NewBucket(name string, pos Vec2, sched *Scheduler, cfg BucketConfig) *Bucket {
	if cfg.DecayEase == nil {
		cfg.DecayEase = ease.InOutQuad
	}
	b := &Bucket{
		Name:     name,
		Position: pos,
		Radius:   defaultBucketRadius,
		config:   cfg,
		sched:    sched,
		index:    -1,
	}
	b.apply(clampProgress(cfg.InitialProgress))
	return b
}

const defaultBucketRadius = 24

// SetSinks attaches the audio gain and visual scale outputs. Either may be
// nil. The current values are written immediately.
func (b *Bucket) SetSinks(gain GainSink, scale ScaleSink) {
	b.gainSink = gain
	b.scaleSink = scale
	b.publish()
}

// SetEventSink sets the destination for fill and decay events.
func (b *Bucket) SetEventSink(sink EventSink) {
	b.events = sink
}

// Config returns the bucket's configuration.
func (b *Bucket) Config() BucketConfig { return b.config }

// Progress returns the current fill level in [0, 100].
func (b *Bucket) Progress() int { return b.progress }

// Full reports whether the bucket reached MaxProgress.
func (b *Bucket) Full() bool { return b.progress >= MaxProgress }

// Scale returns the visual scale factor, progress/100.
func (b *Bucket) Scale() float64 { return b.scale }

// Gain returns the audio gain derived from progress and the volume curve.
func (b *Bucket) Gain() float64 { return b.gain }

// Locked reports whether progress is frozen.
func (b *Bucket) Locked() bool { return b.locked }

// Decaying reports whether the drain animation is running.
func (b *Bucket) Decaying() bool { return b.decay != nil }

// DecayPending reports whether a decay check is scheduled.
func (b *Bucket) DecayPending() bool { return b.decayTask.Active() }

// Alive reports whether the bucket has not been disposed.
func (b *Bucket) Alive() bool { return !b.disposed }

// SetProgress clamps v to [0, 100] and stores it, then updates the scale and
// gain outputs. It is a no-op on a locked or disposed bucket.
func (b *Bucket) SetProgress(v int) {
	if b.locked || b.disposed {
		return
	}
	b.apply(clampProgress(v))
}

// AddFill raises progress by step (clamped), restarts the idle clock, stops
// any running or pending decay, and schedules a fresh decay check
// DecayDelay from now. Locked buckets ignore the call.
func (b *Bucket) AddFill(step int) {
	if b.locked || b.disposed {
		return
	}
	b.stopDecay()
	b.SetProgress(b.progress + step)
	b.idle = 0
	b.emit(EventFill)
	if b.config.DecayEnabled && b.sched != nil {
		b.decayTask = b.sched.After(b.config.DecayDelay, b, b.checkDecay)
	}
}

// Fill is AddFill with the configured FillStep.
func (b *Bucket) Fill() {
	b.AddFill(b.config.FillStep)
}

// Lock freezes progress at its current value and cancels any decay. Only
// Reset unlocks the bucket.
func (b *Bucket) Lock() {
	if b.locked {
		return
	}
	b.stopDecay()
	b.locked = true
}

// Reset unlocks the bucket, cancels decay and restores InitialProgress.
func (b *Bucket) Reset() {
	b.stopDecay()
	b.locked = false
	b.idle = 0
	b.apply(clampProgress(b.config.InitialProgress))
}

// Dispose cancels all scheduled work for the bucket. A disposed bucket
// ignores every mutation.
func (b *Bucket) Dispose() {
	if b.disposed {
		return
	}
	b.stopDecay()
	if b.sched != nil {
		b.sched.CancelOwner(b)
	}
	b.disposed = true
}

// Update advances the idle clock and the drain animation by dt seconds.
func (b *Bucket) Update(dt float64) {
	if b.disposed {
		return
	}
	b.idle += seconds(dt)
	if b.decay == nil {
		return
	}
	val, finished := b.decay.Update(float32(dt))
	next := int(math.Round(float64(val)))
	if finished {
		next = 0
		b.decay = nil
	}
	// The drain never raises progress, even if the easing overshoots.
	if next < b.progress {
		b.SetProgress(next)
	}
}

// checkDecay runs DecayDelay after the last AddFill.
func (b *Bucket) checkDecay() {
	b.decayTask = nil
	if b.locked || b.disposed || !b.config.DecayEnabled {
		return
	}
	if b.idle < b.config.IdleThreshold || b.progress == 0 {
		return
	}
	b.decay = gween.New(float32(b.progress), 0, float32(b.config.DecayDuration.Seconds()), b.config.DecayEase)
	b.emit(EventDecayStart)
}

func (b *Bucket) stopDecay() {
	b.decayTask.Cancel()
	b.decayTask = nil
	b.decay = nil
}

func (b *Bucket) apply(p int) {
	b.progress = p
	b.scale = float64(p) / MaxProgress
	b.gain = volumeFor(b.config.VolumeCurve, b.config.VolumeKnee, p)
	b.publish()
}

func (b *Bucket) publish() {
	if b.scaleSink != nil {
		b.scaleSink.SetScaleY(b.scale)
	}
	if b.gainSink != nil {
		b.gainSink.SetGain(b.gain)
	}
}

func (b *Bucket) emit(t EventType) {
	if b.events == nil {
		return
	}
	b.events.EmitEvent(GameEvent{
		Type:     t,
		Bucket:   b.index,
		Progress: b.progress,
		Position: b.Position,
	})
}

// volumeFor maps progress to an audio gain in [0, 1].
func volumeFor(curve VolumeCurve, knee float64, progress int) float64 {
	switch curve {
	case VolumeClampedToOne:
		if knee <= 0 {
			knee = MaxProgress
		}
		return math.Min(1, float64(progress)/knee)
	default:
		return float64(progress) / MaxProgress
	}
}
