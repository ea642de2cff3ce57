// Package player implements the per-station playback session lifecycle:
// decode-path selection, autoplay handling, volume/mute composition and
// analytics hooks. It holds no audio code itself; the embedding client
// supplies an Output (its media pipeline) and a Demuxer (its
// adaptive-streaming decoder) and forwards their completions here.
package player

import (
	"errors"
	"net/url"
	"strings"
	"sync"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
)

// ErrAutoplayBlocked is returned by an Output whose runtime policy rejects
// unsolicited playback. It is recoverable: the session stays paused and
// the user can start playback manually.
var ErrAutoplayBlocked = errors.New("autoplay blocked by runtime policy")

// ErrPlaybackUnsupported is returned when neither native decoding nor the
// demuxer can handle a stream.
var ErrPlaybackUnsupported = errors.New("no supported playback path for stream")

// ErrNoSession is returned for play/pause actions without an active session.
var ErrNoSession = errors.New("no active playback session")

// IsHLSLocator reports whether a stream locator points at an
// adaptive-streaming playlist, by the playlist marker in its path.
func IsHLSLocator(locator string) bool {
	path := locator
	if u, err := url.Parse(locator); err == nil && u.Path != "" {
		path = u.Path
	}
	return strings.Contains(path, ".m3u8") || strings.Contains(path, "m3u")
}

// State is the playback session state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateFailed  State = "failed"
)

// Output is the audio sink for one session. Implementations wrap the
// runtime's media pipeline; tests inject fakes.
type Output interface {
	// SetSource assigns a locator for direct or native-HLS decoding.
	// onReady fires once the output can begin playback, onError on
	// decode or network failure.
	SetSource(locator string, onReady func(), onError func(error))
	// Play starts playback. Returns ErrAutoplayBlocked when the runtime
	// rejects unsolicited playback.
	Play() error
	Pause()
	// SetVolume applies the effective volume, 0.0 to 1.0.
	SetVolume(volume float64)
	// SupportsHLS reports native adaptive-streaming support.
	SupportsHLS() bool
	Close()
}

// Demuxer is the adaptive-streaming decoder attached when the output has
// no native HLS support.
type Demuxer interface {
	// Supported reports whether the demuxer can run in this runtime.
	Supported() bool
	// Load fetches and parses the playlist and attaches the output.
	// onManifestParsed fires once the manifest is parsed.
	Load(locator string, out Output, onManifestParsed func(), onError func(error))
	Destroy()
}

// EventRecorder receives play/pause analytics events from the controller.
type EventRecorder interface {
	TrackEvent(stationID string, eventType models.EventType, metadata models.Metadata) error
}

// session binds one station to its decode resources. The generation
// number guards against completions from a torn-down session.
type session struct {
	gen     uint64
	station models.Station
	output  Output
	demuxer Demuxer
}

// Controller is the playback state machine. All methods are safe for
// concurrent use; completions carry their session generation and are
// dropped once the session has been superseded.
type Controller struct {
	mu         sync.Mutex
	newOutput  func() Output
	newDemuxer func() Demuxer
	recorder   EventRecorder

	gen     uint64
	sess    *session
	state   State
	lastErr error

	volume float64
	muted  bool
}

// NewController creates a Controller. newDemuxer may return nil when no
// demuxer library is available in the runtime.
func NewController(newOutput func() Output, newDemuxer func() Demuxer, recorder EventRecorder) *Controller {
	return &Controller{
		newOutput:  newOutput,
		newDemuxer: newDemuxer,
		recorder:   recorder,
		state:      StateIdle,
		volume:     0.75,
	}
}

// Select starts a session for the given station. Any previous session is
// fully torn down first: playback stopped, demuxer destroyed, output
// closed. Playback begins automatically once the stream is ready, unless
// the runtime blocks autoplay.
func (c *Controller) Select(station models.Station) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teardownLocked()

	c.gen++
	sess := &session{
		gen:     c.gen,
		station: station,
		output:  c.newOutput(),
	}
	c.sess = sess
	sess.output.SetVolume(c.effectiveVolumeLocked())

	gen := sess.gen
	onReady := func() { c.handleReady(gen) }
	onError := func(err error) { c.handleError(gen, err) }

	if IsHLSLocator(station.StreamURL) {
		if sess.output.SupportsHLS() {
			logging.Log.Debugf("player: using native HLS decoding for %s", station.Name)
			c.state = StateLoading
			sess.output.SetSource(station.StreamURL, onReady, onError)
			return nil
		}

		demuxer := c.newDemuxer()
		if demuxer == nil || !demuxer.Supported() {
			if demuxer != nil {
				demuxer.Destroy()
			}
			c.failLocked(ErrPlaybackUnsupported)
			return ErrPlaybackUnsupported
		}

		logging.Log.Debugf("player: attaching demuxer for %s", station.Name)
		sess.demuxer = demuxer
		c.state = StateLoading
		demuxer.Load(station.StreamURL, sess.output, onReady, onError)
		return nil
	}

	logging.Log.Debugf("player: using direct stream for %s", station.Name)
	c.state = StateLoading
	sess.output.SetSource(station.StreamURL, onReady, onError)
	return nil
}

// handleReady attempts autoplay once the stream is ready (can-play or
// manifest parsed). Stale completions are ignored.
func (c *Controller) handleReady(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil || c.sess.gen != gen {
		return
	}

	err := c.sess.output.Play()
	switch {
	case errors.Is(err, ErrAutoplayBlocked):
		// Not a failure: playback never started, so no play event either.
		logging.Log.Debugf("player: autoplay blocked for %s", c.sess.station.Name)
		c.state = StatePaused
	case err != nil:
		c.failLocked(err)
	default:
		c.state = StatePlaying
		c.recordLocked(models.EventPlay)
	}
}

// handleError moves the session to Failed on a fatal decode or network
// error. Stale completions are ignored.
func (c *Controller) handleError(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil || c.sess.gen != gen {
		return
	}
	logging.Log.Warnf("player: session for %s failed: %v", c.sess.station.Name, err)
	c.failLocked(err)
}

// Play starts playback for the active session (user action).
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return ErrNoSession
	}
	if c.state == StatePlaying {
		return nil
	}

	if err := c.sess.output.Play(); err != nil {
		if errors.Is(err, ErrAutoplayBlocked) {
			c.state = StatePaused
			return err
		}
		c.failLocked(err)
		return err
	}

	c.state = StatePlaying
	c.recordLocked(models.EventPlay)
	return nil
}

// Pause pauses playback for the active session (user action).
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return ErrNoSession
	}
	if c.state == StatePaused {
		return nil
	}

	c.sess.output.Pause()
	c.state = StatePaused
	c.recordLocked(models.EventPause)
	return nil
}

// SetVolume sets the volume slider, 0.0 to 1.0, and applies it to the
// live output immediately.
func (c *Controller) SetVolume(volume float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	c.volume = volume
	c.applyVolumeLocked()
}

// SetMuted toggles mute independently of the volume slider.
func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = muted
	c.applyVolumeLocked()
}

// Stop tears the active session down and returns to Idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked()
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error that moved the session to Failed, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// CurrentStation returns the station of the active session, or nil.
func (c *Controller) CurrentStation() *models.Station {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return nil
	}
	st := c.sess.station
	return &st
}

// Volume returns the slider value and mute flag.
func (c *Controller) Volume() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume, c.muted
}

// effectiveVolumeLocked composes mute and slider: 0 if muted, else the
// slider value.
func (c *Controller) effectiveVolumeLocked() float64 {
	if c.muted {
		return 0
	}
	return c.volume
}

func (c *Controller) applyVolumeLocked() {
	if c.sess != nil {
		c.sess.output.SetVolume(c.effectiveVolumeLocked())
	}
}

// teardownLocked releases the demuxer and output of the active session
// and resets to Idle. Safe to call in any state.
func (c *Controller) teardownLocked() {
	if c.sess != nil {
		if c.sess.demuxer != nil {
			c.sess.demuxer.Destroy()
			c.sess.demuxer = nil
		}
		c.sess.output.Pause()
		c.sess.output.Close()
		c.sess = nil
	}
	c.state = StateIdle
	c.lastErr = nil
}

// failLocked releases all session resources but keeps the Failed state
// visible until the user retries or selects another station.
func (c *Controller) failLocked(err error) {
	if c.sess != nil {
		if c.sess.demuxer != nil {
			c.sess.demuxer.Destroy()
			c.sess.demuxer = nil
		}
		c.sess.output.Pause()
		c.sess.output.Close()
		c.sess = nil
	}
	c.state = StateFailed
	c.lastErr = err
}

// recordLocked emits a play/pause analytics event for the active session.
// A failed write never interrupts playback.
func (c *Controller) recordLocked(eventType models.EventType) {
	if c.recorder == nil || c.sess == nil {
		return
	}
	if err := c.recorder.TrackEvent(c.sess.station.ID, eventType, nil); err != nil {
		logging.Log.Warnf("player: failed to record %s event for station %s: %v", eventType, c.sess.station.ID, err)
	}
}
