package sidebar

import "github.com/llehouerou/parley/internal/prefs"

// Sink receives the published display width.
type Sink interface {
	PublishDisplayWidth(width DisplayWidth, narrow bool)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(width DisplayWidth, narrow bool)

// PublishDisplayWidth implements Sink.
func (f SinkFunc) PublishDisplayWidth(width DisplayWidth, narrow bool) {
	f(width, narrow)
}

// SubscribableStore is the read side of the preference store.
type SubscribableStore interface {
	Read() prefs.Prefs
	Subscribe(fn func(prefs.Prefs)) (unsubscribe func())
}

// Binder republishes the display width whenever the persisted width, the
// device class or the narrow classification changes.
type Binder struct {
	policy Policy
	sink   Sink
	unsub  func()

	width  int
	class  DeviceClass
	narrow bool
}

// Bind subscribes to store and publishes the current display width once.
func Bind(policy Policy, store SubscribableStore, class DeviceClass, sink Sink) *Binder {
	b := &Binder{
		policy: policy,
		sink:   sink,
		width:  store.Read().SidebarWidth,
		class:  class,
	}
	b.narrow = policy.IsNarrow(b.width, class == Compact)
	b.publish()
	b.unsub = store.Subscribe(func(p prefs.Prefs) {
		b.recompute(p.SidebarWidth, b.class)
	})
	return b
}

// SetDeviceClass updates the device class, republishing if it changed.
func (b *Binder) SetDeviceClass(class DeviceClass) {
	b.recompute(b.width, class)
}

// DeviceClass returns the current device class.
func (b *Binder) DeviceClass() DeviceClass {
	return b.class
}

// Narrow returns the current narrow classification.
func (b *Binder) Narrow() bool {
	return b.narrow
}

// DisplayWidth returns the last published width.
func (b *Binder) DisplayWidth() DisplayWidth {
	d, _ := b.policy.Resolve(b.width, b.class)
	return d
}

// Close stops listening to the store.
func (b *Binder) Close() {
	if b.unsub != nil {
		b.unsub()
		b.unsub = nil
	}
}

func (b *Binder) recompute(width int, class DeviceClass) {
	narrow := b.policy.IsNarrow(width, class == Compact)
	if width == b.width && class == b.class && narrow == b.narrow {
		return
	}
	b.width = width
	b.class = class
	b.narrow = narrow
	b.publish()
}

func (b *Binder) publish() {
	d, narrow := b.policy.Resolve(b.width, b.class)
	b.sink.PublishDisplayWidth(d, narrow)
}
