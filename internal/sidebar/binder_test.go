package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/parley/internal/prefs"
)

type published struct {
	width  DisplayWidth
	narrow bool
}

type recordingSink struct {
	got []published
}

func (r *recordingSink) PublishDisplayWidth(w DisplayWidth, narrow bool) {
	r.got = append(r.got, published{w, narrow})
}

func (r *recordingSink) last() published {
	return r.got[len(r.got)-1]
}

func TestBind_PublishesInitialWidth(t *testing.T) {
	store := prefs.New(prefs.Prefs{SidebarWidth: 300}, nil)
	sink := &recordingSink{}

	b := Bind(testPolicy, store, Desktop, sink)
	defer b.Close()

	require.Len(t, sink.got, 1)
	assert.Equal(t, published{DisplayWidth{Cells: 300}, false}, sink.last())
}

func TestBind_MobileOverride(t *testing.T) {
	store := prefs.New(prefs.Prefs{SidebarWidth: 500}, nil)
	sink := &recordingSink{}

	b := Bind(testPolicy, store, Compact, sink)
	defer b.Close()

	assert.Equal(t, FullWidth, sink.last().width)
	assert.NotEqual(t, DisplayWidth{Cells: 500}, sink.last().width)
	assert.False(t, b.Narrow())
}

func TestBind_RepublishesOnStoreChange(t *testing.T) {
	store := prefs.New(prefs.Prefs{SidebarWidth: 300}, nil)
	sink := &recordingSink{}
	b := Bind(testPolicy, store, Desktop, sink)
	defer b.Close()

	store.Update(func(p *prefs.Prefs) { p.SidebarWidth = 80 })

	assert.Equal(t, published{DisplayWidth{Cells: 80}, true}, sink.last())
	assert.True(t, b.Narrow())
}

func TestBind_SkipsUnchangedInputs(t *testing.T) {
	store := prefs.New(prefs.Prefs{SidebarWidth: 300}, nil)
	sink := &recordingSink{}
	b := Bind(testPolicy, store, Desktop, sink)
	defer b.Close()

	store.Update(func(p *prefs.Prefs) { p.SidebarWidth = 300 })
	b.SetDeviceClass(Desktop)

	assert.Len(t, sink.got, 1)
}

func TestBind_DeviceClassChange(t *testing.T) {
	store := prefs.New(prefs.Prefs{SidebarWidth: 80}, nil)
	sink := &recordingSink{}
	b := Bind(testPolicy, store, Desktop, sink)
	defer b.Close()
	require.True(t, b.Narrow())

	b.SetDeviceClass(Compact)
	assert.Equal(t, published{FullWidth, false}, sink.last())
	assert.Equal(t, Compact, b.DeviceClass())

	b.SetDeviceClass(Desktop)
	assert.Equal(t, published{DisplayWidth{Cells: 80}, true}, sink.last())
	assert.Len(t, sink.got, 3)
}

func TestBind_CloseStopsPublishing(t *testing.T) {
	store := prefs.New(prefs.Prefs{SidebarWidth: 300}, nil)
	sink := &recordingSink{}
	b := Bind(testPolicy, store, Desktop, sink)

	b.Close()
	b.Close()
	store.Update(func(p *prefs.Prefs) { p.SidebarWidth = 400 })

	assert.Len(t, sink.got, 1)
	assert.Equal(t, 0, store.Subscribers())
}

func TestBind_DragEndToEnd(t *testing.T) {
	h := newDragHarness(t, 300)
	var widths []string
	b := Bind(testPolicy, h.store, Desktop, SinkFunc(func(w DisplayWidth, _ bool) {
		widths = append(widths, w.String())
	}))
	defer b.Close()

	h.ctrl.Start(100)
	h.at(25)
	h.move(250)
	h.at(400)
	h.up(250)

	assert.Equal(t, []string{"300c", "450c"}, widths)
	assert.Equal(t, DisplayWidth{Cells: 450}, b.DisplayWidth())
}
