package aui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/aui/pkg/aui"
)

func TestReplacePointSwapsChild(t *testing.T) {
	f := newFixture(t)
	rp, err := f.factory.CreateReplacePoint(f.vbox)
	require.NoError(t, err)
	first, err := f.factory.CreatePushButton(rp, "First")
	require.NoError(t, err)
	f.open(t)
	require.Equal(t, aui.Widget(first), f.dialog.Focused())

	second, err := f.factory.CreateInputField(rp, "Second")
	require.NoError(t, err)
	rp.ShowChild()

	assert.True(t, first.Destroyed())
	assert.Equal(t, aui.Widget(second), rp.Child())
	assert.Equal(t, aui.Widget(second), f.dialog.Focused())
	assert.NotNil(t, f.backend.Handles[second], "the new child is realised")
	assert.True(t, f.backend.Handles[first].Destroyed)
}

func TestShowChildIsIdempotent(t *testing.T) {
	f := newFixture(t)
	rp, err := f.factory.CreateReplacePoint(f.vbox)
	require.NoError(t, err)
	label, err := f.factory.CreateLabel(rp, "content")
	require.NoError(t, err)
	f.open(t)

	rp.ShowChild()
	bounds := label.Bounds()
	handle := f.backend.Handles[label]
	rp.ShowChild()

	assert.Equal(t, bounds, label.Bounds())
	assert.Same(t, handle, f.backend.Handles[label])
	assert.Len(t, rp.Children(), 1)
}

func TestReplacePointDeleteChildren(t *testing.T) {
	f := newFixture(t)
	rp, err := f.factory.CreateReplacePoint(f.vbox)
	require.NoError(t, err)
	b, err := f.factory.CreatePushButton(rp, "Gone")
	require.NoError(t, err)
	f.open(t)

	rp.DeleteChildren()
	assert.Nil(t, rp.Child())
	assert.True(t, b.Destroyed())
	assert.Nil(t, f.dialog.Focused())

	rp.DeleteChildren()
	rp.ShowChild()
	assert.Nil(t, rp.Child())
}

func TestReplacedDefaultButtonIsForgotten(t *testing.T) {
	f := newFixture(t)
	rp, err := f.factory.CreateReplacePoint(f.vbox)
	require.NoError(t, err)
	ok, err := f.factory.CreatePushButton(rp, "OK")
	require.NoError(t, err)
	require.NoError(t, f.dialog.SetDefaultButton(ok))
	f.open(t)
	require.Equal(t, aui.Widget(ok), f.dialog.Focused())

	label, err := f.factory.CreateLabel(rp, "done")
	require.NoError(t, err)
	rp.ShowChild()

	assert.True(t, ok.Destroyed())
	assert.Nil(t, f.dialog.DefaultButton())
	assert.Nil(t, f.dialog.Focused())
	assert.Equal(t, aui.Widget(label), rp.Child())

	apply, err := f.factory.CreatePushButton(rp, "Apply")
	require.NoError(t, err)
	rp.ShowChild()
	require.NoError(t, f.dialog.SetDefaultButton(apply), "a new default can be set")
	assert.Equal(t, apply, f.dialog.DefaultButton())
}
