package study_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lcampos/notedeck/internal/study"
)

func TestKeyBinding_Mapping(t *testing.T) {
	s := study.NewDeckSession(threeCards())
	fullscreens := 0
	b := study.NewKeyBinding(s, func() { fullscreens++ }, false)

	res := b.Handle(study.KeyArrowRight)
	assert.True(t, res.Handled)
	assert.Equal(t, 1, s.Index())

	res = b.Handle(study.KeyArrowLeft)
	assert.True(t, res.Handled)
	assert.Equal(t, 0, s.Index())

	res = b.Handle(study.KeySpace)
	assert.True(t, res.Handled)
	assert.True(t, res.SuppressDefault, "spacebar must suppress default scroll")
	assert.True(t, s.IsFlipped())

	res = b.Handle(study.KeyFullscreen)
	assert.True(t, res.Handled)
	assert.Equal(t, 1, fullscreens, "fullscreen is delegated to the caller")

	res = b.Handle(study.Key("x"))
	assert.False(t, res.Handled, "unbound keys pass through")
}

func TestKeyBinding_TouchPrimarySuspends(t *testing.T) {
	s := study.NewDeckSession(threeCards())
	b := study.NewKeyBinding(s, nil, true)

	res := b.Handle(study.KeyArrowRight)
	assert.False(t, res.Handled)
	assert.Equal(t, 0, s.Index(), "suspended binding never drives the session")
}

func TestKeyBinding_CloseReleases(t *testing.T) {
	s := study.NewDeckSession(threeCards())
	b := study.NewKeyBinding(s, nil, false)

	b.Close()
	b.Close() // idempotent

	res := b.Handle(study.KeyArrowRight)
	assert.False(t, res.Handled)
	assert.Equal(t, 0, s.Index())
}

func TestKeyBinding_NilFullscreen(t *testing.T) {
	s := study.NewDeckSession(threeCards())
	b := study.NewKeyBinding(s, nil, false)

	res := b.Handle(study.KeyFullscreen)
	assert.True(t, res.Handled, "fullscreen key is consumed even without a callback")
}

func TestKeyBinding_DrivesQuizSession(t *testing.T) {
	q := study.NewQuizSession(threeCards())
	b := study.NewKeyBinding(q, nil, false)

	b.Handle(study.KeyArrowRight)
	assert.Equal(t, 1, q.Index())
}
