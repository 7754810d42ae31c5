package ebitenhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/shooter/internal/domain/geom"
)

func TestRenderer_CopyRejectsNegativeSizes(t *testing.T) {
	r := &Renderer{}
	tex := &Texture{}
	dst := geom.New(0, 0, 8, 8)

	assert.Panics(t, func() { r.Copy(tex, geom.New(0, 0, -1, 4), dst) })
	assert.Panics(t, func() { r.Copy(tex, geom.New(0, 0, 4, -1), dst) })
	assert.Panics(t, func() { r.Copy(tex, geom.New(0, 0, 4, 4), geom.New(0, 0, -8, 8)) })
}

func TestRenderer_CopySkipsEmptySource(t *testing.T) {
	r := &Renderer{}
	tex := &Texture{}

	assert.NotPanics(t, func() { r.Copy(tex, geom.New(0, 0, 0, 4), geom.New(0, 0, 8, 8)) })
}
