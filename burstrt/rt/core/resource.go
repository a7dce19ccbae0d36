package core

import (
	"errors"
	"fmt"
)

var (
	ErrDoubleRelease   = errors.New("resource released twice")
	ErrBurstDead       = errors.New("burst already torn down")
	ErrAlreadyLaunched = errors.New("burst already launched")
	ErrSpriteIndex     = errors.New("sprite index out of range")
)

// OwnedResource guards a release function that must run exactly once.
// A second Release panics with ErrDoubleRelease.
type OwnedResource struct {
	name     string
	release  func()
	released bool
}

func NewOwnedResource(name string, release func()) *OwnedResource {
	return &OwnedResource{name: name, release: release}
}

func (r *OwnedResource) Released() bool {
	return r.released
}

func (r *OwnedResource) Release() {
	if r.released {
		panic(fmt.Errorf("%s: %w", r.name, ErrDoubleRelease))
	}
	r.released = true
	if r.release != nil {
		r.release()
	}
}
