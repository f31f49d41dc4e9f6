// Package config defines how a settings screen persists values and ships two
// stores: Callbacks for applications that already own their persistence, and
// File for a TOML document on disk.
package config

import (
	"sync"

	"go.uber.org/atomic"
)

// Store persists the values a screen edits. Controls only read and write
// through their bindings; the store decides when those values hit disk.
type Store interface {
	Load() error
	Save() error
	ResetToDefaults() error
}

// ChangeListener is notified with the key of a changed value.
type ChangeListener func(key string)

// Callbacks is a Store backed by application functions. Any nil callback is a no-op.
type Callbacks struct {
	OnLoad  func() error
	OnSave  func() error
	OnReset func() error

	dirty atomic.Bool

	mu        sync.Mutex
	listeners map[int]ChangeListener
	nextID    int
}

func (c *Callbacks) Load() error {
	if c.OnLoad != nil {
		if err := c.OnLoad(); err != nil {
			return err
		}
	}
	c.dirty.Store(false)
	return nil
}

// Save runs OnSave. The dirty flag is only cleared on success.
func (c *Callbacks) Save() error {
	if c.OnSave != nil {
		if err := c.OnSave(); err != nil {
			return err
		}
	}
	c.dirty.Store(false)
	return nil
}

func (c *Callbacks) ResetToDefaults() error {
	if c.OnReset != nil {
		if err := c.OnReset(); err != nil {
			return err
		}
	}
	c.dirty.Store(true)
	c.NotifyChanged("")
	return nil
}

// IsDirty reports whether a value changed since the last load or save.
func (c *Callbacks) IsDirty() bool {
	return c.dirty.Load()
}

// MarkDirty flags unsaved changes and notifies listeners with key.
func (c *Callbacks) MarkDirty(key string) {
	c.dirty.Store(true)
	c.NotifyChanged(key)
}

// AddChangeListener registers l and returns a function removing it.
func (c *Callbacks) AddChangeListener(l ChangeListener) (remove func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.listeners == nil {
		c.listeners = make(map[int]ChangeListener)
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = l

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// NotifyChanged calls every listener with key. An empty key means "everything".
func (c *Callbacks) NotifyChanged(key string) {
	c.mu.Lock()
	listeners := make([]ChangeListener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(key)
	}
}
