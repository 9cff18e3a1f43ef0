// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	next      key.Binding
	prev      key.Binding
	esc       key.Binding
	tab       key.Binding
	save      key.Binding
	enter     key.Binding
	quit      key.Binding
	newNote   key.Binding
	copy      key.Binding
	refresh   key.Binding
	buildInfo key.Binding
	filters   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	next:      key.NewBinding(key.WithKeys("n", "right")),
	prev:      key.NewBinding(key.WithKeys("p", "left")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newNote:   key.NewBinding(key.WithKeys("a")),
	copy:      key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	filters:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4")),
}

// filterKeys maps the digit keys onto sentiment filters. "0" clears it.
var filterKeys = map[string]string{
	"0": "",
	"1": "happy",
	"2": "sad",
	"3": "angry",
	"4": "neutral",
}
