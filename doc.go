// Package ui provides interactive widgets for GPU-accelerated user
// interfaces built on the gogpu stack.
//
// The package currently ships one widget, [Button]: a clickable, hoverable
// push button composing a filled rectangle and a centered text label. A
// Button consumes window events from the [event] package, tracks pointer
// state, and emits semantic events (click, hover) into an internal FIFO
// queue that the host drains once per frame.
//
// Basic usage:
//
//	ctx, err := graphics.NewContext(graphics.WithAssets(registry))
//	if err != nil { ... }
//	btn, err := ui.NewButton("OK", ctx)
//	if err != nil { ... }
//	btn.SetPaddings(ui.Paddings{Left: 8, Top: 4, Right: 8, Bottom: 4})
//
//	// per frame:
//	for _, ev := range adapter.Drain() {
//		btn.ProcessEvent(ev)
//	}
//	btn.Events(func(code uint32) { ... })
//	btn.Draw(renderPass)
//
// Widgets are single threaded. A Button is owned and mutated by the UI
// thread that pumps the window event loop and records the render pass; no
// method blocks or spawns goroutines.
package ui
