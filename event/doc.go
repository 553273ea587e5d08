// Package event provides a typed dispatcher over the backend's raw
// event queue.
//
// A Dispatcher is configured once with the closed set of Kinds it
// recognizes. Each configured kind holds one optional handler slot,
// bound through the generic Bind/To pair, which checks the handler's
// payload type against the kind at compile time:
//
//	d, _ := event.NewDispatcher(src, event.KindQuit, event.KindKeyDown)
//	event.Bind[event.QuitEvent](d).To(game.onQuit) // method value
//	event.Bind[event.KeyEvent](d).To(func(ev event.KeyEvent) error {
//		return nil
//	})
//
// Each frame, Poll drains the source and invokes bound handlers
// synchronously in arrival order. Events of unbound or unconfigured
// kinds are dropped silently.
package event
