// Package event delivers registry change notifications to subscribers.
//
// # Overview
//
// Every mutation of a globalvars.Registry produces a Change describing what
// happened (set, remove, clear), which key was involved, and the registry
// revision after the mutation. A Bus fans each Change out to the handlers
// subscribed to its Op.
//
// Delivery is synchronous: Publish calls every matching handler on the
// publishing goroutine, in subscription order, and returns once all of them
// have run. The registry always publishes after releasing its own lock, so
// handlers are free to read or write the registry again.
//
// # Subscribing
//
//	bus := event.NewBus(event.BusConfig{})
//	sub := bus.Subscribe([]event.Op{event.OpSet}, func(c event.Change) error {
//	    fmt.Println("set", c.Key)
//	    return nil
//	})
//	defer sub.Unsubscribe()
//
// SubscribeAll receives every Op. Pause and Resume suspend delivery without
// losing the subscription.
//
// # Errors
//
// A handler error, or a panic recovered from a handler, is wrapped in a
// HandlerError and passed to BusConfig.OnError. It never stops delivery to
// the remaining subscribers and never reaches the publisher.
package event
