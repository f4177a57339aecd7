package vulkan

import "github.com/spaghettifunk/anvil/engine/core"

const (
	// Fired when an image handle is observed without memory.
	EventMemoryBlockNeeded core.EventCode = iota + 1
	// Fired to ask allocators whether they have a bind scheduled.
	EventHasPendingAllocations
)

type MemoryBlockNeededArgs struct {
	Image *Image
}

// PendingAllocationsArgs is filled in by listeners; the first one setting
// Pending stops the query.
type PendingAllocationsArgs struct {
	Image   *Image
	Pending bool
}

// OnMemoryBlockNeeded registers fn to commit deferred allocations for the
// image. Every listener is called.
func (i *Image) OnMemoryBlockNeeded(listener interface{}, fn func(args *MemoryBlockNeededArgs)) bool {
	return i.events.Register(EventMemoryBlockNeeded, listener, func(_ core.EventCode, _, _ interface{}, arg interface{}) bool {
		fn(arg.(*MemoryBlockNeededArgs))
		return false
	})
}

// OnHasPendingAllocations registers fn to report whether the listener has
// an allocation scheduled against the image.
func (i *Image) OnHasPendingAllocations(listener interface{}, fn func(args *PendingAllocationsArgs)) bool {
	return i.events.Register(EventHasPendingAllocations, listener, func(_ core.EventCode, _, _ interface{}, arg interface{}) bool {
		args := arg.(*PendingAllocationsArgs)
		fn(args)
		return args.Pending
	})
}

// Unsubscribe removes the listener from both channels.
func (i *Image) Unsubscribe(listener interface{}) {
	i.events.Unregister(EventMemoryBlockNeeded, listener)
	i.events.Unregister(EventHasPendingAllocations, listener)
}

// MemoryBlockNeeded asks every allocator registered on the image to commit
// its deferred binds now.
func (i *Image) MemoryBlockNeeded() {
	if !i.events.HasListeners(EventMemoryBlockNeeded) {
		core.LogDebug("image %s needs memory but has no allocator listening", i.ID.Short())
		return
	}
	i.events.Fire(EventMemoryBlockNeeded, i, &MemoryBlockNeededArgs{Image: i})
}

// HasPendingAllocations reports whether any registered allocator has
// scheduled a bind against the image that it has not committed yet.
func (i *Image) HasPendingAllocations() bool {
	args := &PendingAllocationsArgs{Image: i}
	return i.events.Fire(EventHasPendingAllocations, i, args) || args.Pending
}
