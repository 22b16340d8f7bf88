// Package ecs provides ECS adapters for bramble's data tree.
//
// The primary adapter is [NewDataSync], which mirrors every data-tree node
// of a document into a [Donburi] world as an entity with a [DataComponent],
// and publishes a [FrameEvent] after each sync. Subscribe to
// [FrameEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sync := ecs.NewDataSync(world)
//	doc.SetFrameObserver(sync)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
