// Package ecs provides ECS adapters for bramble.
package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DataComponent mirrors one data-tree node into the ECS world.
type DataComponent struct {
	NodeID    bramble.NodeID
	Tag       string
	Data      any
	Connector bool
}

// Data is the Donburi component type carrying a DataComponent.
var Data = donburi.NewComponentType[DataComponent]()

// FrameEvent is published once per Sync.
type FrameEvent struct {
	Stats    bramble.FrameStats
	Entities int
}

// FrameEventType is the Donburi event type for bramble frames. Subscribe to
// this in your ECS systems to react after the data tree was mirrored.
var FrameEventType = events.NewEventType[FrameEvent]()

// DataSync keeps one entity per data-tree node of a document.
type DataSync struct {
	world    donburi.World
	entities map[bramble.NodeID]donburi.Entity
}

// NewDataSync creates a DataSync writing to world. Install it with
// Document.SetFrameObserver to sync after every frame, or call Sync
// directly.
func NewDataSync(world donburi.World) *DataSync {
	return &DataSync{world: world, entities: make(map[bramble.NodeID]donburi.Entity)}
}

// Sync creates or updates an entity for every data-tree node of doc,
// removes entities whose node is gone and publishes a FrameEvent.
func (s *DataSync) Sync(doc *bramble.Document) {
	s.sync(doc, doc.Stats())
}

// ObserveFrame implements bramble.FrameObserver.
func (s *DataSync) ObserveFrame(doc *bramble.Document, stats bramble.FrameStats) {
	s.sync(doc, stats)
}

func (s *DataSync) sync(doc *bramble.Document, stats bramble.FrameStats) {
	seen := make(map[bramble.NodeID]bool, len(s.entities))
	if root := doc.DataTree(); root != nil {
		for n := range root.Descendants() {
			obj := n.Value
			id := obj.NodeID()
			seen[id] = true

			e, ok := s.entities[id]
			if !ok || !s.world.Valid(e) {
				e = s.world.Create(Data)
				s.entities[id] = e
			}
			Data.Set(s.world.Entry(e), &DataComponent{
				NodeID:    id,
				Tag:       obj.Node.Value.Dom().Tag(),
				Data:      obj.Data,
				Connector: obj.IsConnector(),
			})
		}
	}
	for id, e := range s.entities {
		if seen[id] {
			continue
		}
		if s.world.Valid(e) {
			s.world.Remove(e)
		}
		delete(s.entities, id)
	}
	FrameEventType.Publish(s.world, FrameEvent{Stats: stats, Entities: len(s.entities)})
}

// Entity returns the entity mirroring the node with the given identity.
func (s *DataSync) Entity(id bramble.NodeID) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Len returns the number of mirrored nodes.
func (s *DataSync) Len() int {
	return len(s.entities)
}
