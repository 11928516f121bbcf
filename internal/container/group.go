package container

import "github.com/farmhand/go-automate/internal/item"

// Group is the ordered set of storage endpoints reachable from one machine,
// nearest first. The order defines push and pull priority. A nil or empty
// group is valid: machines with no connected storage still get evaluated,
// their transfers just no-op.
type Group struct {
	endpoints []Endpoint
}

func NewGroup(endpoints ...Endpoint) *Group {
	return &Group{endpoints: endpoints}
}

func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.endpoints)
}

// TryPush offers the stack to each endpoint in priority order. Atomic per
// call: the stack lands whole in exactly one endpoint or nowhere.
func (g *Group) TryPush(st *item.Stack) bool {
	if g == nil {
		return false
	}
	for _, ep := range g.endpoints {
		if ep.TryPush(st) {
			return true
		}
	}
	return false
}

// TakeMatching removes qty of an item from the first endpoint that can cover
// it, returning the removed stack, or nil.
func (g *Group) TakeMatching(id item.ID, qty int) *item.Stack {
	if g == nil {
		return nil
	}
	for _, ep := range g.endpoints {
		if st := ep.TakeMatching(id, qty); st != nil {
			return st
		}
	}
	return nil
}
