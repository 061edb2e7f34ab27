package resource

import (
	"maps"
	"slices"
)

// Well-known attribute keys. Created nodes expose these as [Ref]s to
// themselves; imported nodes carry a literal identifier under AttrID.
const (
	AttrID            = "id"
	AttrARN           = "arn"
	AttrSecurityGroup = "securityGroupId"
	AttrTags          = "tags"
)

// Node is one resource descriptor of the plan.
type Node struct {
	Name       string
	Kind       Kind
	Provenance Provenance
	Attributes Attributes
	DependsOn  []string
}

// NewCreated returns a node for a resource defined by the plan.
// The node's own identifier is seeded as an output reference.
func NewCreated(name string, kind Kind, attrs Attributes) *Node {
	a := attrs.Clone()
	if a == nil {
		a = Attributes{}
	}
	if _, ok := a[AttrID]; !ok {
		a[AttrID] = Output(name, AttrID)
	}
	return &Node{
		Name:       name,
		Kind:       kind,
		Provenance: Created,
		Attributes: a,
	}
}

// NewImported returns a reference-only node for a pre-existing resource.
func NewImported(name string, kind Kind, id string) *Node {
	return &Node{
		Name:       name,
		Kind:       kind,
		Provenance: Imported,
		Attributes: Attributes{AttrID: id},
	}
}

// IsImported reports whether the node only references an existing resource.
func (n *Node) IsImported() bool {
	return n.Provenance == Imported
}

// Clone returns a copy that shares no maps or slices with n.
// Attribute values themselves are copied shallowly.
func (n *Node) Clone() *Node {
	return &Node{
		Name:       n.Name,
		Kind:       n.Kind,
		Provenance: n.Provenance,
		Attributes: n.Attributes.Clone(),
		DependsOn:  slices.Clone(n.DependsOn),
	}
}

// Attributes maps attribute keys to values.
type Attributes map[string]any

// Clone returns a shallow copy of the map.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// Keys returns the attribute keys in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// String returns the string value stored under key.
func (a Attributes) String(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Int returns the int value stored under key.
func (a Attributes) Int(key string) (int, bool) {
	i, ok := a[key].(int)
	return i, ok
}
