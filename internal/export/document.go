package export

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/resource"
)

// planNamespace scopes content-derived plan IDs.
var planNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://redstack.io/plan"))

// Document is the serialized form of a composed plan.
type Document struct {
	Stack     string     `json:"stack"`
	PlanID    string     `json:"planId"`
	Digest    string     `json:"digest"`
	Resources []Resource `json:"resources"`
	Imports   []Import   `json:"imports"`
}

// Resource is one node of the plan.
type Resource struct {
	Name       string              `json:"name"`
	Kind       resource.Kind       `json:"kind"`
	Provenance resource.Provenance `json:"provenance"`
	DependsOn  []string            `json:"dependsOn"`
	Attributes resource.Attributes `json:"attributes"`
}

// Import is a reference-only node together with the identifier it points at.
type Import struct {
	Name string        `json:"name"`
	Kind resource.Kind `json:"kind"`
	ID   string        `json:"id"`
}

// content is the part of a document that the digest covers.
type content struct {
	Stack     string     `json:"stack"`
	Resources []Resource `json:"resources"`
	Imports   []Import   `json:"imports"`
}

// Export builds the document for g. Every node must be resolved.
func Export(stack string, g *graph.Graph) (*Document, error) {
	if pending := g.Pending(); len(pending) > 0 {
		return nil, &resource.IncompleteGraphError{Pending: pending}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Stack:     stack,
		Resources: make([]Resource, 0, len(order)),
		Imports:   []Import{},
	}
	for _, name := range order {
		n, ok := g.Node(name)
		if !ok {
			return nil, &resource.DanglingReferenceError{Missing: name}
		}
		deps := n.DependsOn
		if deps == nil {
			deps = []string{}
		}
		doc.Resources = append(doc.Resources, Resource{
			Name:       n.Name,
			Kind:       n.Kind,
			Provenance: n.Provenance,
			DependsOn:  deps,
			Attributes: n.Attributes,
		})
		if n.IsImported() {
			id, _ := n.Attributes.String(resource.AttrID)
			doc.Imports = append(doc.Imports, Import{Name: n.Name, Kind: n.Kind, ID: id})
		}
	}

	sum, err := digest(content{Stack: doc.Stack, Resources: doc.Resources, Imports: doc.Imports})
	if err != nil {
		return nil, err
	}
	doc.Digest = "blake2b-256:" + hex.EncodeToString(sum[:])
	doc.PlanID = uuid.NewSHA1(planNamespace, sum[:]).String()
	return doc, nil
}

func digest(c content) ([blake2b.Size256]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return [blake2b.Size256]byte{}, fmt.Errorf("failed to hash plan: %w", err)
	}
	return blake2b.Sum256(b), nil
}

// Resource returns the named resource of the document.
func (d *Document) Resource(name string) (Resource, bool) {
	for _, r := range d.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}
