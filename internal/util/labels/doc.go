// Package labels builds the tag sets stamped on created plan nodes.
//
// All keys use the redstack.io prefix. Imported nodes are references to
// resources owned elsewhere and are never tagged.
package labels
