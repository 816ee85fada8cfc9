// File: attribute.go
// Role: node- and edge-attribute predicates.
// AI-HINT (file):
//   - Default semantics: every attribute key present on the motif side must
//     be present on the host side with an equal value. Attributes the motif
//     doesn't mention impose no constraint (the host may carry extras).
//   - NodeAttrMatch and EdgeAttrMatch are distinct types so callers can
//     override one without the other.

package match

import "github.com/aplbrain/grandiso-go/core"

// NodeAttrMatch reports whether a host vertex's attribute bag satisfies a
// motif vertex's attribute bag.
type NodeAttrMatch func(motifAttrs, hostAttrs core.Attrs) bool

// EdgeAttrMatch reports whether a host edge's attribute bag satisfies a
// motif edge's attribute bag.
type EdgeAttrMatch func(motifAttrs, hostAttrs core.Attrs) bool

// DefaultNodeAttrMatch requires every motif vertex attribute to be present
// on the host vertex with an equal value; missing motif attributes impose
// no constraint.
func DefaultNodeAttrMatch(motifAttrs, hostAttrs core.Attrs) bool {
	return attrsSatisfy(motifAttrs, hostAttrs)
}

// DefaultEdgeAttrMatch requires every motif edge attribute to be present on
// the host edge with an equal value; missing motif attributes impose no
// constraint.
func DefaultEdgeAttrMatch(motifAttrs, hostAttrs core.Attrs) bool {
	return attrsSatisfy(motifAttrs, hostAttrs)
}

func attrsSatisfy(want, have core.Attrs) bool {
	for k, wv := range want {
		hv, ok := have.Get(k)
		if !ok || !hv.Equal(wv) {
			return false
		}
	}
	return true
}
