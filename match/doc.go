// Package match implements the two pluggable boolean predicates the search
// engine consults when growing a backbone: the structural predicate
// (degree compatibility) and the attribute predicate (node/edge attribute
// compatibility), plus a memoizing cache for the node-attribute predicate.
//
// Both predicates are pure functions of their inputs; callers that need
// custom matching semantics (fuzzy attribute comparison, wildcard motif
// attributes, etc.) supply their own NodeStructuralMatch/NodeAttrMatch/
// EdgeAttrMatch and pass it to grandiso.Options.
package match
