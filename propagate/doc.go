// Package propagate implements the two dynamic arc-consistency algorithms
// this system is built around: DnAC-4 (Bessiere) and DnAC-6 (Debruyne).
// Both incrementally restore arc-consistency after a constraint is added
// or retracted, using the support and justification structures that make
// retraction possible without restarting from scratch (spec.md §4.4,
// §4.5).
//
// The two algorithms are modeled as a variant behind one shared contract,
// Propagator, rather than as a class hierarchy — the shape the teacher
// library uses for its own multi-algorithm packages: flow picks among
// Ford–Fulkerson, Edmonds–Karp and Dinic behind one FlowOptions, and
// prim_kruskal picks between Prim and Kruskal behind one MSTOptions.
// dnac4.go and dnac6.go are this package's equivalent of flow's
// ford_fulkerson.go/dinic.go split: independent files sharing the
// Propagator contract declared in types.go and the error in errors.go.
// The queue helpers and key types in types.go serve DnAC-4; dnac6.go
// declares its own queue and witness types.
package propagate
