// Package vckore implements the host build model that the version
// compatibility generators work on. It is an explicit in-memory directed graph
// of named nodes: units (compilable source sets), scopes (extensible
// dependency classpath groupings) and tasks (runnable steps with dependency
// edges). The package uses idiomatic Go error handling. The generators and an
// easy-to-use wrapper for build definitions are provided by the [vercompat]
// package.
//
// The model follows the conventions of JVM-style build engines: every unit
// owns a fixed set of scopes whose names derive from the unit name, and a
// compile and a resources task that produce the unit's output. Nothing is
// resolved against real repositories and nothing is executed. The graph only
// records what a build engine would need to run it.
//
// [vercompat]: https://pkg.go.dev/git.fractalqb.de/fractalqb/vercompat
package vckore
