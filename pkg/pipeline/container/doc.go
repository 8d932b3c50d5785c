/*
Package container provides the pluggable collect targets for pipeline
stages: each container kind pairs an element type with an insertion
semantic.

Three kinds are built in:

  - List: ordered append, duplicates allowed
  - HashSet: unique elements, unspecified order
  - TreeSet: unique elements, ascending order

Basic usage:

	unique := container.NewHashSet[string]()
	unique.Insert("a")
	unique.Insert("a") // dropped
	fmt.Println(unique.Len()) // 1

	ranked := container.NewTreeSetFunc(func(a, b Player) int {
		return cmp.Compare(a.Score, b.Score)
	})

The registry is Go's type system: anything with an Insert method satisfies
Inserter and can be a stage.Collect target, checked at compile time. New
kinds are added by implementing the interface, without touching existing
code; see examples/redis-sink for a target backed by external storage.

Wrap any Container with NewWithMetrics to count inserts and duplicate
drops per kind in Prometheus.
*/
package container
