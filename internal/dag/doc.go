// Package dag provides the dependency graph used to order pipeline stages.
// Execution stays strictly sequential; the graph only decides the order and
// rejects definition sets that contradict themselves.
package dag
