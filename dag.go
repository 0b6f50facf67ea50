package headcontrol

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrResourceCycle is returned when a dependency cycle between
	// resources is found. It always indicates a misconfiguration: some
	// resource's After list names a resource that, directly or not, has
	// to be rendered after it.
	ErrResourceCycle = errors.New("resource cycle detected")
)

// resource is a stylesheet or script that can be ordered relative to others.
type resource interface {
	// resourceKey uniquely identifies the resource within a loader.
	resourceKey() string

	// dependencies returns the keys of the resources that need to be
	// rendered before this one.
	dependencies() []string
}

// graph is a directed acyclic graph of resources, used to make sure ordering
// constraints between assets are met.
type graph[Node resource] struct {
	// nodes holds the nodes in the graph, in the order they were added.
	nodes []Node

	// edgesTo holds graph edges keyed by the position of the node they
	// point to. Nodes point to their dependencies, so edgesTo[dep] lists
	// everything that depends on dep.
	edgesTo map[int]map[int]struct{}

	// edgesFrom holds graph edges keyed by the position of the node they
	// point from, so edgesFrom[node] lists node's dependencies.
	edgesFrom map[int]map[int]struct{}
}

// buildGraph creates a graph of the passed resources. Resources sharing a key
// with one added earlier are dropped. Dependencies on keys that aren't in the
// graph are ignored.
func buildGraph[Node resource](resources []Node) graph[Node] {
	result := graph[Node]{
		edgesTo:   map[int]map[int]struct{}{},
		edgesFrom: map[int]map[int]struct{}{},
	}
	positions := map[string]int{}
	for _, res := range resources {
		key := res.resourceKey()
		if _, ok := positions[key]; ok {
			continue
		}
		positions[key] = len(result.nodes)
		result.nodes = append(result.nodes, res)
	}
	for pos, node := range result.nodes {
		for _, dep := range node.dependencies() {
			depPos, ok := positions[dep]
			if !ok || depPos == pos {
				continue
			}
			if result.edgesFrom[pos] == nil {
				result.edgesFrom[pos] = map[int]struct{}{}
			}
			if result.edgesTo[depPos] == nil {
				result.edgesTo[depPos] = map[int]struct{}{}
			}
			result.edgesFrom[pos][depPos] = struct{}{}
			result.edgesTo[depPos][pos] = struct{}{}
		}
	}
	return result
}

// walkGraph returns the nodes of resources with every node placed after its
// dependencies. Among nodes that are free to go next, the one added first
// wins, so resources without dependencies keep their insertion order.
//
// walkGraph consumes the edges of resources.
func walkGraph[Node resource](_ context.Context, resources graph[Node]) ([]Node, error) {
	ready := make([]int, 0, len(resources.nodes))
	results := make([]Node, 0, len(resources.nodes))
	for pos := range resources.nodes {
		if len(resources.edgesFrom[pos]) < 1 {
			ready = append(ready, pos)
		}
	}
	for len(ready) > 0 {
		pos := ready[0]
		ready = ready[1:]
		results = append(results, resources.nodes[pos])
		var readyChanged bool
		for child := range resources.edgesTo[pos] {
			delete(resources.edgesFrom[child], pos)
			if len(resources.edgesFrom[child]) < 1 {
				delete(resources.edgesFrom, child)
				ready = append(ready, child)
				readyChanged = true
			}
		}
		delete(resources.edgesTo, pos)
		if readyChanged {
			slices.Sort(ready)
		}
	}
	if len(resources.edgesFrom) > 0 {
		var edges, keys []string
		for k, v := range resources.edgesFrom {
			var vals []string
			for val := range v {
				vals = append(vals, strconv.Itoa(val))
			}
			slices.Sort(vals)
			edges = append(edges, fmt.Sprintf("%d:%s", k, strings.Join(vals, ",")))
		}
		slices.Sort(edges)
		for _, node := range resources.nodes {
			keys = append(keys, node.resourceKey())
		}
		return results, fmt.Errorf("%w: edges_from=[%s], resources=[%s]", ErrResourceCycle, strings.Join(edges, "; "), strings.Join(keys, ", "))
	}
	return results, nil
}
