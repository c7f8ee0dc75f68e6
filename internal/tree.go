package internal

// Tree operations over a scenario's node map. Every operation returns a
// new map; the input map is never mutated, so callers can keep earlier
// snapshots around.

// CloneNodes makes a structural copy of a node map. Node structs and their
// children slices are copied; Position and Employee values are shared
// since they are never mutated in place.
func CloneNodes(nodes map[string]*OrgNode) map[string]*OrgNode {
	cloned := make(map[string]*OrgNode, len(nodes))
	for id, node := range nodes {
		copied := *node
		copied.Children = append([]string(nil), node.Children...)
		cloned[id] = &copied
	}
	return cloned
}

// InsertNode adds newNode to the map and appends its id to the parent's
// children. A missing parent leaves the node orphaned rather than failing;
// that permissiveness is what allows root creation on an empty tree.
func InsertNode(nodes map[string]*OrgNode, newNode *OrgNode, parentID string) map[string]*OrgNode {
	updated := CloneNodes(nodes)

	inserted := *newNode
	inserted.Children = append([]string(nil), newNode.Children...)
	inserted.ParentID = parentID
	updated[inserted.ID] = &inserted

	if parentID != "" {
		if parent, ok := updated[parentID]; ok {
			parent.Children = append(parent.Children, inserted.ID)
		}
	}

	return updated
}

// IsDescendant reports whether candidateID is reachable from ancestorID
// by walking children.
func IsDescendant(nodes map[string]*OrgNode, ancestorID, candidateID string) bool {
	node, ok := nodes[ancestorID]
	if !ok {
		return false
	}
	for _, childID := range node.Children {
		if childID == candidateID {
			return true
		}
		if IsDescendant(nodes, childID, candidateID) {
			return true
		}
	}
	return false
}

// Reparent moves nodeID under newParentID. It refuses self-moves and moves
// under the node's own descendant, returning the input map unchanged and
// ok=false. A missing current parent or target parent is tolerated.
func Reparent(nodes map[string]*OrgNode, nodeID, newParentID string) (map[string]*OrgNode, bool) {
	if nodeID == newParentID {
		return nodes, false
	}
	if IsDescendant(nodes, nodeID, newParentID) {
		return nodes, false
	}
	node, ok := nodes[nodeID]
	if !ok {
		return nodes, false
	}

	updated := CloneNodes(nodes)

	if node.ParentID != "" {
		if oldParent, ok := updated[node.ParentID]; ok {
			oldParent.Children = removeID(oldParent.Children, nodeID)
		}
	}

	if newParent, ok := updated[newParentID]; ok {
		newParent.Children = append(newParent.Children, nodeID)
	}

	updated[nodeID].ParentID = newParentID

	return updated, true
}

// RemoveSubtree deletes nodeID and everything below it, returning the
// pruned map and the employees who occupied deleted slots (parent before
// children). The removed id is detached from its former parent's children.
func RemoveSubtree(nodes map[string]*OrgNode, nodeID string) (map[string]*OrgNode, []*Employee) {
	node, ok := nodes[nodeID]
	if !ok {
		return nodes, nil
	}

	displaced := CollectEmployees(nodes, nodeID)

	updated := CloneNodes(nodes)
	deleteSubtree(updated, nodeID)

	if node.ParentID != "" {
		if parent, ok := updated[node.ParentID]; ok {
			parent.Children = removeID(parent.Children, nodeID)
		}
	}

	return updated, displaced
}

func deleteSubtree(nodes map[string]*OrgNode, nodeID string) {
	node, ok := nodes[nodeID]
	if !ok {
		return
	}
	for _, childID := range node.Children {
		deleteSubtree(nodes, childID)
	}
	delete(nodes, nodeID)
}

// CollectEmployees gathers every occupant in the subtree rooted at nodeID,
// parent first.
func CollectEmployees(nodes map[string]*OrgNode, nodeID string) []*Employee {
	node, ok := nodes[nodeID]
	if !ok {
		return nil
	}
	var employees []*Employee
	if node.Employee != nil {
		employees = append(employees, node.Employee)
	}
	for _, childID := range node.Children {
		employees = append(employees, CollectEmployees(nodes, childID)...)
	}
	return employees
}

// CountDescendants counts every node below nodeID.
func CountDescendants(nodes map[string]*OrgNode, nodeID string) int {
	node, ok := nodes[nodeID]
	if !ok {
		return 0
	}
	count := 0
	for _, childID := range node.Children {
		count += 1 + CountDescendants(nodes, childID)
	}
	return count
}

// Flatten walks the tree depth-first from rootID, parent before children,
// returning nodes in traversal order. Nodes unreachable from the root are
// omitted.
func Flatten(nodes map[string]*OrgNode, rootID string) []*OrgNode {
	node, ok := nodes[rootID]
	if !ok {
		return nil
	}
	out := []*OrgNode{node}
	for _, childID := range node.Children {
		out = append(out, Flatten(nodes, childID)...)
	}
	return out
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
