package domain

import "fmt"

// MindmapNode lives in the flat Mindmap.Nodes arena. Children and Parent
// hold node IDs, so the tree is always walked through Mindmap.Node.
type MindmapNode struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Level    int      `json:"level" yaml:"level"`
	Children []string `json:"children" yaml:"children"`
	Parent   string   `json:"parent,omitempty" yaml:"parent,omitempty"`
}

type Mindmap struct {
	ID    string        `json:"id" yaml:"id"`
	Title string        `json:"title" yaml:"title"`
	Nodes []MindmapNode `json:"nodes" yaml:"nodes"`
}

// OutlineEntry is one bullet of a mindmap outline before linking.
type OutlineEntry struct {
	Text  string
	Level int
}

type MindmapPatch struct {
	Title *string         `json:"title,omitempty"`
	Nodes *[]OutlineEntry `json:"nodes,omitempty"`
}

func (p MindmapPatch) Apply(m *Mindmap) {
	m.Title = ValueOr(m.Title, p.Title)
	if p.Nodes != nil {
		m.Nodes = LinkMindmapNodes(m.ID, *p.Nodes)
	}
}

// MindmapNodeID synthesizes the ID of the seq-th node (1-based).
func MindmapNodeID(mindmapID string, seq int) string {
	return fmt.Sprintf("%s_node_%d", mindmapID, seq)
}

// LinkMindmapNodes assigns IDs and resolves parent/children references. A
// node's parent is the nearest earlier node one level up; a node with no
// such ancestor has no parent.
func LinkMindmapNodes(mindmapID string, outline []OutlineEntry) []MindmapNode {
	nodes := make([]MindmapNode, 0, len(outline))
	for i, entry := range outline {
		level := entry.Level
		if level < 0 {
			level = 0
		}
		node := MindmapNode{
			ID:       MindmapNodeID(mindmapID, i+1),
			Text:     entry.Text,
			Level:    level,
			Children: []string{},
		}
		if level > 0 {
			for j := len(nodes) - 1; j >= 0; j-- {
				if nodes[j].Level == level-1 {
					node.Parent = nodes[j].ID
					nodes[j].Children = append(nodes[j].Children, node.ID)
					break
				}
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// Outline flattens the nodes back into text and level pairs.
func (m Mindmap) Outline() []OutlineEntry {
	out := make([]OutlineEntry, 0, len(m.Nodes))
	for _, n := range m.Nodes {
		out = append(out, OutlineEntry{Text: n.Text, Level: n.Level})
	}
	return out
}

// Node looks a node up by ID.
func (m Mindmap) Node(id string) (MindmapNode, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return MindmapNode{}, false
}

// Roots returns nodes without a parent, in document order.
func (m Mindmap) Roots() []MindmapNode {
	var roots []MindmapNode
	for _, n := range m.Nodes {
		if n.Parent == "" {
			roots = append(roots, n)
		}
	}
	return roots
}

// ChildrenOf resolves the child IDs of id to nodes.
func (m Mindmap) ChildrenOf(id string) []MindmapNode {
	parent, ok := m.Node(id)
	if !ok {
		return nil
	}
	out := make([]MindmapNode, 0, len(parent.Children))
	for _, cid := range parent.Children {
		if c, ok := m.Node(cid); ok {
			out = append(out, c)
		}
	}
	return out
}
