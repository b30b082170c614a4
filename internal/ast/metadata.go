package ast

import "fmt"

// NodeID is a unique identifier for each AST node, assigned by a MetadataVisitor.
type NodeID uint32

// SourceRange represents a range in the source code.
type SourceRange struct {
	Start Position
	End   Position
}

// Metadata contains debugging and analysis information for AST nodes.
type Metadata struct {
	// Unique identifier for this AST node
	NodeID NodeID

	// Source location information
	Source SourceRange

	// Original source text for this node (rendered by the CLI's --at and
	// --debug output)
	SourceText string

	// Parent node ID (0 if root)
	ParentID NodeID

	// Secrecy analysis results - populated during the checking pass
	// (internal/secrecy), consumed by the CLI's --debug output
	// (cmd/secrecy-cli)
	AnalysisInfo *AnalysisMetadata
}

// AnalysisMetadata records what the checking pass concluded about a node.
type AnalysisMetadata struct {
	// Level is the resolved secrecy level of an expression node, or the
	// declared label of a declaration node.
	Level string

	// PCAtNode is the program-counter level in effect when this node was
	// visited, i.e. eval_stack(pc) at that point (spec.md §4.4).
	PCAtNode string
}

// NodeTracker manages node IDs and their metadata.
type NodeTracker struct {
	nextID   NodeID
	metadata map[NodeID]*Metadata
}

// NewNodeTracker creates a new node tracker.
func NewNodeTracker() *NodeTracker {
	return &NodeTracker{
		nextID:   1, // Start at 1, reserve 0 for "no parent"
		metadata: make(map[NodeID]*Metadata),
	}
}

// GenerateID creates a new unique node ID.
func (nt *NodeTracker) GenerateID() NodeID {
	id := nt.nextID
	nt.nextID++
	return id
}

// SetMetadata associates metadata with a node ID.
func (nt *NodeTracker) SetMetadata(id NodeID, meta *Metadata) {
	nt.metadata[id] = meta
}

// GetMetadata retrieves metadata for a node ID.
func (nt *NodeTracker) GetMetadata(id NodeID) *Metadata {
	return nt.metadata[id]
}

// GetAllMetadata returns all metadata, as rendered by the CLI's --debug flag.
func (nt *NodeTracker) GetAllMetadata() map[NodeID]*Metadata {
	return nt.metadata
}

// CreateSourceRange creates a SourceRange from start and end positions.
func CreateSourceRange(start, end Position) SourceRange {
	return SourceRange{Start: start, End: end}
}

// Contains checks if a position is within this source range, comparing
// line and column so a LINE:COL query without an offset can be resolved.
func (sr SourceRange) Contains(pos Position) bool {
	afterStart := pos.Line > sr.Start.Line || (pos.Line == sr.Start.Line && pos.Column >= sr.Start.Column)
	beforeEnd := pos.Line < sr.End.Line || (pos.Line == sr.End.Line && pos.Column <= sr.End.Column)
	return afterStart && beforeEnd
}

// String returns a human-readable representation of the source range.
func (sr SourceRange) String() string {
	if sr.Start.Line == sr.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", sr.Start.Filename, sr.Start.Line, sr.Start.Column, sr.End.Column)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", sr.Start.Filename, sr.Start.Line, sr.Start.Column, sr.End.Line, sr.End.Column)
}

// String returns a human-readable representation of metadata.
func (m *Metadata) String() string {
	return fmt.Sprintf("NodeID:%d Source:%s Parent:%d", m.NodeID, m.Source.String(), m.ParentID)
}
