package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/araignee/pkg/actions"
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
)

// Overlay controls the dynamic state drawn over the tree.
type Overlay struct {
	// Responses colors every node by its last response.
	Responses bool
	// Current highlights one node.
	Current string
}

// GenerateMermaid produces a Mermaid flowchart of the tree captured in snap.
// It applies semantic styling:
// - Composite: [[Subroutine]]
// - Decorator: ([Stadium])
// - Condition: {Rhombus}
// - Default: [Rectangle]
// The first child of a guard is its interrogator and gets an "if" edge.
func GenerateMermaid(snap domain.Snapshot, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var nodes []domain.Snapshot
	snap.Walk(func(n domain.Snapshot) bool {
		nodes = append(nodes, n)
		return true
	})

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)
		opener, closer := shape(node.Kind)
		fmt.Fprintf(&sb, "    %s%s\"%s<br/><small>%s</small>\"%s\n", safeID, opener, node.ID, node.Kind, closer)

		for i, child := range node.Children {
			arrow := "-->"
			if node.Kind == core.KindGuard && i == 0 {
				arrow = "-. \"if\" .->"
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, sanitizeMermaidID(child.ID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef busy fill:#fff8e1,stroke:#ff8f00,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#c62828,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef succeeded fill:#e8f5e9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current stroke:#fbc02d,stroke-width:4px;\n")

		if overlay.Responses {
			for _, node := range nodes {
				if node.Response.Valid() {
					fmt.Fprintf(&sb, "    class %s %s;\n", sanitizeMermaidID(node.ID), node.Response)
				}
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
		}
	}

	return sb.String()
}

func shape(kind string) (string, string) {
	switch kind {
	case core.KindSequence, core.KindXor, core.KindSelector:
		return "[[", "]]"
	case core.KindInverter, core.KindGuard, core.KindInterrogator, core.KindLimiter, core.KindStarter:
		return "([", "])"
	case actions.KindCondition:
		return "{", "}"
	}
	return "[", "]"
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
