// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"

	"github.com/katalvlaran/flowmat/matrix"
)

// Role is the position of a unit in a selected-flow structure.
type Role int

const (
	// RoleIsolated neither sends nor receives a selected flow.
	RoleIsolated Role = iota
	// RoleDominant receives selected flows and sends none (a tree root).
	RoleDominant
	// RoleIntermediate both receives and sends selected flows.
	RoleIntermediate
	// RoleDominated sends selected flows and receives none (a leaf).
	RoleDominated
)

func (r Role) String() string {
	switch r {
	case RoleIsolated:
		return "isolated"
	case RoleDominant:
		return "dominant"
	case RoleIntermediate:
		return "intermediate"
	case RoleDominated:
		return "dominated"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// NodeRole pairs a unit id with its role.
type NodeRole struct {
	ID   string
	Role Role
}

// ClassifyNodes assigns a Role to every unit of mask, in id order.
// Self-flows (diagonal cells) are ignored.
func ClassifyNodes(mask *matrix.Mask) ([]NodeRole, error) {
	if mask == nil {
		return nil, fmt.Errorf("ClassifyNodes: %w", ErrNilMatrix)
	}
	ids := mask.IDs()
	out := make([]NodeRole, len(ids))
	for i, id := range ids {
		self, err := mask.At(i, i)
		if err != nil {
			return nil, fmt.Errorf("ClassifyNodes: %w", err)
		}
		sends, receives := mask.RowCount(i), mask.ColCount(i)
		if self {
			sends--
			receives--
		}
		var r Role
		switch {
		case sends > 0 && receives > 0:
			r = RoleIntermediate
		case receives > 0:
			r = RoleDominant
		case sends > 0:
			r = RoleDominated
		default:
			r = RoleIsolated
		}
		out[i] = NodeRole{ID: id, Role: r}
	}

	return out, nil
}
