package analytics

import (
	"sort"
	"strconv"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
)

const noParent = -1

// hierarchy is an arena of employees where parent[i] is the arena index of
// nodes[i]'s manager, or noParent for a root.
type hierarchy struct {
	nodes  []domain.Employee
	parent []int
}

// newHierarchy indexes the employees and rejects duplicate ids, dangling or
// self references and cycles.
func newHierarchy(employees []domain.Employee) (*hierarchy, error) {
	h := &hierarchy{
		nodes:  make([]domain.Employee, len(employees)),
		parent: make([]int, len(employees)),
	}
	copy(h.nodes, employees)

	index := make(map[int]int, len(employees))
	for i, e := range h.nodes {
		if _, dup := index[e.ID]; dup {
			return nil, domain.NewValidationError("colaboradores", e.ID, domain.ErrDuplicateKey, "")
		}
		if e.Salary < 0 {
			return nil, domain.NewValidationError("colaboradores", e.ID, domain.ErrNegativeValue, "salary")
		}
		index[e.ID] = i
	}

	for i, e := range h.nodes {
		h.parent[i] = noParent
		if e.ManagerID == nil {
			continue
		}
		if *e.ManagerID == e.ID {
			return nil, domain.NewValidationError("colaboradores", e.ID, domain.ErrSelfReference, "manages itself")
		}
		p, ok := index[*e.ManagerID]
		if !ok {
			return nil, domain.NewValidationError("colaboradores", e.ID, domain.ErrUnknownReference, "manager "+strconv.Itoa(*e.ManagerID))
		}
		h.parent[i] = p
	}

	if err := h.checkAcyclic(); err != nil {
		return nil, err
	}
	return h, nil
}

// checkAcyclic colours nodes while following parent links; reaching a node
// that is still on the current path means the chain loops.
func (h *hierarchy) checkAcyclic() error {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]uint8, len(h.nodes))
	for start := range h.nodes {
		n := start
		for n != noParent && state[n] == unvisited {
			state[n] = onPath
			n = h.parent[n]
		}
		if n != noParent && state[n] == onPath {
			return domain.NewValidationError("colaboradores", h.nodes[n].ID, domain.ErrCycle, "")
		}
		for n = start; n != noParent && state[n] == onPath; n = h.parent[n] {
			state[n] = done
		}
	}
	return nil
}

func (h *hierarchy) grandparent(i int) int {
	p := h.parent[i]
	if p == noParent {
		return noParent
	}
	return h.parent[p]
}

func (h *hierarchy) resolve(i int, rule domain.ManagerRule) *int {
	n := h.grandparent(i)
	if rule == domain.ManagerRuleTwoHop {
		if n == noParent {
			return nil
		}
		id := h.nodes[n].ID
		return &id
	}

	want := 2 * h.nodes[i].Salary
	for ; n != noParent; n = h.parent[n] {
		if h.nodes[n].Salary >= want {
			id := h.nodes[n].ID
			return &id
		}
	}
	return nil
}

// ResolveIndirectManagers returns, for every employee ordered by id, the
// indirect manager selected by rule, or nil when there is none.
func ResolveIndirectManagers(employees []domain.Employee, rule domain.ManagerRule) ([]domain.IndirectManager, error) {
	h, err := newHierarchy(employees)
	if err != nil {
		return nil, err
	}

	out := make([]domain.IndirectManager, len(h.nodes))
	for i := range h.nodes {
		out[i] = domain.IndirectManager{
			EmployeeID: h.nodes[i].ID,
			ManagerID:  h.resolve(i, rule),
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}
