package packgraph

// VisitState is the colour of a pack during a depth-first walk.
type VisitState int

const (
	Unvisited VisitState = iota
	InProgress
	Done
)

func (s VisitState) String() string {
	switch s {
	case Unvisited:
		return "UNVISITED"
	case InProgress:
		return "IN_PROGRESS"
	case Done:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Edge is one depends-on relation, From depends on To.
type Edge struct {
	From string
	To   string
}

func (e Edge) String() string {
	return e.From + " -> " + e.To
}

// ClassifiedEdge is an edge tagged with the state its destination had when
// the edge was first traversed. An edge tagged InProgress is a back edge.
type ClassifiedEdge struct {
	Edge
	State VisitState

	from, to int
}

// IsBackEdge reports whether the edge closes a cycle.
func (e ClassifiedEdge) IsBackEdge() bool {
	return e.State == InProgress
}
