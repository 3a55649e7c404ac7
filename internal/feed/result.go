package feed

// LoadState is the lifecycle of one lazily fetched list.
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateFailed  LoadState = "failed"
)

// Result keeps a failed fetch distinct from an empty one.
type Result[T any] struct {
	State LoadState `json:"state"`
	Items []T       `json:"items"`
	Error string    `json:"error,omitempty"`
}

func idle[T any]() Result[T] {
	return Result[T]{State: StateIdle, Items: []T{}}
}

func loading[T any]() Result[T] {
	return Result[T]{State: StateLoading, Items: []T{}}
}

func loaded[T any](items []T) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{State: StateLoaded, Items: items}
}

func failed[T any](err error) Result[T] {
	return Result[T]{State: StateFailed, Items: []T{}, Error: err.Error()}
}

func (r Result[T]) clone() Result[T] {
	items := make([]T, len(r.Items))
	copy(items, r.Items)
	r.Items = items
	return r
}

// Section is a collapsible block of an expanded card.
type Section string

const (
	SectionComments      Section = "comments"
	SectionCollaborators Section = "collaborators"
	SectionPartners      Section = "partners"
)

func ParseSection(s string) (Section, bool) {
	switch sec := Section(s); sec {
	case SectionComments, SectionCollaborators, SectionPartners:
		return sec, true
	}
	return "", false
}
