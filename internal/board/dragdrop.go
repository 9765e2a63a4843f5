package board

// PayloadType is the only drag payload a list accepts. Data holds a project id.
const PayloadType = "text/plain"

type DragPayload struct {
	Type string
	Data string
}

// Draggable is implemented by views that can be picked up.
type Draggable interface {
	DragStart() DragPayload
	DragEnd()
}

// DropTarget is implemented by views that accept dropped projects.
type DropTarget interface {
	// DragOver reports whether the target accepts a payload with these types.
	DragOver(types []string) bool
	Drop(p DragPayload)
	DragLeave()
}

func accepts(types []string) bool {
	return len(types) > 0 && types[0] == PayloadType
}

