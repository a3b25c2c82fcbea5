package usecase

// RowPhase is the tagged state of one grid row's persistence lifecycle.
//
//	Empty -> Draft           first field filled
//	Draft -> Saving          required fields present, create dispatched
//	Saving -> Persisted      durable id captured
//	Persisted -> Saving      any later field change, update against the id
//	Saving|Draft -> Error    save failed; edits and id are kept
//	any -> Empty             remote record vanished or row discarded
type RowPhase int

const (
	RowEmpty RowPhase = iota
	RowDraft
	RowSaving
	RowPersisted
	RowError
)

func (p RowPhase) String() string {
	switch p {
	case RowEmpty:
		return "empty"
	case RowDraft:
		return "draft"
	case RowSaving:
		return "saving"
	case RowPersisted:
		return "persisted"
	case RowError:
		return "error"
	default:
		return "unknown"
	}
}
