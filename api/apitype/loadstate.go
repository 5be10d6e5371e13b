package apitype

type LoadState uint8

const (
	Pending LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Loaded:
		return "LOADED"
	case Failed:
		return "FAILED"
	}
	return "UNKNOWN"
}

func (s LoadState) IsSettled() bool {
	return s == Loaded || s == Failed
}
