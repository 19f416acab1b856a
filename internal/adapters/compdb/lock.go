package compdb

type lockMode int

const (
	sharedLock lockMode = iota
	exclusiveLock
)

func (m lockMode) String() string {
	if m == exclusiveLock {
		return "exclusive"
	}
	return "shared"
}
