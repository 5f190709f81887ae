package salon

import "errors"

var (
	ErrInvalidWindow    = errors.New("working window must start before it ends")
	ErrDuplicateWeekday = errors.New("only one working window per weekday")
	ErrInvalidBreak     = errors.New("lunch break must start before it ends")
	ErrInvalidBlock     = errors.New("custom block must start before it ends")
	ErrUnknownBlockKind = errors.New("unknown block kind")
	ErrInvalidService   = errors.New("invalid catalogue service")
)
