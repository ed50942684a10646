package checker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidHour        = errors.New("invalid hour")
	ErrAmbiguousLocalTime = errors.New("ambiguous or invalid local time")
	ErrUnknownCourt       = fmt.Errorf("%w: unknown court", ErrInvalidArgument)
)
