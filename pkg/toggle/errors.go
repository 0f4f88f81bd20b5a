package toggle

import "errors"

var (
	ErrStateRead  = errors.New("read layout state")
	ErrStateParse = errors.New("parse layout state")
	ErrStateWrite = errors.New("write layout state")
	ErrEmptyTable = errors.New("layout table is empty")
)
