package codec

import "errors"

var (
	ErrUnencodable = errors.New("unencodable value")
	ErrBadKey      = errors.New("bad object key")
)
