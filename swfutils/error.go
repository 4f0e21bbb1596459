package swfutils

import "fmt"

var (
	ErrIncomplete     = fmt.Errorf("incomplete input: more bytes needed")
	ErrNegativeLength = fmt.Errorf("negative read length")
)
