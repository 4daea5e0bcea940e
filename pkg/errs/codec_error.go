package errs

// CodecError marks the failures raised by the bit buffer and the struct codec themselves,
// as opposed to failures of the underlying reader or writer.
type CodecError interface {
	CodecError()
}

type CodecErrorImpl struct {
}

func (CodecErrorImpl) CodecError() {
}

func IsCodecError(err error) bool {
	_, ok := err.(CodecError)
	return ok
}
