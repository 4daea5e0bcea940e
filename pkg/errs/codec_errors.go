package errs

// CapacityViolation is returned when a bit buffer operation would cross the end of its region.
type CapacityViolation struct {
	CodecErrorImpl
	message string
}

func NewCapacityViolation(message string) *CapacityViolation {
	return &CapacityViolation{message: message}
}

func (a CapacityViolation) Error() string {
	return a.message
}

func (a CapacityViolation) Extend(message string) error {
	return NewCapacityViolation(fmtExtend(a, message))
}

func (a CapacityViolation) Is(target error) bool {
	_, ok := target.(CapacityViolation)
	return ok
}

// ConstructionFailure is returned when a nested record or array element can not be default-constructed.
type ConstructionFailure struct {
	CodecErrorImpl
	message string
}

func NewConstructionFailure(message string) *ConstructionFailure {
	return &ConstructionFailure{message: message}
}

func (a ConstructionFailure) Error() string {
	return a.message
}

func (a ConstructionFailure) Extend(message string) error {
	return NewConstructionFailure(fmtExtend(a, message))
}

func (a ConstructionFailure) Is(target error) bool {
	_, ok := target.(ConstructionFailure)
	return ok
}

// MissingArray is returned when an array field is nil and its length can not be known.
type MissingArray struct {
	CodecErrorImpl
	message string
}

func NewMissingArray(message string) *MissingArray {
	return &MissingArray{message: message}
}

func (a MissingArray) Error() string {
	return a.message
}

func (a MissingArray) Extend(message string) error {
	return NewMissingArray(fmtExtend(a, message))
}

func (a MissingArray) Is(target error) bool {
	_, ok := target.(MissingArray)
	return ok
}

// NullElement is returned when an array of records holds a nil element at pack time.
type NullElement struct {
	CodecErrorImpl
	message string
}

func NewNullElement(message string) *NullElement {
	return &NullElement{message: message}
}

func (a NullElement) Error() string {
	return a.message
}

func (a NullElement) Extend(message string) error {
	return NewNullElement(fmtExtend(a, message))
}

func (a NullElement) Is(target error) bool {
	_, ok := target.(NullElement)
	return ok
}

// DynamicSize is returned when a fixed number of bytes is required for a record
// whose size depends on its content.
type DynamicSize struct {
	CodecErrorImpl
	message string
}

func NewDynamicSize(message string) *DynamicSize {
	return &DynamicSize{message: message}
}

func (a DynamicSize) Error() string {
	return a.message
}

func (a DynamicSize) Extend(message string) error {
	return NewDynamicSize(fmtExtend(a, message))
}

func (a DynamicSize) Is(target error) bool {
	_, ok := target.(DynamicSize)
	return ok
}

type InvalidDescriptor struct {
	CodecErrorImpl
	message string
}

func NewInvalidDescriptor(message string) *InvalidDescriptor {
	return &InvalidDescriptor{message: message}
}

func (a InvalidDescriptor) Error() string {
	return a.message
}

func (a InvalidDescriptor) Extend(message string) error {
	return NewInvalidDescriptor(fmtExtend(a, message))
}

func (a InvalidDescriptor) Is(target error) bool {
	_, ok := target.(InvalidDescriptor)
	return ok
}
