package compute

// Backend names used for kernel dispatch.
const (
	ReferenceName = "reference"
	CUDAName      = "cuda"
)

// Backend identifies an evaluation platform. Force terms dispatch on the
// backend name when compiling kernels for a context.
type Backend interface {
	Name() string
	Available() bool
}

// Reference is the serial CPU platform. Always available.
type Reference struct{}

func NewReference() *Reference { return &Reference{} }

func (*Reference) Name() string    { return ReferenceName }
func (*Reference) Available() bool { return true }
