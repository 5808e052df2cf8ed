package compute

// CUDA is a placeholder platform; it reports unavailable until a CUDA
// kernel implementation exists.
type CUDA struct{}

func NewCUDA() *CUDA { return &CUDA{} }

func (*CUDA) Name() string    { return CUDAName }
func (*CUDA) Available() bool { return false }
