// Package compute defines the evaluation platforms a context can be bound
// to. A Registry is built at startup and passed explicitly to context
// construction; force terms compile platform-specific kernels by
// dispatching on the backend name.
//
//	reg := compute.DefaultRegistry()
//	ctx, err := engine.NewContext(sys, integ, reg.Default())
//
// Only the serial reference platform is implemented. The CUDA entry is a
// stub that always reports unavailable.
package compute
