// Package cpu implements the born activation provider with pure Go float32
// kernels.
//
// Tokens use ONNX operator names ("Relu", "LeakyRelu", "Softmax", ...).
// Batches are narrowed to float32 on the way in and widened back to float64
// on the way out. Large batches are split across goroutines with
// internal/parallel; every call is still synchronous.
package cpu
