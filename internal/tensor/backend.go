package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set is exactly what the autodiff engine needs: binary
// elementwise arithmetic, unary negation and reciprocal. All binary
// operations require operands of identical shape and dtype; there is no
// broadcasting. Violations are programmer errors and backends panic on
// them — callers validate shapes before reaching the backend.
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise unary operations
	Neg(x *RawTensor) *RawTensor   // -x
	Recip(x *RawTensor) *RawTensor // 1/x (float only)

	// Metadata
	Name() string
	Device() Device
}
