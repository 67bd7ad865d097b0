package activation

// BaseType is the category an activation function belongs to, independent of
// any provider's naming.
type BaseType int

// Supported base types.
const (
	Linear BaseType = iota + 1
	ReLU
	LeakyReLU
	Sigmoid
	Tanh
	Softmax
	Softplus
	GELU
	SiLU
)

var baseTypeNames = map[BaseType]string{
	Linear:    "LINEAR",
	ReLU:      "RELU",
	LeakyReLU: "LEAKY_RELU",
	Sigmoid:   "SIGMOID",
	Tanh:      "TANH",
	Softmax:   "SOFTMAX",
	Softplus:  "SOFTPLUS",
	GELU:      "GELU",
	SiLU:      "SILU",
}

// String returns the upper-snake name of the base type.
func (b BaseType) String() string {
	if name, ok := baseTypeNames[b]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether b is one of the declared base types.
func (b BaseType) Valid() bool {
	_, ok := baseTypeNames[b]
	return ok
}
