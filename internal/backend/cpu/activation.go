package cpu

import "math"

const (
	sqrt2OverPi = 0.7978845608028654 // sqrt(2/pi)
	geluCoeff   = 0.044715
)

func identity(x float32) float32 { return x }

func identityGrad(_, _ float32) float32 { return 1 }

func relu(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

func reluGrad(x, _ float32) float32 {
	if x > 0 {
		return 1
	}
	return 0
}

func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(float64(-x))))
}

// sigmoidGrad uses the cached output: σ'(x) = y(1-y).
func sigmoidGrad(_, y float32) float32 {
	return y * (1 - y)
}

func tanh(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

func tanhGrad(_, y float32) float32 {
	return 1 - y*y
}

// softplus(x) = log(1 + exp(x)), computed without overflow for large x.
func softplus(x float32) float32 {
	v := float64(x)
	if v > 20 {
		return x
	}
	return float32(math.Log1p(math.Exp(v)))
}

func softplusGrad(x, _ float32) float32 {
	return sigmoid(x)
}

// gelu uses the tanh approximation.
func gelu(x float32) float32 {
	v := float64(x)
	inner := sqrt2OverPi * (v + geluCoeff*v*v*v)
	return float32(0.5 * v * (1 + math.Tanh(inner)))
}

func geluGrad(x, _ float32) float32 {
	v := float64(x)
	inner := sqrt2OverPi * (v + geluCoeff*v*v*v)
	t := math.Tanh(inner)
	dInner := sqrt2OverPi * (1 + 3*geluCoeff*v*v)
	return float32(0.5*(1+t) + 0.5*v*(1-t*t)*dInner)
}

func silu(x float32) float32 {
	return x * sigmoid(x)
}

// siluGrad: dy/dx = σ(x)(1 + x(1 - σ(x))).
func siluGrad(x, _ float32) float32 {
	sig := sigmoid(x)
	return sig * (1 + x*(1-sig))
}
