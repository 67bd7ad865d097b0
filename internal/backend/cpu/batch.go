package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/actfactory/internal/activation"
	"gonum.org/v1/gonum/mat"
)

// batch is a row-major float32 copy of a matrix.
type batch struct {
	rows, cols int
	data       []float32
}

func fromMatrix(m mat.Matrix) (batch, error) {
	if m == nil {
		return batch{}, fmt.Errorf("cpu: %w: nil batch", activation.ErrShapeMismatch)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return batch{}, fmt.Errorf("cpu: %w: empty %dx%d batch", activation.ErrShapeMismatch, r, c)
	}
	b := batch{rows: r, cols: c, data: make([]float32, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			b.data[i*c+j] = float32(m.At(i, j))
		}
	}
	return b, nil
}

// pair converts two matrices that must share dimensions.
func pair(a, b mat.Matrix) (batch, batch, error) {
	x, err := fromMatrix(a)
	if err != nil {
		return batch{}, batch{}, err
	}
	y, err := fromMatrix(b)
	if err != nil {
		return batch{}, batch{}, err
	}
	if x.rows != y.rows || x.cols != y.cols {
		return batch{}, batch{}, fmt.Errorf("cpu: %w: %dx%d vs %dx%d",
			activation.ErrShapeMismatch, x.rows, x.cols, y.rows, y.cols)
	}
	return x, y, nil
}

func (b batch) like() batch {
	return batch{rows: b.rows, cols: b.cols, data: make([]float32, len(b.data))}
}

func (b batch) row(r int) []float32 {
	return b.data[r*b.cols : (r+1)*b.cols]
}

func (b batch) dense() *mat.Dense {
	out := make([]float64, len(b.data))
	for i, v := range b.data {
		out[i] = float64(v)
	}
	return mat.NewDense(b.rows, b.cols, out)
}

// narrow converts a parameter to float32, rejecting values float32 cannot hold.
func narrow(name string, v float64) (float32, error) {
	if math.IsNaN(v) || math.Abs(v) > math.MaxFloat32 {
		return 0, fmt.Errorf("cpu: %w: %s=%v does not fit in float32", activation.ErrInvalidParameter, name, v)
	}
	return float32(v), nil
}
