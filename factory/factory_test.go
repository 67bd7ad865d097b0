// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factory_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/actfactory/activation"
	"github.com/born-ml/actfactory/backend/cpu"
	"github.com/born-ml/actfactory/backend/gonum"
	"github.com/born-ml/actfactory/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestHybridStack(t *testing.T) {
	native, err := factory.NewNative(42)
	require.NoError(t, err)
	hybrid, err := factory.NewHybrid(native, factory.DefaultConfig(activation.ProviderGorgonia))
	require.NoError(t, err)

	fc, err := hybrid.CreateLinear("fc", factory.NewNeurons(4), factory.NewNeurons(3))
	require.NoError(t, err)
	out, err := hybrid.CreateActivationByType("out", factory.NewNeurons(3), "softmax", nil)
	require.NoError(t, err)

	x := factory.NeuronsActivation{
		Features:    mat.NewDense(2, 4, []float64{1, 2, 3, 4, -1, 0, 1, 0}),
		Orientation: activation.ColumnsSpanFeatureSet,
	}
	z, err := fc.Forward(x)
	require.NoError(t, err)
	y, err := out.Forward(z)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.InDelta(t, 1.0, mat.Sum(y.Features.RowView(i)), 1e-9)
	}
}

func TestCustomRegistry(t *testing.T) {
	r, err := activation.NewRegistry([]activation.Identity{
		activation.NewIdentity("rectifier", activation.ReLU, []string{"com.example.Relu"},
			map[activation.Provider]string{activation.ProviderBorn: cpu.OpRelu, activation.ProviderGonum: gonum.ReLU}),
	}, activation.WithBackends(cpu.New(), gonum.New()))
	require.NoError(t, err)

	instances, err := factory.NewInstanceFactory(cpu.New(), gonum.New())
	require.NoError(t, err)

	hybrid, err := factory.NewHybrid(factory.NewDefault(r, instances, 1), factory.Config{
		Provider:  activation.ProviderGonum,
		Registry:  r,
		Instances: instances,
	})
	require.NoError(t, err)

	c, err := hybrid.CreateActivationByType("h", factory.NewNeurons(2), "com.example.Relu", nil)
	require.NoError(t, err)
	assert.Equal(t, gonum.Token(gonum.ReLU), c.Function().Token())

	_, err = hybrid.CreateActivationByType("h", factory.NewNeurons(2), "relu", nil)
	assert.ErrorIs(t, err, activation.ErrUnknownActivationType)
}

func ExampleBuild() {
	c, err := factory.Build("h2", factory.NewNeurons(2), "leaky_relu", activation.WithAlpha(0.3), activation.ProviderGonum)
	if err != nil {
		fmt.Println(err)
		return
	}
	y, _ := c.Forward(factory.NeuronsActivation{
		Features:    mat.NewDense(1, 2, []float64{-1, 2}),
		Orientation: activation.ColumnsSpanFeatureSet,
	})
	fmt.Println(c.Identity().Name(), c.RequiredOrientation())
	fmt.Printf("%.1f %.1f\n", y.Features.At(0, 0), y.Features.At(0, 1))
	// Output:
	// leaky-rectifier NONE
	// -0.3 2.0
}
