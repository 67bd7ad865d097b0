package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/born-ml/actfactory/internal/activation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Default()
	require.NoError(t, err)
	return r
}

func TestDefaultResolvesEveryDeclaredProvider(t *testing.T) {
	r := defaultRegistry(t)

	for _, id := range r.Identities() {
		for _, qid := range id.QualifiedIDs() {
			found, err := r.FindCanonical(qid)
			require.NoError(t, err, qid)
			assert.Equal(t, id.Name(), found.Name())

			for _, p := range found.Providers() {
				tok, err := r.ResolveForProvider(found, p)
				require.NoError(t, err, "%s on %s", qid, p)
				assert.Equal(t, p, tok.Provider)
				assert.NotEmpty(t, tok.Name)
			}
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Registry, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = Default()
		}(i)
	}
	wg.Wait()
	for _, r := range got {
		assert.Same(t, got[0], r)
	}
}

func TestFindCanonicalUnknown(t *testing.T) {
	_, err := defaultRegistry(t).FindCanonical("gelu_v9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, activation.ErrUnknownActivationType))
	assert.Contains(t, err.Error(), "gelu_v9")
}

func TestResolveForProviderUnsupported(t *testing.T) {
	r := defaultRegistry(t)

	relu, err := r.FindCanonical("relu")
	require.NoError(t, err)
	_, err = r.ResolveForProvider(relu, "providerZ")
	assert.ErrorIs(t, err, activation.ErrUnsupportedProvider)
	assert.Contains(t, err.Error(), "rectifier")
	assert.Contains(t, err.Error(), "providerZ")

	gelu, err := r.FindCanonical("gelu")
	require.NoError(t, err)
	_, err = r.ResolveForProvider(gelu, activation.ProviderGorgonia)
	assert.ErrorIs(t, err, activation.ErrUnsupportedProvider)
}

func TestAliasesShareIdentity(t *testing.T) {
	r := defaultRegistry(t)

	a, err := r.FindCanonical("leaky_relu")
	require.NoError(t, err)
	b, err := r.FindCanonical("leakyrelu")
	require.NoError(t, err)
	assert.Equal(t, a.Name(), b.Name())
	assert.Equal(t, activation.LeakyReLU, a.BaseType())
}

func TestResolve(t *testing.T) {
	r := defaultRegistry(t)

	id, tok, err := r.Resolve("softmax", activation.ProviderGorgonia)
	require.NoError(t, err)
	assert.Equal(t, activation.Softmax, id.BaseType())
	assert.Equal(t, activation.Token{Provider: activation.ProviderGorgonia, Name: "SoftMax"}, tok)

	assert.True(t, r.Supports("swish", activation.ProviderBorn))
	assert.False(t, r.Supports("swish", activation.ProviderGonum))
	assert.False(t, r.Supports("nope", activation.ProviderBorn))
}

func TestLookupIsPure(t *testing.T) {
	r := defaultRegistry(t)
	before := r.QualifiedIDs()

	_, _ = r.FindCanonical("relu")
	_, _ = r.FindCanonical("missing")
	ids := r.Identities()
	ids[0] = activation.Identity{}

	assert.Equal(t, before, r.QualifiedIDs())
	assert.Equal(t, "identity", r.Identities()[0].Name())
}

func TestNewValidation(t *testing.T) {
	born := map[activation.Provider]string{activation.ProviderBorn: "Relu"}

	tests := []struct {
		name       string
		identities []activation.Identity
		opts       []Option
		wantType   string
	}{
		{
			name: "duplicate qualified id",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.ReLU, []string{"relu"}, born),
				activation.NewIdentity("b", activation.ReLU, []string{"relu"}, born),
			},
			wantType: "duplicate_qualified_id",
		},
		{
			name: "no mappings",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.ReLU, []string{"relu"}, nil),
			},
			wantType: "no_mappings",
		},
		{
			name: "duplicate canonical name",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.ReLU, []string{"x"}, born),
				activation.NewIdentity("a", activation.ReLU, []string{"y"}, born),
			},
			wantType: "duplicate_identity",
		},
		{
			name: "empty qualified id",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.ReLU, []string{""}, born),
			},
			wantType: "empty_qualified_id",
		},
		{
			name: "invalid base type",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.BaseType(42), []string{"a"}, born),
			},
			wantType: "invalid_base_type",
		},
		{
			name: "token unknown to backend",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.ReLU, []string{"a"},
					map[activation.Provider]string{activation.ProviderBorn: "Mish"}),
			},
			opts:     []Option{WithBackends(BuiltinBackends()...)},
			wantType: "unknown_token",
		},
		{
			name: "provider without backend",
			identities: []activation.Identity{
				activation.NewIdentity("a", activation.ReLU, []string{"a"},
					map[activation.Provider]string{"mxnet": "relu"}),
			},
			opts:     []Option{WithBackends(BuiltinBackends()...)},
			wantType: "unknown_provider",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.identities, tt.opts...)
			assert.Nil(t, r)
			require.ErrorIs(t, err, activation.ErrInvalidRegistry)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantType, verr.Type)
		})
	}
}

func TestNewReportsEveryProblem(t *testing.T) {
	_, err := New([]activation.Identity{
		activation.NewIdentity("a", activation.ReLU, []string{"x"}, nil),
		activation.NewIdentity("b", activation.Tanh, []string{"x"}, map[activation.Provider]string{activation.ProviderBorn: "Tanh"}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_mappings")
	assert.Contains(t, err.Error(), "duplicate_qualified_id")
}

func TestQualifiedIDsSorted(t *testing.T) {
	ids := defaultRegistry(t).QualifiedIDs()
	assert.IsNonDecreasing(t, ids)
	assert.Contains(t, ids, "relu")
	assert.Contains(t, ids, "softmax")
	assert.Len(t, ids, 14)
}
