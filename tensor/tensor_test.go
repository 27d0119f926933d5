// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/deepzero/tensor"
)

func TestPublicAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	z := tensor.Add(x, tensor.Ones(2, 3))
	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7}, tensor.Values(z))
	assert.True(t, tensor.EqualShapes(tensor.Shape{2, 3}, z.Shape()))
	assert.Equal(t, 27.0, tensor.Sum(z))

	_, err = tensor.FromSlice([]float64{1, 2, 3}, 2, 2)
	assert.Error(t, err)
}

func TestAllClose(t *testing.T) {
	a := must.M1(tensor.FromSlice([]float64{1, 2}, 2))
	b := must.M1(tensor.FromSlice([]float64{1, 2 + 1e-9}, 2))
	assert.True(t, tensor.AllClose(a, b, 1e-6))
	assert.False(t, tensor.AllClose(a, tensor.Ones(1, 2), 1e-6))
	assert.Panics(t, func() { must.M1(tensor.FromSlice(nil, 3)) })
}
