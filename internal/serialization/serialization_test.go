package serialization

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/deepzero/internal/autodiff"
	"github.com/born-ml/deepzero/internal/tensor"
)

func TestSafeTensors_RoundTrip(t *testing.T) {
	tensors := map[string]*tensor.Dense{
		"weight":     tensor.MustFromSlice([]float64{1.5, -2, 3.25, 0, 1e-300, -7}, 2, 3),
		"bias":       tensor.Scalar(0.125),
		"velocity.0": tensor.Zeros(4),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSafeTensors(&buf, tensors, map[string]string{"optimizer": "sgd"}))

	loaded, metadata, err := ReadSafeTensors(&buf)
	require.NoError(t, err)
	assert.Equal(t, "sgd", metadata["optimizer"])
	assert.Contains(t, metadata, checksumKey)
	require.Len(t, loaded, 3)
	for name, want := range tensors {
		got := loaded[name]
		require.NotNil(t, got, name)
		assert.True(t, tensor.EqualShapes(want.Shape(), got.Shape()), name)
		assert.Equal(t, tensor.Values(want), tensor.Values(got), name)
	}
}

func TestSafeTensors_Checksum(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSafeTensors(&buf, map[string]*tensor.Dense{"x": tensor.Ones(2)}, nil))

	corrupted := buf.Bytes()
	corrupted[len(corrupted)-1] ^= 0xff
	_, _, err := ReadSafeTensors(bytes.NewReader(corrupted))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestSafeTensors_BadInput(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteSafeTensors(&buf, map[string]*tensor.Dense{"../x": tensor.Ones(1)}, nil))

	buf.Reset()
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(MaxHeaderSize+1)))
	_, _, err := ReadSafeTensors(&buf)
	assert.ErrorIs(t, err, ErrHeaderTooLarge)

	buf.Reset()
	header := []byte(`{"x":{"dtype":"F32","shape":[1],"data_offsets":[0,4]}}`)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(header))))
	buf.Write(header)
	buf.Write([]byte{0, 0, 0, 0})
	_, _, err = ReadSafeTensors(&buf)
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestValidateTensorOffsets(t *testing.T) {
	ok := []tensorEntry{{Name: "a", Offset: 0, Size: 8}, {Name: "b", Offset: 8, Size: 16}}
	assert.NoError(t, validateTensorOffsets(ok, 24))

	var verr *ValidationError
	err := validateTensorOffsets(ok, 16)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "out_of_bounds", verr.Type)

	overlap := []tensorEntry{{Name: "a", Offset: 0, Size: 16}, {Name: "b", Offset: 8, Size: 8}}
	require.ErrorAs(t, validateTensorOffsets(overlap, 24), &verr)
	assert.Equal(t, "offset_overlap", verr.Type)
}

func TestCheckpoint_Variables(t *testing.T) {
	x0 := autodiff.NewVariable(tensor.Scalar(0.5)).SetName("x0")
	x1 := autodiff.NewVariable(tensor.MustFromSlice([]float64{1, 2}, 2)).SetName("x1")
	vars := []*autodiff.Variable{x0, x1}

	state, err := VariablesStateDict(vars)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "params.safetensors")
	require.NoError(t, SaveFile(path, state, nil))

	x0.SetData(tensor.Scalar(9))
	x1.SetData(tensor.Zeros(2))
	loaded, _, err := LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, LoadVariables(vars, loaded))
	assert.Equal(t, 0.5, tensor.Item(x0.Data()))
	assert.Equal(t, []float64{1, 2}, tensor.Values(x1.Data()))

	// Shape mismatch leaves every Variable untouched.
	x0.SetData(tensor.Scalar(9))
	loaded["x1"] = tensor.Zeros(3)
	assert.Error(t, LoadVariables(vars, loaded))
	assert.Equal(t, 9.0, tensor.Item(x0.Data()))
}

func TestCheckpoint_Names(t *testing.T) {
	unnamed := autodiff.NewVariable(tensor.Scalar(1))
	_, err := VariablesStateDict([]*autodiff.Variable{unnamed})
	assert.Error(t, err)

	a := autodiff.NewVariable(tensor.Scalar(1)).SetName("a")
	b := autodiff.NewVariable(tensor.Scalar(2)).SetName("a")
	_, err = VariablesStateDict([]*autodiff.Variable{a, b})
	assert.Error(t, err)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.safetensors"))
	assert.Error(t, err)
}
