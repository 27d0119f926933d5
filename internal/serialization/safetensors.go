package serialization

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/deepzero/internal/tensor"
)

const (
	metadataKey = "__metadata__"
	checksumKey = "sha256"
	dtypeF64    = "F64"
)

// safeTensorHeader describes one array in the SafeTensors header.
type safeTensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// WriteSafeTensors writes arrays to w in SafeTensors format.
// Arrays are written in alphabetical order by name.
func WriteSafeTensors(w io.Writer, tensors map[string]*tensor.Dense, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var data []byte
	header := make(map[string]any, len(names)+1)
	for _, name := range names {
		start := int64(len(data))
		for _, v := range tensors[name].Float64s() {
			data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
		}
		header[name] = safeTensorHeader{
			DType:       dtypeF64,
			Shape:       append([]int(nil), tensors[name].Shape()...),
			DataOffsets: [2]int64{start, int64(len(data))},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	sum := sha256.Sum256(data)
	meta[checksumKey] = hex.EncodeToString(sum[:])
	header[metadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write data")
	}
	return nil
}

// ReadSafeTensors reads arrays written by WriteSafeTensors. It returns the
// arrays and the metadata, including the stored checksum.
func ReadSafeTensors(r io.Reader) (map[string]*tensor.Dense, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, errors.Wrapf(ErrHeaderTooLarge, "header size %d", headerSize)
	}
	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &raw); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse header")
	}
	var metadata map[string]string
	entries := make([]tensorEntry, 0, len(raw))
	for name, msg := range raw {
		if name == metadataKey {
			if err := json.Unmarshal(msg, &metadata); err != nil {
				return nil, nil, errors.Wrap(err, "failed to parse metadata")
			}
			continue
		}
		if err := ValidateTensorName(name); err != nil {
			return nil, nil, err
		}
		var h safeTensorHeader
		if err := json.Unmarshal(msg, &h); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse header of %q", name)
		}
		if h.DType != dtypeF64 {
			return nil, nil, errors.Wrapf(ErrUnsupportedDType, "tensor %q has dtype %s", name, h.DType)
		}
		entries = append(entries, tensorEntry{
			Name:   name,
			Shape:  h.Shape,
			Offset: h.DataOffsets[0],
			Size:   h.DataOffsets[1] - h.DataOffsets[0],
		})
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read data")
	}
	if err := validateTensorOffsets(entries, int64(len(data))); err != nil {
		return nil, nil, err
	}
	if stored, found := metadata[checksumKey]; found {
		sum := sha256.Sum256(data)
		if hex.EncodeToString(sum[:]) != stored {
			return nil, nil, ErrChecksumMismatch
		}
	}

	tensors := make(map[string]*tensor.Dense, len(entries))
	for _, e := range entries {
		chunk := data[e.Offset : e.Offset+e.Size]
		if len(chunk)%8 != 0 {
			return nil, nil, &ValidationError{Type: "bad_size", Tensor: e.Name, Details: "size is not a multiple of 8"}
		}
		values := make([]float64, len(chunk)/8)
		for i := range values {
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(chunk[i*8:]))
		}
		t, err := tensor.FromSlice(values, e.Shape...)
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "tensor %q", e.Name)
		}
		tensors[e.Name] = t
	}
	klog.V(2).Infof("read %d tensors (%d bytes)", len(tensors), len(data))
	return tensors, metadata, nil
}

// SaveFile writes arrays to path in SafeTensors format.
func SaveFile(path string, tensors map[string]*tensor.Dense, metadata map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", path)
	}
	if err := WriteSafeTensors(f, tensors, metadata); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "saving %q", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %q", path)
}

// LoadFile reads arrays saved by SaveFile.
func LoadFile(path string) (map[string]*tensor.Dense, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %q", path)
	}
	defer func() { _ = f.Close() }()

	tensors, metadata, err := ReadSafeTensors(f)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "loading %q", path)
	}
	return tensors, metadata, nil
}
