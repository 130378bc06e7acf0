package cnn

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Weight artifacts are flat little-endian files: a fixed header followed
// by named float32 tensors exported from the training run.
//
//	magic   "AKWT"
//	version uint32
//	count   uint32
//	per tensor:
//	  nameLen uint32, name bytes
//	  numel   uint32, numel float32 values
const (
	weightsMagic   = "AKWT"
	weightsVersion = 1
)

// WeightMap holds a model's named parameter tensors, flattened row-major.
type WeightMap map[string][]float32

// ReadWeightsFile loads a weight artifact from disk.
func ReadWeightsFile(path string) (WeightMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w, err := UnmarshalWeights(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// UnmarshalWeights parses a weight artifact from bytes.
func UnmarshalWeights(data []byte) (WeightMap, error) {
	r := newWeightReader(data)
	if err := r.checkHeader(); err != nil {
		return nil, err
	}

	count, err := r.readUint32()
	if err != nil {
		return nil, err
	}

	weights := make(WeightMap, count)
	for i := uint32(0); i < count; i++ {
		name, err := r.readString()
		if err != nil {
			return nil, fmt.Errorf("tensor %d name: %w", i, err)
		}
		values, err := r.readFloats()
		if err != nil {
			return nil, fmt.Errorf("tensor %q: %w", name, err)
		}
		weights[name] = values
	}
	return weights, nil
}

// MarshalWeights serializes a WeightMap. Tensor order follows the given
// name order so artifacts are reproducible.
func MarshalWeights(w WeightMap, order []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(weightsMagic)
	binary.Write(&buf, binary.LittleEndian, uint32(weightsVersion))
	binary.Write(&buf, binary.LittleEndian, uint32(len(order)))

	for _, name := range order {
		values, ok := w[name]
		if !ok {
			return nil, fmt.Errorf("tensor %q missing from weight map", name)
		}
		binary.Write(&buf, binary.LittleEndian, uint32(len(name)))
		buf.WriteString(name)
		binary.Write(&buf, binary.LittleEndian, uint32(len(values)))
		for _, v := range values {
			binary.Write(&buf, binary.LittleEndian, math.Float32bits(v))
		}
	}
	return buf.Bytes(), nil
}

// tensor fetches a named tensor and validates its element count against
// the topology's expectation. Shape mismatches mean the artifact was
// trained for a different network and must not be loaded.
func (w WeightMap) tensor(name string, numel int) ([]float32, error) {
	values, ok := w[name]
	if !ok {
		return nil, fmt.Errorf("missing tensor %q", name)
	}
	if len(values) != numel {
		return nil, fmt.Errorf("tensor %q has %d elements, topology expects %d", name, len(values), numel)
	}
	return values, nil
}

type weightReader struct {
	*bytes.Reader
}

func newWeightReader(data []byte) weightReader {
	return weightReader{bytes.NewReader(data)}
}

func (r weightReader) checkHeader() error {
	magic := make([]byte, len(weightsMagic))
	if _, err := r.Read(magic); err != nil {
		return fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != weightsMagic {
		return fmt.Errorf("bad magic %q, not a weight artifact", magic)
	}
	version, err := r.readUint32()
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	if version != weightsVersion {
		return fmt.Errorf("unsupported weights version %d", version)
	}
	return nil
}

func (r weightReader) readUint32() (uint32, error) {
	var n uint32
	if err := binary.Read(r.Reader, binary.LittleEndian, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r weightReader) readString() (string, error) {
	n, err := r.readUint32()
	if err != nil {
		return "", err
	}
	if int(n) > r.Len() {
		return "", fmt.Errorf("name length %d exceeds remaining data", n)
	}
	buf := make([]byte, n)
	if _, err := r.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (r weightReader) readFloats() ([]float32, error) {
	n, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	if int(n)*4 > r.Len() {
		return nil, fmt.Errorf("tensor size %d exceeds remaining data", n)
	}
	values := make([]float32, n)
	if err := binary.Read(r.Reader, binary.LittleEndian, values); err != nil {
		return nil, err
	}
	return values, nil
}
