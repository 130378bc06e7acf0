package cnn

import (
	"fmt"

	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/tensor"
)

const (
	englishInputSize   = 28
	englishContentSize = 20
	englishHidden      = 256
)

// EnglishNet is the EMNIST letter classifier: two conv+batchnorm+pool
// stages (32 then 64 channels), a 256-unit hidden layer and a 26-way
// output, one unit per lowercase Latin letter.
type EnglishNet struct {
	conv1, conv2 conv
	bn1, bn2     batchNorm
	fc1, fc2     dense
	labels       []string
}

// NewEnglishNet builds the network from a weight map, validating every
// tensor's element count against the fixed topology. The final layer
// width must equal the label-space size.
func NewEnglishNet(w WeightMap) (*EnglishNet, error) {
	n := &EnglishNet{labels: Labels(LanguageEnglish)}

	var err error
	if n.conv1, err = loadConv(w, "conv1", 1, 32); err != nil {
		return nil, fmt.Errorf("english net: %w", err)
	}
	if n.bn1, err = loadBatchNorm(w, "bn1", 32); err != nil {
		return nil, fmt.Errorf("english net: %w", err)
	}
	if n.conv2, err = loadConv(w, "conv2", 32, 64); err != nil {
		return nil, fmt.Errorf("english net: %w", err)
	}
	if n.bn2, err = loadBatchNorm(w, "bn2", 64); err != nil {
		return nil, fmt.Errorf("english net: %w", err)
	}
	// After two 2x2 pools: 64 channels at 7x7.
	if n.fc1, err = loadDense(w, "fc1", 64*7*7, englishHidden); err != nil {
		return nil, fmt.Errorf("english net: %w", err)
	}
	if n.fc2, err = loadDense(w, "fc2", englishHidden, len(n.labels)); err != nil {
		return nil, fmt.Errorf("english net: %w", err)
	}
	return n, nil
}

func (n *EnglishNet) Classify(g *glyph.Glyph) (string, float64, error) {
	in, err := inputTensor(g, englishInputSize)
	if err != nil {
		return "", 0, err
	}

	x := tensor.MaxPool2D(tensor.ReLU(n.bn1.apply(n.conv1.apply(in))), 2)
	x = tensor.MaxPool2D(tensor.ReLU(n.bn2.apply(n.conv2.apply(x))), 2)

	hidden := tensor.ReLUVec(n.fc1.apply(x.Data))
	logits := n.fc2.apply(hidden)

	label, confidence := classifyLogits(logits, n.labels)
	return label, confidence, nil
}

func (n *EnglishNet) InputSize() int   { return englishInputSize }
func (n *EnglishNet) ContentSize() int { return englishContentSize }
func (n *EnglishNet) Labels() []string { return n.labels }
