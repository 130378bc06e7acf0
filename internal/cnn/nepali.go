package cnn

import (
	"fmt"

	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/tensor"
)

const (
	nepaliInputSize   = 32
	nepaliContentSize = 24
	nepaliHidden      = 512
)

// NepaliNet is the Devanagari classifier: five conv+batchnorm stages in
// three pooled blocks (32→32, 64→64, 128), a 512-unit hidden layer and a
// 46-way output covering the curated consonant/base forms and digits.
type NepaliNet struct {
	conv1, conv2, conv3, conv4, conv5 conv
	bn1, bn2, bn3, bn4, bn5           batchNorm
	fc1, fc2                          dense
	labels                            []string
}

// NewNepaliNet builds the network from a weight map, validating every
// tensor's element count against the fixed topology.
func NewNepaliNet(w WeightMap) (*NepaliNet, error) {
	n := &NepaliNet{labels: Labels(LanguageNepali)}

	layers := []struct {
		conv *conv
		bn   *batchNorm
		name string
		in   int
		out  int
	}{
		{&n.conv1, &n.bn1, "1", 1, 32},
		{&n.conv2, &n.bn2, "2", 32, 32},
		{&n.conv3, &n.bn3, "3", 32, 64},
		{&n.conv4, &n.bn4, "4", 64, 64},
		{&n.conv5, &n.bn5, "5", 64, 128},
	}
	for _, l := range layers {
		c, err := loadConv(w, "conv"+l.name, l.in, l.out)
		if err != nil {
			return nil, fmt.Errorf("nepali net: %w", err)
		}
		*l.conv = c
		b, err := loadBatchNorm(w, "bn"+l.name, l.out)
		if err != nil {
			return nil, fmt.Errorf("nepali net: %w", err)
		}
		*l.bn = b
	}

	// After three 2x2 pools: 128 channels at 4x4.
	var err error
	if n.fc1, err = loadDense(w, "fc1", 128*4*4, nepaliHidden); err != nil {
		return nil, fmt.Errorf("nepali net: %w", err)
	}
	if n.fc2, err = loadDense(w, "fc2", nepaliHidden, len(n.labels)); err != nil {
		return nil, fmt.Errorf("nepali net: %w", err)
	}
	return n, nil
}

func (n *NepaliNet) Classify(g *glyph.Glyph) (string, float64, error) {
	in, err := inputTensor(g, nepaliInputSize)
	if err != nil {
		return "", 0, err
	}

	x := tensor.ReLU(n.bn1.apply(n.conv1.apply(in)))
	x = tensor.MaxPool2D(tensor.ReLU(n.bn2.apply(n.conv2.apply(x))), 2)
	x = tensor.ReLU(n.bn3.apply(n.conv3.apply(x)))
	x = tensor.MaxPool2D(tensor.ReLU(n.bn4.apply(n.conv4.apply(x))), 2)
	x = tensor.MaxPool2D(tensor.ReLU(n.bn5.apply(n.conv5.apply(x))), 2)

	hidden := tensor.ReLUVec(n.fc1.apply(x.Data))
	logits := n.fc2.apply(hidden)

	label, confidence := classifyLogits(logits, n.labels)
	return label, confidence, nil
}

func (n *NepaliNet) InputSize() int   { return nepaliInputSize }
func (n *NepaliNet) ContentSize() int { return nepaliContentSize }
func (n *NepaliNet) Labels() []string { return n.labels }
