package cnn

import (
	"fmt"

	"github.com/Dipin-Adhikari/akshara/internal/glyph"
	"github.com/Dipin-Adhikari/akshara/internal/tensor"
)

// Classifier is a trained glyph classifier for one language. Classify is
// a pure function of the loaded weights and the input, so a single
// instance may serve concurrent requests.
type Classifier interface {
	// Classify returns the arg-max label and its softmax probability.
	Classify(g *glyph.Glyph) (label string, confidence float64, err error)

	// InputSize is the square grid size the network was trained on.
	InputSize() int

	// ContentSize is the ink window the normalizer must fit strokes into.
	ContentSize() int

	// Labels returns the ordered label space (one entry per output unit).
	Labels() []string
}

// batchNormEps matches the epsilon the networks were trained with.
const batchNormEps = 1e-5

// conv holds one 3×3, pad-1 convolution's parameters.
type conv struct {
	weight, bias []float32
	in, out      int
}

func (c conv) apply(t *tensor.Tensor) *tensor.Tensor {
	return tensor.Conv2D(t, c.weight, c.bias, c.out, 3, 1)
}

// batchNorm holds per-channel affine parameters and running statistics.
type batchNorm struct {
	gamma, beta, mean, variance []float32
}

func (b batchNorm) apply(t *tensor.Tensor) *tensor.Tensor {
	return tensor.BatchNorm(t, b.gamma, b.beta, b.mean, b.variance, batchNormEps)
}

// dense holds one fully connected layer's parameters.
type dense struct {
	weight, bias []float32
	in, out      int
}

func (d dense) apply(v []float32) []float32 {
	return tensor.Dense(v, d.weight, d.bias, d.out)
}

// loadConv pulls a convolution's parameters out of a weight map using
// the exported training names (<prefix>.weight, <prefix>.bias).
func loadConv(w WeightMap, prefix string, in, out int) (conv, error) {
	weight, err := w.tensor(prefix+".weight", out*in*3*3)
	if err != nil {
		return conv{}, err
	}
	bias, err := w.tensor(prefix+".bias", out)
	if err != nil {
		return conv{}, err
	}
	return conv{weight: weight, bias: bias, in: in, out: out}, nil
}

func loadBatchNorm(w WeightMap, prefix string, channels int) (batchNorm, error) {
	gamma, err := w.tensor(prefix+".weight", channels)
	if err != nil {
		return batchNorm{}, err
	}
	beta, err := w.tensor(prefix+".bias", channels)
	if err != nil {
		return batchNorm{}, err
	}
	mean, err := w.tensor(prefix+".running_mean", channels)
	if err != nil {
		return batchNorm{}, err
	}
	variance, err := w.tensor(prefix+".running_var", channels)
	if err != nil {
		return batchNorm{}, err
	}
	return batchNorm{gamma: gamma, beta: beta, mean: mean, variance: variance}, nil
}

func loadDense(w WeightMap, prefix string, in, out int) (dense, error) {
	weight, err := w.tensor(prefix+".weight", out*in)
	if err != nil {
		return dense{}, err
	}
	bias, err := w.tensor(prefix+".bias", out)
	if err != nil {
		return dense{}, err
	}
	return dense{weight: weight, bias: bias, in: in, out: out}, nil
}

// inputTensor converts a normalized glyph into the network's input,
// applying the affine pixel transform used at training time:
// scale to [0,1], then shift/scale to [-1,1].
func inputTensor(g *glyph.Glyph, size int) (*tensor.Tensor, error) {
	if g.Size != size {
		return nil, fmt.Errorf("glyph is %dx%d, network expects %dx%d", g.Size, g.Size, size, size)
	}
	t := tensor.New(1, size, size)
	for i, p := range g.Pix {
		t.Data[i] = (float32(p)/255.0 - 0.5) / 0.5
	}
	return t, nil
}

// classifyLogits turns final-layer logits into (label, confidence).
func classifyLogits(logits []float32, labels []string) (string, float64) {
	probs := tensor.Softmax(logits)
	idx := tensor.ArgMax(probs)
	return labels[idx], probs[idx]
}
