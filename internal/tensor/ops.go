package tensor

import "math"

// Conv2D applies a square convolution with stride 1 and symmetric zero
// padding. weight is laid out (outC, inC, k, k) row-major, bias has one
// entry per output channel. The output spatial size equals
// H - k + 2*pad + 1 (identical to the input for k=3, pad=1).
func Conv2D(in *Tensor, weight, bias []float32, outC, k, pad int) *Tensor {
	outH := in.H - k + 2*pad + 1
	outW := in.W - k + 2*pad + 1
	out := New(outC, outH, outW)

	for oc := 0; oc < outC; oc++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				sum := bias[oc]
				for ic := 0; ic < in.C; ic++ {
					for ky := 0; ky < k; ky++ {
						iy := oy + ky - pad
						if iy < 0 || iy >= in.H {
							continue
						}
						for kx := 0; kx < k; kx++ {
							ix := ox + kx - pad
							if ix < 0 || ix >= in.W {
								continue
							}
							w := weight[((oc*in.C+ic)*k+ky)*k+kx]
							sum += w * in.At(ic, iy, ix)
						}
					}
				}
				out.Set(oc, oy, ox, sum)
			}
		}
	}
	return out
}

// BatchNorm applies per-channel inference-mode batch normalization in
// place using the running statistics captured at training time.
func BatchNorm(t *Tensor, gamma, beta, mean, variance []float32, eps float32) *Tensor {
	for c := 0; c < t.C; c++ {
		scale := gamma[c] / float32(math.Sqrt(float64(variance[c]+eps)))
		shift := beta[c] - mean[c]*scale
		base := c * t.H * t.W
		for i := 0; i < t.H*t.W; i++ {
			t.Data[base+i] = t.Data[base+i]*scale + shift
		}
	}
	return t
}

// ReLU clamps negative values to zero in place.
func ReLU(t *Tensor) *Tensor {
	for i, v := range t.Data {
		if v < 0 {
			t.Data[i] = 0
		}
	}
	return t
}

// MaxPool2D applies non-overlapping k×k max pooling with stride k.
// Trailing rows/columns that do not fill a full window are dropped,
// matching the floor division the networks were trained with.
func MaxPool2D(in *Tensor, k int) *Tensor {
	outH := in.H / k
	outW := in.W / k
	out := New(in.C, outH, outW)
	for c := 0; c < in.C; c++ {
		for oy := 0; oy < outH; oy++ {
			for ox := 0; ox < outW; ox++ {
				max := float32(math.Inf(-1))
				for ky := 0; ky < k; ky++ {
					for kx := 0; kx < k; kx++ {
						if v := in.At(c, oy*k+ky, ox*k+kx); v > max {
							max = v
						}
					}
				}
				out.Set(c, oy, ox, max)
			}
		}
	}
	return out
}

// Dense applies a fully connected layer. weight is (out, in) row-major.
func Dense(in, weight, bias []float32, outDim int) []float32 {
	inDim := len(in)
	out := make([]float32, outDim)
	for o := 0; o < outDim; o++ {
		sum := bias[o]
		row := o * inDim
		for i := 0; i < inDim; i++ {
			sum += weight[row+i] * in[i]
		}
		out[o] = sum
	}
	return out
}

// ReLUVec clamps negative values to zero in place on a flat vector.
func ReLUVec(v []float32) []float32 {
	for i, x := range v {
		if x < 0 {
			v[i] = 0
		}
	}
	return v
}

// Softmax converts logits into a probability distribution. Computed in
// float64 with the max subtracted for numerical stability.
func Softmax(logits []float32) []float64 {
	max := float64(math.Inf(-1))
	for _, v := range logits {
		if float64(v) > max {
			max = float64(v)
		}
	}
	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(float64(v) - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// ArgMax returns the index of the largest value. Ties resolve to the
// lowest index.
func ArgMax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
