package tensor

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestConv2D_Identity(t *testing.T) {
	// A 3x3 kernel with 1 at the center copies the input.
	in := New(1, 4, 4)
	for i := range in.Data {
		in.Data[i] = float32(i)
	}
	weight := make([]float32, 9)
	weight[4] = 1
	bias := []float32{0}

	out := Conv2D(in, weight, bias, 1, 3, 1)

	if out.C != 1 || out.H != 4 || out.W != 4 {
		t.Fatalf("output shape %s, want (1,4,4)", out.Shape())
	}
	for i := range in.Data {
		if !almostEqual(float64(out.Data[i]), float64(in.Data[i])) {
			t.Fatalf("identity kernel changed value at %d: %f != %f", i, out.Data[i], in.Data[i])
		}
	}
}

func TestConv2D_SumKernelCorner(t *testing.T) {
	// An all-ones kernel on an all-ones input counts the in-bounds
	// neighborhood: 4 at a corner, 9 in the interior.
	in := New(1, 4, 4)
	for i := range in.Data {
		in.Data[i] = 1
	}
	weight := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1}
	bias := []float32{0}

	out := Conv2D(in, weight, bias, 1, 3, 1)

	if got := out.At(0, 0, 0); got != 4 {
		t.Errorf("corner = %f, want 4 (zero padding)", got)
	}
	if got := out.At(0, 1, 1); got != 9 {
		t.Errorf("interior = %f, want 9", got)
	}
}

func TestConv2D_MultiChannel(t *testing.T) {
	in := New(2, 2, 2)
	for i := range in.Data {
		in.Data[i] = 1
	}
	// Two output channels, each summing both input channels at center.
	weight := make([]float32, 2*2*9)
	weight[4] = 1                // oc0 ic0 center
	weight[9+4] = 1              // oc0 ic1 center
	weight[2*9+4] = 2            // oc1 ic0 center
	weight[3*9+4] = 2            // oc1 ic1 center
	bias := []float32{0, 10}

	out := Conv2D(in, weight, bias, 2, 3, 1)

	if got := out.At(0, 0, 0); got != 2 {
		t.Errorf("channel 0 = %f, want 2", got)
	}
	if got := out.At(1, 0, 0); got != 14 {
		t.Errorf("channel 1 = %f, want 14", got)
	}
}

func TestBatchNorm(t *testing.T) {
	in := New(1, 1, 2)
	in.Data = []float32{3, 5}

	// mean=4, var=1, gamma=2, beta=1: (x-4)*2 + 1
	BatchNorm(in, []float32{2}, []float32{1}, []float32{4}, []float32{1}, 0)

	if !almostEqual(float64(in.Data[0]), -1) || !almostEqual(float64(in.Data[1]), 3) {
		t.Errorf("got %v, want [-1 3]", in.Data)
	}
}

func TestMaxPool2D(t *testing.T) {
	in := New(1, 4, 4)
	for i := range in.Data {
		in.Data[i] = float32(i)
	}

	out := MaxPool2D(in, 2)

	if out.H != 2 || out.W != 2 {
		t.Fatalf("output shape %s, want (1,2,2)", out.Shape())
	}
	want := []float32{5, 7, 13, 15}
	for i, w := range want {
		if out.Data[i] != w {
			t.Errorf("pooled[%d] = %f, want %f", i, out.Data[i], w)
		}
	}
}

func TestMaxPool2D_DropsPartialWindows(t *testing.T) {
	in := New(1, 5, 5)
	out := MaxPool2D(in, 2)
	if out.H != 2 || out.W != 2 {
		t.Errorf("output shape %s, want (1,2,2) with partial windows dropped", out.Shape())
	}
}

func TestDense(t *testing.T) {
	in := []float32{1, 2}
	weight := []float32{1, 0, 0, 1, 1, 1} // rows: [1 0], [0 1], [1 1]
	bias := []float32{0, 10, -3}

	out := Dense(in, weight, bias, 3)

	want := []float32{1, 12, 0}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %f, want %f", i, out[i], w)
		}
	}
}

func TestSoftmax_SumsToOne(t *testing.T) {
	probs := Softmax([]float32{1, 2, 3, 4})
	var sum float64
	for _, p := range probs {
		if p <= 0 || p > 1 {
			t.Errorf("probability %f out of (0,1]", p)
		}
		sum += p
	}
	if !almostEqual(sum, 1.0) {
		t.Errorf("sum = %f, want 1", sum)
	}
	if ArgMax(probs) != 3 {
		t.Errorf("argmax = %d, want 3", ArgMax(probs))
	}
}

func TestSoftmax_LargeLogitsStable(t *testing.T) {
	probs := Softmax([]float32{1000, 1001})
	if math.IsNaN(probs[0]) || math.IsNaN(probs[1]) {
		t.Fatal("softmax overflowed on large logits")
	}
	if !almostEqual(probs[0]+probs[1], 1.0) {
		t.Errorf("sum = %f, want 1", probs[0]+probs[1])
	}
}

func TestReLU(t *testing.T) {
	in := New(1, 1, 3)
	in.Data = []float32{-1, 0, 2}
	ReLU(in)
	want := []float32{0, 0, 2}
	for i, w := range want {
		if in.Data[i] != w {
			t.Errorf("relu[%d] = %f, want %f", i, in.Data[i], w)
		}
	}
}
