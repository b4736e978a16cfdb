// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package mvec

import "testing"

func TestMultiVectorRowMajor(t *testing.T) {
	// 2x3: [[1,2,3],[4,5,6]]
	m := MultiVectorOf([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if m.At(0, 0) != 1 || m.At(0, 2) != 3 || m.At(1, 0) != 4 || m.At(1, 2) != 6 {
		t.Errorf("row-major At returned wrong elements")
	}

	m.Set(1, 1, 50)
	if m.At(1, 1) != 50 {
		t.Errorf("Set(1,1,50) not visible through At")
	}
}

func TestMultiVectorCol(t *testing.T) {
	m := MultiVectorOf([]float64{1, 2, 3, 4, 5, 6}, 3, 2)

	c0 := m.Col(0)
	c1 := m.Col(1)
	if c0.Len() != 3 || c1.Len() != 3 {
		t.Fatalf("column lengths = %d, %d, want 3, 3", c0.Len(), c1.Len())
	}
	// column 0 is [1,3,5], column 1 is [2,4,6]
	for i, want := range []float64{1, 3, 5} {
		if c0.At(i) != want {
			t.Errorf("col0[%d] = %v, want %v", i, c0.At(i), want)
		}
	}
	for i, want := range []float64{2, 4, 6} {
		if c1.At(i) != want {
			t.Errorf("col1[%d] = %v, want %v", i, c1.At(i), want)
		}
	}

	// column views share the backing slice
	c1.Set(0, 20)
	if m.At(0, 1) != 20 {
		t.Errorf("column Set not visible through parent view")
	}
}

func TestSubview(t *testing.T) {
	m := MultiVectorOf([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	}, 3, 4)

	s := m.Subview(1, 3, 1, 3)
	if s.Rows() != 2 || s.Cols() != 2 {
		t.Fatalf("subview shape = %dx%d, want 2x2", s.Rows(), s.Cols())
	}
	want := [2][2]float64{{6, 7}, {10, 11}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if s.At(i, j) != want[i][j] {
				t.Errorf("subview At(%d,%d) = %v, want %v", i, j, s.At(i, j), want[i][j])
			}
		}
	}

	empty := m.Subview(3, 3, 0, 4)
	if empty.Rows() != 0 || empty.Cols() != 4 {
		t.Errorf("empty subview shape = %dx%d, want 0x4", empty.Rows(), empty.Cols())
	}
}

func TestStridedVector(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v := StridedVector(data, 3, 2) // [1,3,5]

	if v.Contiguous() {
		t.Error("stride-2 vector reports contiguous")
	}
	for i, want := range []float64{1, 3, 5} {
		if v.At(i) != want {
			t.Errorf("v[%d] = %v, want %v", i, v.At(i), want)
		}
	}
}

func TestVectorSlice(t *testing.T) {
	v := VectorOf([]float64{1, 2, 3, 4})
	s := v.Slice(1, 3)
	if len(s) != 2 || s[0] != 2 || s[1] != 3 {
		t.Errorf("Slice(1,3) = %v, want [2 3]", s)
	}

	defer func() {
		if recover() == nil {
			t.Error("Slice on strided vector did not panic")
		}
	}()
	StridedVector([]float64{1, 2, 3, 4}, 2, 2).Slice(0, 2)
}

func TestRowSlice(t *testing.T) {
	m := MultiVectorOf([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if !m.RowContiguous() {
		t.Fatal("row-major multivector not RowContiguous")
	}
	row := m.RowSlice(1)
	if len(row) != 3 || row[0] != 4 || row[2] != 6 {
		t.Errorf("RowSlice(1) = %v, want [4 5 6]", row)
	}
}

func TestViewBoundsPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"short backing slice", func() { MultiVectorOf([]float64{1, 2}, 2, 2) }},
		{"negative shape", func() { NewMultiVector[float64](-1, 2) }},
		{"column out of range", func() { NewMultiVector[float64](2, 2).Col(2) }},
		{"subview out of range", func() { NewMultiVector[float64](2, 2).Subview(0, 3, 0, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
