package sparse

import "testing"

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 9, 1)
	M.Set(9, 0, 2)
	M.Set(2, 1, 3)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(5, 5); v != M.NullValue() {
		t.Errorf("expected M(5,5) to be null, is %d", v)
	}
	if old := M.Set(2, 3, 123); old != 4711 {
		t.Errorf("expected Set to return previous value 4711, got %d", old)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values, have %d", M.ValueCount())
	}
	M.Set(0, 9, M.NullValue())
	if M.ValueCount() != 3 || M.Value(0, 9) != M.NullValue() {
		t.Errorf("expected M(0,9) to be removed")
	}
}

func TestMatrixOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 2, 8)
	M.Set(0, 1, 1)
	M.Set(1, 0, 3)
	M.Set(0, 0, 0)
	M.Set(1, 2, 5)
	var got []int32
	M.Each(func(i, j int, v int32) {
		got = append(got, v)
	})
	want := []int32{0, 1, 3, 5, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Fatalf("expected row-major order %v, got %v", want, got)
		}
	}
	var row []int
	M.Row(1, func(j int, v int32) {
		row = append(row, j)
	})
	if len(row) != 2 || row[0] != 0 || row[1] != 2 {
		t.Errorf("expected columns [0 2] in row 1, got %v", row)
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set out of range to panic")
		}
	}()
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 1)
}
