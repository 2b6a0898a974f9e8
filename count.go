package staticfmt

// Count markers for Repeat. Larger counts are spelled with Sum, Product and Succ,
// e.g. Product[N10, N10] is one hundred.
type (
	N0  struct{}
	N1  struct{}
	N2  struct{}
	N3  struct{}
	N4  struct{}
	N5  struct{}
	N6  struct{}
	N7  struct{}
	N8  struct{}
	N9  struct{}
	N10 struct{}
	N11 struct{}
	N12 struct{}
	N13 struct{}
	N14 struct{}
	N15 struct{}
	N16 struct{}
)

func (N0) Count() int { return 0 }
func (N1) Count() int { return 1 }
func (N2) Count() int { return 2 }
func (N3) Count() int { return 3 }
func (N4) Count() int { return 4 }
func (N5) Count() int { return 5 }
func (N6) Count() int { return 6 }
func (N7) Count() int { return 7 }
func (N8) Count() int { return 8 }
func (N9) Count() int { return 9 }
func (N10) Count() int { return 10 }
func (N11) Count() int { return 11 }
func (N12) Count() int { return 12 }
func (N13) Count() int { return 13 }
func (N14) Count() int { return 14 }
func (N15) Count() int { return 15 }
func (N16) Count() int { return 16 }

// Sum counts A + B.
type Sum[A, B Count] struct{}

func (Sum[A, B]) Count() int {
	var a A
	var b B
	return a.Count() + b.Count()
}

// Product counts A * B.
type Product[A, B Count] struct{}

func (Product[A, B]) Count() int {
	var a A
	var b B
	return a.Count() * b.Count()
}

// Succ counts A + 1.
type Succ[A Count] struct{}

func (Succ[A]) Count() int {
	var a A
	return a.Count() + 1
}
