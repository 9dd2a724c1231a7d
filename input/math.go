package input

import "golang.org/x/exp/constraints"

func Sum[T constraints.Integer](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

func Product[T constraints.Integer](xs []T) T {
	var p T = 1
	for _, x := range xs {
		p *= x
	}
	return p
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM of all xs; 0 when xs is empty.
func LCM[T constraints.Integer](xs ...T) T {
	if len(xs) == 0 {
		return 0
	}
	l := xs[0]
	for _, x := range xs[1:] {
		l = l / GCD(l, x) * x
	}
	return l
}
