package glm

type Vec2[T numeric] [2]T

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

// WithX returns a copy of the vector with the first component replaced.
func (lhs Vec2[T]) WithX(x T) Vec2[T] {
	lhs[0] = x
	return lhs
}

// WithY returns a copy of the vector with the second component replaced.
func (lhs Vec2[T]) WithY(y T) Vec2[T] {
	lhs[1] = y
	return lhs
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}
