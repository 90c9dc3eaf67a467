package model

// Point is a generic coordinate pair, e.g. an elliptic curve point or a grid position.
type Point[T any] struct {
	X T
	Y T
}

// NewPoint constructs a Point.
func NewPoint[T any](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}
