package spectral2D

// Dfdz is the centered first difference in z at flattened index i
func Dfdz(f []float64, i int, dz float64) float64 {
	return (f[i+1] - f[i-1]) / (2 * dz)
}

// Dfdz2 is the centered second difference in z at flattened index i
func Dfdz2(f []float64, i int, oodz2 float64) float64 {
	return (f[i+1] - 2*f[i] + f[i-1]) * oodz2
}
