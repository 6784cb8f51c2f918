package common

// TPS is the fixed simulation rate. Every system advances by 1/TPS
// seconds per update.
const TPS = 60

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
