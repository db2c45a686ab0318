package sketchy

// MapRange maps v from [fromLow, fromHigh] onto [toLow, toHigh] linearly.
// The result is undefined when fromLow == fromHigh.
func MapRange(v, fromLow, fromHigh, toLow, toHigh float64) float64 {
	return toLow + (toHigh-toLow)*((v-fromLow)/(fromHigh-fromLow))
}
