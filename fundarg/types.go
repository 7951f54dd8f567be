// SPDX-License-Identifier: MIT

package fundarg

// Args holds all fourteen fundamental arguments at one epoch, in radians.
type Args struct {
	L  float64 // mean anomaly of the Moon
	Lp float64 // mean anomaly of the Sun
	F  float64 // L − Ω, Ω being the longitude of the Moon's ascending node
	D  float64 // mean elongation of the Moon from the Sun
	Om float64 // mean longitude of the Moon's ascending node

	Me float64 // mean longitude of Mercury
	Ve float64 // mean longitude of Venus
	E  float64 // mean longitude of the Earth
	Ma float64 // mean longitude of Mars
	Ju float64 // mean longitude of Jupiter
	Sa float64 // mean longitude of Saturn
	Ur float64 // mean longitude of Uranus
	Ne float64 // mean longitude of Neptune

	Pa float64 // general accumulated precession in longitude
}
