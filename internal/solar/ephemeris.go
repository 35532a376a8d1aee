// Package solar approximates sun statistics for a fixed geographic
// location: declination, altitude at solar noon, day length, and local
// sunrise/sunset times.
//
// Two declination models coexist on purpose. The coarse sinusoidal model
// feeds the altitude and day-length figures; the NOAA Fourier-series
// model feeds sunrise and sunset. Both are dashboard-grade
// approximations, not astronomical-grade.
package solar

import (
	"fmt"
	"math"
	"time"
)

// Calculator computes sun statistics for one fixed location.
// Longitude is in degrees, east positive.
type Calculator struct {
	latitude  float64
	longitude float64
	location  *time.Location
}

// New returns a Calculator for the given coordinates and timezone.
func New(latitude, longitude float64, location *time.Location) *Calculator {
	return &Calculator{
		latitude:  latitude,
		longitude: longitude,
		location:  location,
	}
}

// Stats is the full set of sun figures for one date.
type Stats struct {
	// Altitude is the sun's elevation at solar noon in degrees,
	// rounded to one decimal.
	Altitude float64

	// DayLengthHours and DayLengthMinutes split the time the sun is up.
	DayLengthHours   int
	DayLengthMinutes int

	// Sunrise and Sunset are local clock times formatted HH:MM.
	Sunrise string
	Sunset  string
}

// Stats computes all sun figures for the given date.
func (c *Calculator) Stats(d time.Time) Stats {
	doy := d.YearDay()

	dec := Declination(doy)
	hours := c.DayLength(dec)
	hh, mm := splitHours(hours)

	sunrise, sunset := c.SunriseSunset(d)

	return Stats{
		Altitude:         c.Altitude(dec),
		DayLengthHours:   hh,
		DayLengthMinutes: mm,
		Sunrise:          sunrise,
		Sunset:           sunset,
	}
}

// Declination returns the display-grade solar declination in degrees for
// a day of year, from a single-term sine approximation.
func Declination(dayOfYear int) float64 {
	return 23.44 * math.Sin(radians(360.0/365.0*(float64(dayOfYear)-81)))
}

// Altitude returns the sun's elevation above the horizon at solar noon,
// in degrees rounded to one decimal, for the given declination.
func (c *Calculator) Altitude(declination float64) float64 {
	return math.Round((90-c.latitude+declination)*10) / 10
}

// DayLength returns the hours of daylight for the given declination.
// The hour-angle cosine is clamped so the formula degrades gracefully at
// latitudes with polar day or night.
func (c *Calculator) DayLength(declination float64) float64 {
	latR := radians(c.latitude)
	decR := radians(declination)

	cosH := clamp(-math.Tan(latR)*math.Tan(decR), -1, 1)
	h := math.Acos(cosH)

	return (2 * h * 24) / (2 * math.Pi)
}

// fracYear returns the fractional year angle gamma in radians for a day
// of year, the parameter of the NOAA series below.
func fracYear(dayOfYear int) float64 {
	return 2.0 * math.Pi / 365.0 * (float64(dayOfYear) - 1)
}

// EquationOfTime returns the difference between mean and apparent solar
// time in minutes, from the NOAA five-term series.
func EquationOfTime(dayOfYear int) float64 {
	g := fracYear(dayOfYear)
	return 229.18 * (0.000075 +
		0.001868*math.Cos(g) -
		0.032077*math.Sin(g) -
		0.014615*math.Cos(2*g) -
		0.040849*math.Sin(2*g))
}

// declinationRadians returns the solar declination in radians from the
// NOAA seven-term series. Used only for sunrise/sunset.
func declinationRadians(dayOfYear int) float64 {
	g := fracYear(dayOfYear)
	return 0.006918 -
		0.399912*math.Cos(g) +
		0.070257*math.Sin(g) -
		0.006758*math.Cos(2*g) +
		0.000907*math.Sin(2*g) -
		0.002697*math.Cos(3*g) +
		0.00148*math.Sin(3*g)
}

// tzOffsetHours returns the UTC offset of the configured timezone on the
// given date, sampled at local noon. DST transitions happen in the early
// morning, so noon always carries the offset that applies to the bulk of
// the day.
func (c *Calculator) tzOffsetHours(d time.Time) float64 {
	noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, c.location)
	_, offset := noon.Zone()
	return float64(offset) / 3600.0
}

// SunriseSunset returns the local clock times of sunrise and sunset for
// the given date, formatted HH:MM. The hour angle uses a zenith of
// 90.833 degrees, which folds in standard atmospheric refraction.
func (c *Calculator) SunriseSunset(d time.Time) (sunrise, sunset string) {
	doy := d.YearDay()

	latR := radians(c.latitude)
	dec := declinationRadians(doy)
	eqt := EquationOfTime(doy)

	zenith := radians(90.833)
	cosHA := (math.Cos(zenith) - math.Sin(latR)*math.Sin(dec)) / (math.Cos(latR) * math.Cos(dec))
	cosHA = clamp(cosHA, -1, 1)
	haDeg := degrees(math.Acos(cosHA))

	tzHours := c.tzOffsetHours(d)

	// Solar noon in minutes of local clock time, longitude east-positive.
	solarNoonMin := 720 - 4*c.longitude - eqt + 60*tzHours
	sunriseMin := solarNoonMin - 4*haDeg
	sunsetMin := solarNoonMin + 4*haDeg

	return formatClock(sunriseMin), formatClock(sunsetMin)
}

// formatClock renders minutes-since-midnight as HH:MM, wrapping modulo
// one day and rolling a rounded :60 into the next hour.
func formatClock(minutes float64) string {
	minutes = math.Mod(minutes, 24*60)
	if minutes < 0 {
		minutes += 24 * 60
	}

	hh := int(minutes / 60)
	mm := int(math.Round(math.Mod(minutes, 60)))
	if mm == 60 {
		hh = (hh + 1) % 24
		mm = 0
	}

	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// splitHours splits fractional hours into whole hours and rounded
// minutes, rolling a rounded 60 into the next hour.
func splitHours(hours float64) (int, int) {
	hh := int(hours)
	mm := int(math.Round((hours - float64(hh)) * 60))
	if mm == 60 {
		hh = (hh + 1) % 24
		mm = 0
	}
	return hh, mm
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
