package clothing

import "math"

// WindyThresholdMph is exclusive: a speed equal to it is still calm.
const WindyThresholdMph = 10.0

// MaxTemperature bounds the magnitude of a temperature that gets a bucket.
// Anything larger can never match the table and would not fit the stored bucket.
const MaxTemperature = 1000.0

// Recommendation is the result of one table lookup. OutOfRange marks a
// temperature beyond MaxTemperature, in which case Bucket is zero.
type Recommendation struct {
	Bucket     int       `json:"bucket"`
	Condition  Condition `json:"condition"`
	Items      []string  `json:"items"`
	ImageURLs  []string  `json:"imageUrls"`
	OutOfRange bool      `json:"outOfRange,omitempty"`
}

// RoundTemperature normalizes a temperature to the nearest multiple of 5.
// Ties on t/5 round half to even, so 72.5 and 67.5 both land on 70.
// It reports false for NaN and for magnitudes above MaxTemperature.
func RoundTemperature(temp float64) (int, bool) {
	if math.IsNaN(temp) || math.Abs(temp) > MaxTemperature {
		return 0, false
	}
	return int(math.RoundToEven(temp/5)) * 5, true
}

// Classify maps a wind speed in mph to a table condition.
func Classify(windSpeed float64) Condition {
	if windSpeed > WindyThresholdMph {
		return Windy
	}
	return Calm
}

// Lookup returns a copy of the items for bucket and condition.
// Unknown buckets or conditions yield an empty list.
func Lookup(bucket int, cond Condition) []string {
	items := table[bucket][cond]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// ImageURLs resolves item identifiers through the catalog, skipping unknown ids.
func ImageURLs(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if ref, ok := catalog[item]; ok {
			out = append(out, ref)
		}
	}
	return out
}

// Recommend normalizes the inputs and resolves the matching clothing images.
func Recommend(temp, windSpeed float64) Recommendation {
	cond := Classify(windSpeed)
	bucket, ok := RoundTemperature(temp)
	if !ok {
		return Recommendation{
			Condition:  cond,
			Items:      []string{},
			ImageURLs:  []string{},
			OutOfRange: true,
		}
	}
	items := Lookup(bucket, cond)
	return Recommendation{
		Bucket:    bucket,
		Condition: cond,
		Items:     items,
		ImageURLs: ImageURLs(items),
	}
}
