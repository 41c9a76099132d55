package core

// StreamReport is an on-demand snapshot pairing the monetized and
// non-monetized streams recorded for one artist. It is computed, never
// persisted.
type StreamReport struct {
	ArtistID     ArtistID
	Monetized    []AudioStream
	NonMonetized []AudioStream
}

// BuildStreamReport partitions the given streams by their monetization
// classification, preserving the order the streams were handed in.
func BuildStreamReport(artistID ArtistID, streams []AudioStream) StreamReport {
	report := StreamReport{ArtistID: artistID}

	for _, stream := range streams {
		if stream.Monetized.Bool() {
			report.Monetized = append(report.Monetized, stream)
		} else {
			report.NonMonetized = append(report.NonMonetized, stream)
		}
	}

	return report
}
