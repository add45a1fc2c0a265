package query

import "github.com/hyperjump/kura/internal/models"

// Default attribute sets per endpoint. Viewers expect these tags in every response even
// when the query did not mention them.
var (
	StudyAttributes = []string{
		"00080005", "00080020", "00080030", "00080050", "00080054", "00080056", "00080061",
		"00080090", "00081190", "00100010", "00100020", "00100030", "00100040", "0020000D",
		"00200010", "00201206", "00201208",
	}
	SeriesAttributes = []string{
		"00080005", "00080054", "00080056", "00080060", "0008103E", "00081190", "0020000E",
		"00200011", "00201209",
	}
	InstanceAttributes         = []string{"00080016", "00080018"}
	InstanceMetadataAttributes = []string{
		"00080016", "00080018", "00080060", "00280002", "00280004", "00280010", "00280011",
		"00280030", "00280100", "00280101", "00280102", "00280103", "00281050", "00281051",
		"00281052", "00281053", "00200032", "00200037",
	}
)

// DefaultAttributes returns the default projection for a level.
func DefaultAttributes(level models.Level) []string {
	switch level {
	case models.LevelStudy:
		return StudyAttributes
	case models.LevelSeries:
		return SeriesAttributes
	case models.LevelImage:
		return InstanceMetadataAttributes
	}
	return nil
}
