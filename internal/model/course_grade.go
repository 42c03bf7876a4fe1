package model

// CourseGrade is one KHS transcript row. Display-layer data: the quality
// point (mutu) is stored as graded, not recomputed here.
type CourseGrade struct {
	Course  string  `json:"course"`
	Code    string  `json:"code"`
	Midterm float64 `json:"midterm"` // UTS
	Final   float64 `json:"final"`   // UAS
	Score   float64 `json:"score"`   // composite final score
	Letter  string  `json:"letter"`
	Quality float64 `json:"quality"` // mutu, on the 0-4 scale
}
