package dto

type CourseGradeDTO struct {
	Course  string  `json:"course" binding:"required"`
	Code    string  `json:"code" binding:"required"`
	Midterm float64 `json:"midterm"`
	Final   float64 `json:"final"`
	Score   float64 `json:"score"`
	Letter  string  `json:"letter" binding:"required"`
	Quality float64 `json:"quality" binding:"min=0,max=4"`
}

type TranscriptPutRequest struct {
	Rows []CourseGradeDTO `json:"rows" binding:"required,dive"`
}

// TranscriptResponse is the KHS sheet plus the semester grade point average
// (IP) over its rows.
type TranscriptResponse struct {
	NIM      string           `json:"nim"`
	Rows     []CourseGradeDTO `json:"rows"`
	IP       float64          `json:"ip"`
	Cumlaude bool             `json:"cumlaude"`
}
