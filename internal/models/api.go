package models

import "cvmatcher/internal/matcher"

type MatchRequest struct {
	CVText string `json:"cv_text"`
	JDText string `json:"jd_text"`
}

type PreprocessingStats struct {
	CVStats matcher.TextStats `json:"cv_stats"`
	JDStats matcher.TextStats `json:"jd_stats"`
}

type MatchResponse struct {
	matcher.ScoreRecord
	Preprocessing PreprocessingStats `json:"preprocessing"`
}

type HistoryResponse struct {
	Count   int           `json:"count"`
	Results []MatchResult `json:"results"`
}
