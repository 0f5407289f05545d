package season

// MarkPeriodScoredInput contains parameters for recording a scored gameweek
type MarkPeriodScoredInput struct {
	Period int
}

// IsPeriodScoredInput contains parameters for checking a gameweek
type IsPeriodScoredInput struct {
	Period int
}
