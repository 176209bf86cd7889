package survey

import "github.com/sustainage/materiality-survey/internal/domain"

// CreateSurveyResult is the outcome of CreateSurvey. In best-effort mode
// TopicsAdded may be lower than TopicsSubmitted; TopicFailures says why.
type CreateSurveyResult struct {
	Survey          domain.Survey
	DistributionURL string
	TopicsSubmitted int
	TopicsAdded     int
	TopicFailures   []domain.TopicRejection
}

// ListEntry is one survey of an operator listing.
type ListEntry struct {
	domain.SurveyListItem
	DistributionURL string
}

// Detail is a single survey with its ordered topics.
type Detail struct {
	Survey          domain.Survey
	Topics          []domain.Topic
	DistributionURL string
}

// PublicSurvey is what a stakeholder sees after opening a distribution link.
type PublicSurvey struct {
	Survey domain.Survey
	Topics []domain.Topic
}
