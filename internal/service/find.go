package service

import "github.com/pkordes/contactbook/internal/domain"

// FindService narrows and resets the Model's filtered view.
type FindService struct {
	model *Model
}

// NewFindService constructs a FindService over model.
func NewFindService(model *Model) *FindService {
	return &FindService{model: model}
}

// Find filters the view to persons matching keywords (see
// domain.MatchKeywords) and returns the matches.
func (s *FindService) Find(keywords []string) []domain.Person {
	s.model.UpdateFilter(domain.MatchKeywords(keywords))
	return s.model.Filtered()
}

// ListAll resets the view to show everyone and returns it.
func (s *FindService) ListAll() []domain.Person {
	s.model.UpdateFilter(domain.ShowAll)
	return s.model.Filtered()
}
