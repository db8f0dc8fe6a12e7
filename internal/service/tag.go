package service

import (
	"context"
	"fmt"

	"github.com/pkordes/contactbook/internal/domain"
)

// TagService adds and removes tags on person records.
// Both operations resolve the person by phone in the filtered view, compute
// the replacement record, and only then ask the Model to swap it in.
// On success the view is reset to show everyone.
type TagService struct {
	model *Model
}

// NewTagService constructs a TagService over model.
func NewTagService(model *Model) *TagService {
	return &TagService{model: model}
}

// Tag merges tag into the tag set of the person with phone and returns the
// updated record. Re-adding an existing tag succeeds without changing content.
// Returns domain.ErrNotFound if no person in the view has phone.
func (s *TagService) Tag(ctx context.Context, phone domain.Phone, tag domain.Tag) (domain.Person, error) {
	person, err := s.model.FindByPhone(phone)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.TagService.Tag: %w", err)
	}

	tagged := person.WithTag(tag)
	if err := s.model.Replace(ctx, person, tagged); err != nil {
		return domain.Person{}, fmt.Errorf("service.TagService.Tag: %w", err)
	}
	s.model.UpdateFilter(domain.ShowAll)
	return tagged, nil
}

// UnTag removes every tag in tags or projects from the person with phone and
// returns the updated record with the number of tags removed.
// Returns domain.ErrNotFound if no person in the view has phone, and
// domain.ErrNoChange if none of the requested tags were present; in both
// cases the store is unchanged.
//
// With domain.ErrNoChange the returned person is the resolved, unchanged
// record, so callers can name who was left alone. Every other error comes
// with the zero Person.
func (s *TagService) UnTag(ctx context.Context, phone domain.Phone, tags, projects []domain.Tag) (domain.Person, int, error) {
	person, err := s.model.FindByPhone(phone)
	if err != nil {
		return domain.Person{}, 0, fmt.Errorf("service.TagService.UnTag: %w", err)
	}

	untagged, removed := person.WithoutTags(tags, projects)
	if removed == 0 {
		return person, 0, fmt.Errorf("service.TagService.UnTag: %w", domain.ErrNoChange)
	}

	if err := s.model.Replace(ctx, person, untagged); err != nil {
		return domain.Person{}, 0, fmt.Errorf("service.TagService.UnTag: %w", err)
	}
	s.model.UpdateFilter(domain.ShowAll)
	return untagged, removed, nil
}
