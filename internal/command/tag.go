package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/contactbook/internal/domain"
)

// Tag adds one tag or project to the person with Phone.
type Tag struct {
	Phone domain.Phone
	Tag   domain.Tag
}

func (c Tag) Name() string { return "tag" }

// Execute reports MessageProjectAdded or MessageTagAdded depending on the
// kind of the added tag.
func (c Tag) Execute(ctx context.Context, env *Env) (Result, error) {
	if !domain.IsValidTagName(c.Tag.Name()) {
		return Result{}, newError(domain.ErrValidation, "%s", domain.TagConstraints)
	}

	tagged, err := env.Tags.Tag(ctx, c.Phone, c.Tag)
	if err != nil {
		return Result{}, resolveError(err, c.Phone, env)
	}

	feedback := MessageTagAdded
	if c.Tag.IsProject() {
		feedback = MessageProjectAdded
	}
	return Result{Feedback: feedback, Person: &tagged, People: env.Model.Filtered()}, nil
}

// UnTag removes tags and projects from the person with Phone. A request that
// matches none of the person's tags fails and changes nothing.
type UnTag struct {
	Phone    domain.Phone
	Tags     []domain.Tag
	Projects []domain.Tag
}

func (c UnTag) Name() string { return "untag" }

func (c UnTag) Execute(ctx context.Context, env *Env) (Result, error) {
	if len(c.Tags)+len(c.Projects) == 0 {
		return Result{}, newError(domain.ErrValidation, "%s", MessageNothingToRemove)
	}

	untagged, removed, err := env.Tags.UnTag(ctx, c.Phone, c.Tags, c.Projects)
	if err != nil {
		if errors.Is(err, domain.ErrNoChange) {
			// untagged is the unchanged record here.
			return Result{}, newError(err, MessageNoTagsMatched, untagged.Name)
		}
		return Result{}, resolveError(err, c.Phone, env)
	}

	return Result{
		Feedback: fmt.Sprintf(MessageTagsRemoved, removed, untagged.Name),
		Person:   &untagged,
		People:   env.Model.Filtered(),
	}, nil
}

// resolveError maps lookup and write failures of tag and untag.
func resolveError(err error, phone domain.Phone, env *Env) *Error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return newError(err, "%s", MessageAbsentPhoneNumber)
	case errors.Is(err, domain.ErrDuplicate):
		return newError(err, MessageDuplicatePhone, phone)
	default:
		return storageError(err, env.StoreLocation)
	}
}
