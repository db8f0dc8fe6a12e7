package handler

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/contactbook/internal/domain"
)

// Wire types of the HTTP API, mirroring the schemas in api/openapi.yaml.

type HealthResponse struct {
	Status string `json:"status"`
}

type Tag struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type Person struct {
	Name  string              `json:"name"`
	Phone string              `json:"phone"`
	Email openapi_types.Email `json:"email"`
	Tags  []Tag               `json:"tags"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type PersonList struct {
	Message    string     `json:"message"`
	Data       []Person   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// TagRequest is the body of POST /persons/{phone}/tags.
// An empty Kind means a plain tag.
type TagRequest struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"omitempty,oneof=tag project"`
}

// UnTagRequest is the body of POST /persons/{phone}/untag.
type UnTagRequest struct {
	Tags     []string `json:"tags" validate:"dive,required"`
	Projects []string `json:"projects" validate:"dive,required"`
}

type PersonResult struct {
	Message string `json:"message"`
	Person  Person `json:"person"`
}

type SnapshotResult struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// personToResponse converts a domain.Person into its wire form.
func personToResponse(p domain.Person) Person {
	tags := p.Tags.Tags()
	resp := Person{
		Name:  string(p.Name),
		Phone: string(p.Phone),
		Email: openapi_types.Email(p.Email),
		Tags:  make([]Tag, len(tags)),
	}
	for i, t := range tags {
		resp.Tags[i] = Tag{Name: t.Name(), Kind: t.Kind().String()}
	}
	return resp
}

func peopleToResponse(people []domain.Person) []Person {
	out := make([]Person, len(people))
	for i, p := range people {
		out[i] = personToResponse(p)
	}
	return out
}
