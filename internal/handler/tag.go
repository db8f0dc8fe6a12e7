package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/contactbook/internal/command"
	"github.com/pkordes/contactbook/internal/domain"
)

// TagPerson handles POST /persons/{phone}/tags.
// The tag is merged into the person's tags; adding a tag the person already
// carries succeeds without changing anything.
func (s *Server) TagPerson(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if status, body := s.decodeBody(r, &req); body != nil {
		writeError(w, status, *body)
		return
	}

	kind := domain.KindTag
	if req.Kind == domain.KindProject.String() {
		kind = domain.KindProject
	}
	tag, err := domain.NewTagOfKind(req.Name, kind)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, requestBody(domain.TagConstraints))
		return
	}

	res, err := s.cmds.Run(r.Context(), command.Tag{Phone: phoneParam(r), Tag: tag})
	if err != nil {
		s.writeCommandError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PersonResult{Message: res.Feedback, Person: personToResponse(*res.Person)})
}

// UnTagPerson handles POST /persons/{phone}/untag.
// Tags and projects are matched by name regardless of case. A request that
// matches none of the person's tags is rejected with 409.
func (s *Server) UnTagPerson(w http.ResponseWriter, r *http.Request) {
	var req UnTagRequest
	if status, body := s.decodeBody(r, &req); body != nil {
		writeError(w, status, *body)
		return
	}

	tags, err := domain.NewTags(req.Tags, domain.KindTag)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, requestBody(domain.TagConstraints))
		return
	}
	projects, err := domain.NewTags(req.Projects, domain.KindProject)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, requestBody(domain.TagConstraints))
		return
	}

	res, err := s.cmds.Run(r.Context(), command.UnTag{Phone: phoneParam(r), Tags: tags, Projects: projects})
	if err != nil {
		s.writeCommandError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PersonResult{Message: res.Feedback, Person: personToResponse(*res.Person)})
}

// --- mapping helpers --------------------------------------------------------

func phoneParam(r *http.Request) domain.Phone {
	return domain.Phone(chi.URLParam(r, "phone"))
}
