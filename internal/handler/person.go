package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkordes/contactbook/internal/command"
	"github.com/pkordes/contactbook/internal/domain"
)

// ListPersons handles GET /persons.
// Without ?q= it lists everyone and resets the view; with ?q= it runs a find
// over the space-separated keywords. Supports ?page= and ?limit= query
// parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListPersons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := optionalInt(query.Get("page"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, requestBody("page must be an integer"))
		return
	}
	limit, err := optionalInt(query.Get("limit"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, requestBody("limit must be an integer"))
		return
	}
	params := domain.NewPaginationParams(page, limit)

	var cmd command.Command = command.List{}
	if keywords := strings.Fields(query.Get("q")); len(keywords) > 0 {
		cmd = command.Find{Keywords: keywords}
	}
	res, err := s.cmds.Run(r.Context(), cmd)
	if err != nil {
		s.writeCommandError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, PersonList{
		Message: res.Feedback,
		Data:    peopleToResponse(domain.Paginate(res.People, params)),
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(res.People),
		},
	})
}

// optionalInt parses s, returning nil for an empty string.
func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
