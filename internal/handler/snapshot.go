package handler

import (
	"net/http"

	"github.com/pkordes/contactbook/internal/command"
)

// CreateSnapshot handles POST /snapshots.
// The full address book is archived regardless of the current view.
func (s *Server) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	res, err := s.cmds.Run(r.Context(), command.Snapshot{})
	if err != nil {
		s.writeCommandError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, SnapshotResult{Message: res.Feedback, Path: res.Path})
}
