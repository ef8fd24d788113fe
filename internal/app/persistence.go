package app

import (
	"github.com/llehouerou/parley/internal/session"
	"github.com/llehouerou/parley/internal/state"
)

// saveSessions persists the session list and the active index.
func saveSessions(mgr state.Interface, coll *session.Collection) error {
	return mgr.SaveSessions(state.SessionsState{
		ActiveIndex: coll.ActiveIndex(),
		Sessions:    toSaved(coll.Sessions()),
	})
}

func toSaved(list []session.Session) []state.SavedSession {
	out := make([]state.SavedSession, len(list))
	for i, s := range list {
		out[i] = state.SavedSession{
			ID:           s.ID,
			Title:        s.Title,
			UpdatedAt:    s.UpdatedAt,
			MessageCount: s.MessageCount,
		}
	}
	return out
}

func fromSaved(list []state.SavedSession) []session.Session {
	out := make([]session.Session, len(list))
	for i, s := range list {
		out[i] = session.Session{
			ID:           s.ID,
			Title:        s.Title,
			UpdatedAt:    s.UpdatedAt,
			MessageCount: s.MessageCount,
		}
	}
	return out
}
