package services

import (
	portssvc "github.com/tripflow/tripflow_backend/internal/core/ports/services"
	"github.com/tripflow/tripflow_backend/internal/repositories/database/sqlite"
)

// NewServiceContainer wires every service against the repository container
// and the geocoding client.
func NewServiceContainer(repos *sqlite.RepositoryContainer, geocoder portssvc.GeocoderSvcFacade) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.User),
		Trip:      NewTripService(repos.Trip),
		Step:      NewStepService(repos.Step, repos.Trip),
		Checklist: NewChecklistService(repos.Checklist, repos.Trip),
		Journal:   NewJournalService(repos.Journal, repos.Step, repos.Trip),
		Geocoder:  geocoder,
	}
}
