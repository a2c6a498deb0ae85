package controllers

import "appeals-api/services"

var svc *services.Services

// Init wires the service container used by the appeal handlers. Must be
// called once before routes are registered.
func Init(s *services.Services) {
	svc = s
}
