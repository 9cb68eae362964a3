package service

import (
	"fitbuddy/internal/models"
)

// requireOwnership gates every post and comment mutation: only the owner of
// a resource may change or remove it.
func requireOwnership(ownerID, requesterID uint, message string) error {
	if ownerID != requesterID {
		return models.NewUnauthorizedError(message)
	}
	return nil
}
