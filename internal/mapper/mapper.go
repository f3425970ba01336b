// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"mergington-activities/internal/entities"
	oapi "mergington-activities/internal/oapi"
)

// ToOAPIActivity maps entities.Activity to transport model.
func ToOAPIActivity(a entities.Activity) oapi.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return oapi.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToOAPIActivities maps a slice of activities to the name-keyed transport object.
func ToOAPIActivities(list []entities.Activity) oapi.Activities {
	res := make(oapi.Activities, 0, len(list))
	for _, a := range list {
		res = append(res, oapi.NamedActivity{Name: a.Name, Activity: ToOAPIActivity(a)})
	}
	return res
}

// ToOAPISignup maps a signup confirmation to transport model.
func ToOAPISignup(e entities.Enrollment) oapi.MessageResponse {
	return oapi.MessageResponse{Message: e.SignupMessage()}
}

// ToOAPIUnregister maps an unregister confirmation to transport model.
func ToOAPIUnregister(e entities.Enrollment) oapi.MessageResponse {
	return oapi.MessageResponse{Message: e.UnregisterMessage()}
}
