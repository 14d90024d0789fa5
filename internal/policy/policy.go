// Package policy holds the appointment authorization rules as a pure
// decision function. It knows nothing about HTTP, tokens, or storage, so
// each rule can be exercised directly in tests.
package policy

import "github.com/google/uuid"

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

type Action string

const (
	ActionBook          Action = "book"
	ActionListAll       Action = "list_all"
	ActionListAsDoctor  Action = "list_as_doctor"
	ActionListAsPatient Action = "list_as_patient"
	ActionUpdateStatus  Action = "update_status"
	ActionCancel        Action = "cancel"
)

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Ref is the projection of an appointment the rules need: who it belongs to.
type Ref struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
}

// Decision is the outcome of a policy check. Reason is only set on denial
// and is safe to surface to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

// Decide evaluates whether actor may perform action. ref must be non-nil for
// the actions that target an existing appointment (update_status, cancel);
// resolving the appointment itself is the caller's job, so an unresolved id
// never reaches this function.
func Decide(actor Actor, action Action, ref *Ref) Decision {
	switch action {
	case ActionBook:
		if actor.Role != RolePatient {
			return deny("only patients can book appointments")
		}
		return allow()

	case ActionListAll:
		if actor.Role != RoleAdmin {
			return deny("only admins can list all appointments")
		}
		return allow()

	case ActionListAsDoctor:
		if actor.Role != RoleDoctor {
			return deny("only doctors can list their appointments")
		}
		return allow()

	case ActionListAsPatient:
		if actor.Role != RolePatient {
			return deny("only patients can list their appointments")
		}
		return allow()

	case ActionUpdateStatus:
		switch actor.Role {
		case RoleAdmin:
			return allow()
		case RoleDoctor:
			if ref == nil || ref.DoctorID != actor.ID {
				return deny("doctors can only update their own appointments")
			}
			return allow()
		default:
			return deny("only doctors and admins can update appointment status")
		}

	case ActionCancel:
		switch actor.Role {
		case RoleAdmin:
			return allow()
		case RolePatient:
			if ref == nil || ref.PatientID != actor.ID {
				return deny("patients can only cancel their own appointments")
			}
			return allow()
		default:
			// Doctors are never allowed to cancel, even their own.
			return deny("only the owning patient or an admin can cancel an appointment")
		}
	}

	return deny("unknown action")
}
