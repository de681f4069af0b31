package calendar

import (
	"fmt"

	"github.com/angelmondragon/salonadmin/pkg/enums"
	pkgerrors "github.com/angelmondragon/salonadmin/pkg/errors"
)

// AllowedActions lists the actions offered for a booking in the given status.
// set_status is always offered, including from completed and cancelled.
func AllowedActions(status enums.BookingStatus) []enums.BookingAction {
	switch {
	case status == enums.BookingStatusPending:
		return []enums.BookingAction{enums.BookingActionAccept, enums.BookingActionDecline, enums.BookingActionCancel, enums.BookingActionSet}
	case status.IsTerminal():
		return []enums.BookingAction{enums.BookingActionSet}
	default:
		return []enums.BookingAction{enums.BookingActionCancel, enums.BookingActionSet}
	}
}

// Transition applies a user action to the current status. target is only read for
// set_status, which accepts any valid status from any state.
func Transition(current enums.BookingStatus, action enums.BookingAction, target enums.BookingStatus) (enums.BookingStatus, error) {
	switch action {
	case enums.BookingActionAccept:
		if current != enums.BookingStatusPending {
			return current, notAllowed(current, action)
		}
		return enums.BookingStatusConfirmed, nil
	case enums.BookingActionDecline:
		if current != enums.BookingStatusPending {
			return current, notAllowed(current, action)
		}
		return enums.BookingStatusCancelled, nil
	case enums.BookingActionCancel:
		if current.IsTerminal() {
			return current, notAllowed(current, action)
		}
		return enums.BookingStatusCancelled, nil
	case enums.BookingActionSet:
		if !target.IsValid() {
			return current, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status").
				WithDetails(map[string]string{"status": string(target)})
		}
		return target, nil
	default:
		return current, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown booking action %q", action))
	}
}

func notAllowed(current enums.BookingStatus, action enums.BookingAction) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("cannot %s a %s booking", action, current)).
		WithDetails(map[string]any{
			"status":  current,
			"allowed": AllowedActions(current),
		})
}
