package kinematics

import "errors"

// ErrUnknownJoint is returned when a joint name cannot be resolved.
var ErrUnknownJoint = errors.New("kinematics: unknown joint")
