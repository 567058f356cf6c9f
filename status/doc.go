// Package status translates cairo status codes into typed Go errors.
//
// Cairo objects carry a sticky status: once an operation fails, every later
// status query reports the original failure. Wrappers therefore query the
// status after each fallible native call and translate non-success codes
// with ToError; success returns nil and stays silent.
//
//	if err := status.FromCode(ffi.Cairo.Status(cr)).ToError(); err != nil {
//		return err
//	}
//
// Errors compare by status code through errors.Is:
//
//	errors.Is(err, &status.Error{Status: status.InvalidRestore})
package status
