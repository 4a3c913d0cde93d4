package queueing

// EstimateWaitMinutes derives the expected wait from a 1-based queue position.
// The customer at position 1 is next and waits zero minutes.
//
// Pure function: the per-customer duration is policy (process config, with an
// optional per-barber override) and is passed in by the caller.
func EstimateWaitMinutes(position, perCustomerMinutes int) int {
	if position <= 1 {
		return 0
	}
	return (position - 1) * perCustomerMinutes
}
