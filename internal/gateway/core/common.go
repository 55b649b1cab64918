package core

import "fmt"

const (
	MaxConcurrentAPICalls = 40
)

var (
	RequestLimiter = make(chan struct{}, MaxConcurrentAPICalls)
)

// RunWithRateLimitedConcurrency executes fn while holding a semaphore
// slot, so fan-out steps never exceed MaxConcurrentAPICalls in-flight
// calls to the domain services. The slot is released even if fn
// panics; the panic is rethrown for the caller's recover.
func RunWithRateLimitedConcurrency(fn func()) {
	RequestLimiter <- struct{}{}

	var released bool
	defer func() {
		if !released {
			<-RequestLimiter
		}
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	defer func() {
		<-RequestLimiter
		released = true
	}()

	fn()
}

func IsMissing(str string) bool {
	return len(str) == 0
}

func MissingParamErr(paramName string) error {
	return fmt.Errorf("required param [%v] is missing", paramName)
}
