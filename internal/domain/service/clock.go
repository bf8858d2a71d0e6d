// Package service defines the interfaces of domain services implemented in the infra layer.
package service

import "time"

// Clock supplies the current time to use cases. Resolver functions never read it
// directly; callers pass the instant explicitly.
type Clock interface {
	Now() time.Time
}
