package service

import (
	"errors"

	"github.com/recordlane/releasecraft/core"
)

// isDomainRejection distinguishes expected business rejections from
// infrastructure or invariant failures for outcome metrics.
func isDomainRejection(err error) bool {
	return errors.Is(err, core.ErrNotFound) ||
		errors.Is(err, core.ErrInvalidState) ||
		errors.Is(err, core.ErrInvalidArgument) ||
		errors.Is(err, core.ErrPolicyViolation)
}
