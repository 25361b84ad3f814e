package filesystem

import (
	"errors"

	"go.uber.org/zap"

	"github.com/wardfs/wardfs/internal/infrastructure/logging"
	"github.com/wardfs/wardfs/internal/infrastructure/monitoring"
	"github.com/wardfs/wardfs/internal/sandbox"
	"github.com/wardfs/wardfs/internal/types"
)

// Ops provides shared dependencies for filesystem operation helpers
type Ops struct {
	Sandbox *sandbox.Sandbox
	Logger  *logging.Logger
	Metrics *monitoring.Metrics
}

// rejected logs a sandbox rejection, counts it, and converts it to a
// structured failure.
func (o *Ops) rejected(op, path string, err error) (*types.Result, error) {
	o.Logger.Warn(op+" rejected", zap.String("path", path), zap.Error(err))
	if o.Metrics != nil {
		o.Metrics.RecordSandboxRejection(rejectionReason(err))
	}
	return Failure(err.Error())
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, sandbox.ErrSymlinkEscape):
		return "symlink_escape"
	case errors.Is(err, sandbox.ErrParentOutsideRoots):
		return "parent_outside_roots"
	case errors.Is(err, sandbox.ErrParentMissing):
		return "parent_missing"
	case errors.Is(err, sandbox.ErrOutsideRoots):
		return "outside_roots"
	default:
		return "invalid"
	}
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

func pathParam(params map[string]interface{}) (string, bool) {
	path, ok := params["path"].(string)
	return path, ok && path != ""
}
