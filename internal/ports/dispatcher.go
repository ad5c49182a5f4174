package ports

import (
	"context"

	"github.com/jsamuelsen11/ward-alert-service/internal/domain/broadcast"
)

// Dispatcher hands encoded commands to the external mesh agent.
// Implemented by the agent adapter; called by the application layer.
type Dispatcher interface {
	// Dispatch runs exactly one agent process for cmd inside workDir and
	// blocks until it terminates. On success the captured output is
	// returned with a nil error. Any spawn failure, non-zero exit or signal
	// yields an error wrapping domain.ErrDispatch. Dispatch never retries
	// and does not kill the process when ctx is canceled.
	Dispatch(ctx context.Context, cmd broadcast.Command, workDir string) (broadcast.DispatchResult, error)
}
