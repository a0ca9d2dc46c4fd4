package abstraction

import "context"

type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}
