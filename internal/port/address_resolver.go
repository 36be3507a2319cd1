package port

import (
	"context"
	"errors"

	"github.com/shefazol/ordering/internal/core/domain"
)

// ErrNoSelection is returned when the resolver has no candidate for the given
// text, i.e. the customer never picked a real address. This is a rejection;
// a resolved address without geometry is not.
var ErrNoSelection = errors.New("no address selected")

// AddressResolver turns free-text address input into a canonical address.
type AddressResolver interface {
	Resolve(ctx context.Context, rawText string) (*domain.ResolvedAddress, error)
}
