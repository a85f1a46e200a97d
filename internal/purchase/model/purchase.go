package models

import (
	"time"

	"github.com/google/uuid"

	identity "keymarket/internal/identity/model"
	listing "keymarket/internal/listing/model"
)

// Purchase binds one client to one service. At most one row per
// (client, service) pair, enforced by the composite unique constraint.
// The payment reference is the only handle activation runs on.
type Purchase struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ClientID uuid.UUID         `bun:",notnull,type:uuid,unique:client_service"`
	Client   *identity.Account `bun:"rel:belongs-to,join:client_id=id"`

	ServiceID uuid.UUID        `bun:",notnull,type:uuid,unique:client_service"`
	Service   *listing.Service `bun:"rel:belongs-to,join:service_id=id"`

	// One invoice per purchase
	PaymentRef string `bun:",unique,notnull"`

	// false = pending, true = active; flips exactly once
	Active bool `bun:",notnull,default:false"`

	ActivatedAt time.Time `bun:",nullzero"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
