package models

import (
	"time"

	"github.com/google/uuid"

	identity "keymarket/internal/identity/model"
)

// Service is a published signing offer. The xpub itself is stored only as
// authenticated ciphertext; the keyed fingerprint is what existence and
// duplicate checks run against.
type Service struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ProviderID uuid.UUID         `bun:",notnull,type:uuid,unique:provider_key"`
	Provider   *identity.Account `bun:"rel:belongs-to,join:provider_id=id"`

	// Opaque policy label (e.g. "timelock", "multisig-2of3"), consumed
	// but never interpreted here
	PolicyType string `bun:",notnull"`

	MasterFingerprint string `bun:",notnull"`
	DerivationPath    string `bun:",notnull"`

	// Keyed one-way digest of the xpub; same key + same secret => same
	// value, so a provider cannot list the same key twice
	XpubFingerprint string `bun:",notnull,unique:provider_key"`

	// AES-GCM sealed xpub, immutable after creation
	XpubCiphertext []byte `bun:",notnull"`

	ActivationFeeSats   int64 `bun:",notnull"`
	PerSignatureFeeSats int64 `bun:",notnull,default:0"`

	// Lightning address or offer the provider is paid through
	LightningEndpoint string `bun:",notnull"`

	Purchased bool `bun:",default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
