package author

import (
	"fmt"
	"log/slog"

	"trustchain/internal/block"
	"trustchain/internal/crypto"
	"trustchain/internal/domain"
	"trustchain/internal/payload"
)

// Service authors blocks for the local device.
type Service struct {
	keys domain.DeviceKeyService
	log  *slog.Logger
}

// New returns an author service signing with keys from ks.
func New(ks domain.DeviceKeyService, log *slog.Logger) *Service {
	return &Service{keys: ks, log: log}
}

// CreateTrustchain signs a new root block with the device signature key.
// The returned block's TrustchainID identifies the new trustchain.
func (s *Service) CreateTrustchain(passphrase string) (block.Block, error) {
	keys, err := s.keys.LoadDeviceKeys(passphrase)
	if err != nil {
		return block.Block{}, err
	}
	defer crypto.WipeDeviceKeys(&keys)

	root, err := block.NewRoot(keys.SignaturePrivate)
	if err != nil {
		return block.Block{}, fmt.Errorf("create root block: %w", err)
	}
	s.log.Debug("signed root block", "trustchain_id", root.TrustchainID)
	return root, nil
}

// Publication is a resource key shared with a user. Author is the hash of
// the local device's creation block.
type Publication struct {
	TrustchainID  domain.Hash
	Index         uint64
	Author        domain.Hash
	RecipientUser domain.Hash
	RecipientKey  domain.PublicEncryptionKey
	ResourceID    domain.Mac
	ResourceKey   domain.SymmetricKey
}

// PublishKeyToUser seals p.ResourceKey to the recipient user's public
// encryption key and signs the resulting block.
func (s *Service) PublishKeyToUser(passphrase string, p Publication) (block.Block, error) {
	rec, err := payload.NewKeyPublishToUser(p.RecipientUser, p.RecipientKey, p.ResourceID, p.ResourceKey)
	if err != nil {
		return block.Block{}, err
	}
	return s.sign(passphrase, p.TrustchainID, p.Index, p.Author, rec)
}

func (s *Service) sign(passphrase string, trustchainID domain.Hash, index uint64, author domain.Hash, rec payload.Record) (block.Block, error) {
	unsigned, err := block.New(trustchainID, index, author, rec)
	if err != nil {
		return block.Block{}, err
	}

	keys, err := s.keys.LoadDeviceKeys(passphrase)
	if err != nil {
		return block.Block{}, err
	}
	defer crypto.WipeDeviceKeys(&keys)

	signed := block.Sign(unsigned, keys.SignaturePrivate)
	s.log.Debug("signed block",
		"nature", signed.Nature,
		"index", signed.Index,
		"hash", signed.Hash(),
	)
	return signed, nil
}
