package payload

import (
	"trustchain/internal/domain"
	"trustchain/internal/nature"
	"trustchain/internal/wire"
)

// TrustchainCreation is the root block payload: the key that signs the
// first devices of the chain.
type TrustchainCreation struct {
	PublicSignatureKey domain.PublicSignatureKey `json:"public_signature_key"`
}

func (TrustchainCreation) Kind() nature.Kind { return nature.KindTrustchainCreation }
func (TrustchainCreation) isRecord()         {}

func SerializeTrustchainCreation(r TrustchainCreation) ([]byte, error) {
	e := wire.NewEncoder(domain.PublicSignatureKeySize)
	writeFields(e, fixed("public_signature_key", r.PublicSignatureKey[:], domain.PublicSignatureKeySize))
	return e.Bytes()
}

func UnserializeTrustchainCreation(buf []byte) (TrustchainCreation, error) {
	var r TrustchainCreation
	off, err := readFields(buf, 0, fixed("public_signature_key", r.PublicSignatureKey[:], domain.PublicSignatureKeySize))
	if err != nil {
		return TrustchainCreation{}, err
	}
	if err := wire.ExpectEnd(buf, off, "trustchain_creation"); err != nil {
		return TrustchainCreation{}, err
	}
	return r, nil
}
