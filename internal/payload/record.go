package payload

import (
	"fmt"

	"trustchain/internal/nature"
	"trustchain/internal/wire"
)

// Record is a decoded block payload. The set of implementations is closed.
type Record interface {
	Kind() nature.Kind
	isRecord()
}

// Unserialize decodes buf with the codec registered for n. Device creations
// of every version decode to UserDevice.
func Unserialize(n nature.Nature, buf []byte) (Record, error) {
	switch n {
	case nature.TrustchainCreation:
		return record(UnserializeTrustchainCreation(buf))
	case nature.DeviceCreationV1:
		return record(UnserializeUserDeviceV1(buf))
	case nature.DeviceCreationV2:
		return record(UnserializeUserDeviceV2(buf))
	case nature.DeviceCreationV3:
		return record(UnserializeUserDeviceV3(buf))
	case nature.KeyPublishToDevice:
		return record(UnserializeKeyPublish(buf))
	case nature.KeyPublishToUser:
		return record(UnserializeKeyPublishToUser(buf))
	case nature.KeyPublishToUserGroup:
		return record(UnserializeKeyPublishToUserGroup(buf))
	case nature.DeviceRevocationV1:
		return record(UnserializeDeviceRevocationV1(buf))
	case nature.DeviceRevocationV2:
		return record(UnserializeDeviceRevocationV2(buf))
	case nature.UserGroupCreation:
		return record(UnserializeUserGroupCreation(buf))
	case nature.UserGroupAddition:
		return record(UnserializeUserGroupAddition(buf))
	}
	return nil, wire.NewDecodeError("nature", 0, fmt.Errorf("%w: %d", nature.ErrUnknownNature, uint64(n)))
}

// record drops the zero value a failed decoder returns alongside its error.
func record[R Record](r R, err error) (Record, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Serialize encodes r with the codec registered for n. A record whose type
// does not belong to n is an assertion error.
func Serialize(n nature.Nature, r Record) ([]byte, error) {
	switch n {
	case nature.TrustchainCreation:
		if rec, ok := r.(TrustchainCreation); ok {
			return SerializeTrustchainCreation(rec)
		}
	case nature.DeviceCreationV1:
		if rec, ok := r.(UserDevice); ok {
			return SerializeUserDeviceV1(rec)
		}
	case nature.DeviceCreationV2:
		if rec, ok := r.(UserDevice); ok {
			return SerializeUserDeviceV2(rec)
		}
	case nature.DeviceCreationV3:
		if rec, ok := r.(UserDevice); ok {
			return SerializeUserDeviceV3(rec)
		}
	case nature.KeyPublishToDevice:
		if rec, ok := r.(KeyPublish); ok {
			return SerializeKeyPublish(rec)
		}
	case nature.KeyPublishToUser:
		if rec, ok := r.(KeyPublishToUser); ok {
			return SerializeKeyPublishToUser(rec)
		}
	case nature.KeyPublishToUserGroup:
		if rec, ok := r.(KeyPublishToUserGroup); ok {
			return SerializeKeyPublishToUserGroup(rec)
		}
	case nature.DeviceRevocationV1:
		if rec, ok := r.(DeviceRevocationV1); ok {
			return SerializeDeviceRevocationV1(rec)
		}
	case nature.DeviceRevocationV2:
		if rec, ok := r.(DeviceRevocationV2); ok {
			return SerializeDeviceRevocationV2(rec)
		}
	case nature.UserGroupCreation:
		if rec, ok := r.(UserGroupCreation); ok {
			return SerializeUserGroupCreation(rec)
		}
	case nature.UserGroupAddition:
		if rec, ok := r.(UserGroupAddition); ok {
			return SerializeUserGroupAddition(rec)
		}
	default:
		return nil, wire.Assertf("cannot serialize unknown nature %d", uint64(n))
	}
	return nil, wire.Assertf("record %T cannot be serialized as %s", r, n)
}
