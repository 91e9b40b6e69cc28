// Package nature is the registry of block natures: the wire tag telling a
// reader which payload codec applies to a block.
//
// A Kind is a semantic category (device creation, key publish, ...). A Nature
// is one concrete (kind, version) pair with a fixed numeric tag. New blocks
// are written with the Preferred nature of their kind; older natures stay
// decodable forever.
package nature

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownNature is returned for tags outside the registry.
var ErrUnknownNature = errors.New("unknown nature")

// Nature is the wire tag of a block.
type Nature uint64

const (
	TrustchainCreation    Nature = 1
	DeviceCreationV1      Nature = 2
	KeyPublishToDevice    Nature = 3
	DeviceRevocationV1    Nature = 4
	DeviceCreationV2      Nature = 6
	DeviceCreationV3      Nature = 7
	KeyPublishToUser      Nature = 8
	DeviceRevocationV2    Nature = 9
	UserGroupCreation     Nature = 10
	KeyPublishToUserGroup Nature = 11
	UserGroupAddition     Nature = 12
)

// Kind groups the natures that carry the same event.
type Kind int

const (
	KindTrustchainCreation Kind = iota + 1
	KindDeviceCreation
	KindKeyPublishToDevice
	KindDeviceRevocation
	KindKeyPublishToUser
	KindUserGroupCreation
	KindKeyPublishToUserGroup
	KindUserGroupAddition
)

type entry struct {
	name    string
	kind    Kind
	version int
}

var registry = map[Nature]entry{
	TrustchainCreation:    {"trustchain_creation", KindTrustchainCreation, 1},
	DeviceCreationV1:      {"device_creation_v1", KindDeviceCreation, 1},
	KeyPublishToDevice:    {"key_publish_to_device", KindKeyPublishToDevice, 1},
	DeviceRevocationV1:    {"device_revocation_v1", KindDeviceRevocation, 1},
	DeviceCreationV2:      {"device_creation_v2", KindDeviceCreation, 2},
	DeviceCreationV3:      {"device_creation_v3", KindDeviceCreation, 3},
	KeyPublishToUser:      {"key_publish_to_user", KindKeyPublishToUser, 1},
	DeviceRevocationV2:    {"device_revocation_v2", KindDeviceRevocation, 2},
	UserGroupCreation:     {"user_group_creation", KindUserGroupCreation, 1},
	KeyPublishToUserGroup: {"key_publish_to_user_group", KindKeyPublishToUserGroup, 1},
	UserGroupAddition:     {"user_group_addition", KindUserGroupAddition, 1},
}

var kindNames = map[Kind]string{
	KindTrustchainCreation:    "trustchain_creation",
	KindDeviceCreation:        "device_creation",
	KindKeyPublishToDevice:    "key_publish_to_device",
	KindDeviceRevocation:      "device_revocation",
	KindKeyPublishToUser:      "key_publish_to_user",
	KindUserGroupCreation:     "user_group_creation",
	KindKeyPublishToUserGroup: "key_publish_to_user_group",
	KindUserGroupAddition:     "user_group_addition",
}

// Parse validates a decoded tag.
func Parse(tag uint64) (Nature, error) {
	n := Nature(tag)
	if _, ok := registry[n]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNature, tag)
	}
	return n, nil
}

// Known reports whether n is registered.
func (n Nature) Known() bool {
	_, ok := registry[n]
	return ok
}

// Kind returns the kind n belongs to, or 0 for an unknown nature.
func (n Nature) Kind() Kind { return registry[n].kind }

// Version returns the payload version n carries, or 0 for an unknown nature.
func (n Nature) Version() int { return registry[n].version }

func (n Nature) String() string {
	if e, ok := registry[n]; ok {
		return e.name
	}
	return fmt.Sprintf("nature(%d)", uint64(n))
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Preferred returns the nature new blocks of kind k are written with: the
// highest registered version. It panics on an unknown kind.
func Preferred(k Kind) Nature {
	switch k {
	case KindTrustchainCreation:
		return TrustchainCreation
	case KindDeviceCreation:
		return DeviceCreationV3
	case KindKeyPublishToDevice:
		return KeyPublishToDevice
	case KindDeviceRevocation:
		return DeviceRevocationV2
	case KindKeyPublishToUser:
		return KeyPublishToUser
	case KindUserGroupCreation:
		return UserGroupCreation
	case KindKeyPublishToUserGroup:
		return KeyPublishToUserGroup
	case KindUserGroupAddition:
		return UserGroupAddition
	}
	panic(fmt.Sprintf("nature: unknown kind %d", int(k)))
}

// Lookup returns the nature for a (kind, version) pair.
func Lookup(k Kind, version int) (Nature, bool) {
	for n, e := range registry {
		if e.kind == k && e.version == version {
			return n, true
		}
	}
	return 0, false
}

// All returns every registered nature in tag order.
func All() []Nature {
	out := make([]Nature, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := KindTrustchainCreation; k <= KindUserGroupAddition; k++ {
		out = append(out, k)
	}
	return out
}
