// Package payload holds the records carried in block payloads and their
// binary codecs, one Serialize/Unserialize pair per kind and version.
//
// Every codec writes its fields in a fixed order using the primitives of
// internal/wire, and every decoder consumes its whole input: a missing byte
// is ErrTruncated, an extra one is ErrTrailingBytes.
//
// # Device records
//
// Device creation exists in three wire versions. UserDeviceV1, UserDeviceV2
// and UserDeviceV3 mirror those layouts exactly; all three Upgrade into the
// canonical UserDevice, which also carries state that is never on the wire
// (IsServerDevice, Revoked). The Unserialize functions return the upgraded
// UserDevice with omitted fields set to their defaults.
//
// # Slices
//
// Decoders never return nil slices: an empty KeyPublish.Key or an empty
// member list decodes as a non-nil, zero-length slice. A record built with
// a nil slice serializes identically but does not compare equal to its
// decoded form under reflect.DeepEqual; compare lengths and contents
// instead.
//
// # Dispatch
//
// Unserialize and Serialize select the codec for a nature.Nature. Record is
// a closed set: only the types of this package implement it.
package payload
