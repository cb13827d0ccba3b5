package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum returns a CIDv1 over data using the given multicodec
// and a sha2-256 multihash.
func Sum(codec uint64, data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(codec, sum), nil
}

// DagCborSum returns the CIDv1 (dag-cbor + sha2-256) of an encoded block.
func DagCborSum(data []byte) (cid.Cid, error) {
	return Sum(cid.DagCBOR, data)
}

// DagJoseSum returns the CIDv1 (dag-jose + sha2-256) of an encoded block.
func DagJoseSum(data []byte) (cid.Cid, error) {
	return Sum(cid.DagJOSE, data)
}

// RawSum returns the CIDv1 (raw + sha2-256) of a block.
func RawSum(data []byte) (cid.Cid, error) {
	return Sum(cid.Raw, data)
}

// Verify recomputes the digest of data under id's own prefix and
// reports an error when id does not describe data.
func Verify(id cid.Cid, data []byte) error {
	if !id.Defined() {
		return fmt.Errorf("cidutil: undefined cid")
	}
	got, err := id.Prefix().Sum(data)
	if err != nil {
		return err
	}
	if !got.Equals(id) {
		return fmt.Errorf("cidutil: cid mismatch: computed %s, expected %s", got, id)
	}
	return nil
}
