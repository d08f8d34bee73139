// Package internal provides the cryptographic conditioning primitive
// for entropy harvesting. It wraps golang.org/x/crypto.
package internal

import (
	"io"

	"golang.org/x/crypto/blake2b"
)

// Condense compresses raw sample material into out using the BLAKE2b
// extendable output function. Every byte of out depends on all of raw,
// so bias in individual samples is spread across the whole output.
func Condense(out, raw []byte) error {
	if len(out) == 0 {
		return nil
	}

	xof, err := blake2b.NewXOF(uint32(len(out)), nil)
	if err != nil {
		return err
	}
	if _, err := xof.Write(raw); err != nil {
		return err
	}
	_, err = io.ReadFull(xof, out)
	return err
}
